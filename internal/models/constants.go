package models

// DefaultCurrency is used for amounts typed without a currency glyph.
const DefaultCurrency = "GBP"

// File permissions
const (
	PermissionLedgerFile = 0600
	PermissionDirectory  = 0750
	PermissionExportFile = 0644
)
