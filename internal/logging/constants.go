package logging

// Field names shared by every package so log lines stay greppable.
const (
	FieldKind       = "kind"
	FieldCategory   = "category"
	FieldRule       = "rule"
	FieldRecordID   = "record_id"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldLedgerFile = "ledger_file"
	FieldDuration   = "duration_ms"
	FieldKeyword    = "keyword"
)
