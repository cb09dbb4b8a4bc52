// Package models holds the values exchanged between the classifier, the recorder
// and the ledger: parsed intents, the four record types and money.
package models

import (
	"fmt"
	"strings"
)

// Kind is the classified intent of one user message.
type Kind string

const (
	KindExpense  Kind = "expense"
	KindReminder Kind = "reminder"
	KindTask     Kind = "task"
	KindNote     Kind = "note"
	KindUnknown  Kind = "unknown"
)

// RecordKinds lists the kinds that end up in the ledger, in display order.
var RecordKinds = []Kind{KindExpense, KindTask, KindReminder, KindNote}

func (k Kind) String() string {
	return string(k)
}

// ParseKind accepts a kind name in singular or plural form, case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	switch Kind(name) {
	case KindExpense, KindReminder, KindTask, KindNote, KindUnknown:
		return Kind(name), nil
	}
	return "", fmt.Errorf("unknown kind %q (want expense, task, reminder or note)", s)
}
