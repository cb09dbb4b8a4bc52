// Package apperror defines the typed errors returned by the ledger, the recorder
// and the configuration layer. The classifier itself never returns an error.
package apperror

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when an intent of kind Unknown is handed to a sink.
var ErrUnknownKind = errors.New("message was not understood")

// ValidationError reports a field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StoreError wraps an I/O failure of the ledger file.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("ledger %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a record id that does not exist in the ledger.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
