// Package sectiongenerrors provides ready-made errors for the constructors
// that sectiongen records must declare.
//
//	type ServerError = *sectiongenerrors.FieldError
//
//	func (s *Server) missingFieldError(field string) ServerError {
//		return sectiongenerrors.Missing("Server", field)
//	}
package sectiongenerrors

import (
	"errors"
	"fmt"
)

// Kind classifies a [FieldError].
type Kind int

const (
	// KindMissing means a field was read before it was set.
	KindMissing Kind = iota + 1

	// KindDuplicate means a field was set while it already held a value.
	KindDuplicate

	// KindUnexpected means a field still held a value when the record was
	// finalized.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindDuplicate:
		return "duplicate"
	case KindUnexpected:
		return "unexpected"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel errors matched by [FieldError] with errors.Is.
var (
	ErrMissingField    = errors.New("missing field")
	ErrDuplicateField  = errors.New("duplicate field")
	ErrUnexpectedField = errors.New("unexpected field")
)

// FieldError reports a field of a record that broke the write-once,
// read-once discipline.
type FieldError struct {
	Kind   Kind
	Record string // may be empty
	Field  string

	// Value is the value that was already present for KindDuplicate or the
	// value left over for KindUnexpected. It is nil for KindMissing.
	Value any
}

// Missing returns an error for a field read before being set.
func Missing(record, field string) *FieldError {
	return &FieldError{Kind: KindMissing, Record: record, Field: field}
}

// Duplicate returns an error for a field set twice. prior is the value that
// was already present.
func Duplicate(record, field string, prior any) *FieldError {
	return &FieldError{Kind: KindDuplicate, Record: record, Field: field, Value: prior}
}

// Unexpected returns an error for a field which was set but never read.
func Unexpected(record, field string, leftover any) *FieldError {
	return &FieldError{Kind: KindUnexpected, Record: record, Field: field, Value: leftover}
}

// Error implements the error interface.
//
//	missing field "port" in Server
func (e *FieldError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("%s field %q", e.Kind, e.Field)
	}
	return fmt.Sprintf("%s field %q in %s", e.Kind, e.Field, e.Record)
}

// Is reports whether target is the sentinel error for the kind of e.
func (e *FieldError) Is(target error) bool {
	switch e.Kind {
	case KindMissing:
		return target == ErrMissingField
	case KindDuplicate:
		return target == ErrDuplicateField
	case KindUnexpected:
		return target == ErrUnexpectedField
	}
	return false
}
