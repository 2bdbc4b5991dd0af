// Package errors is the error vocabulary of the expertise module.
//
// It re-exports github.com/cockroachdb/errors so every package wraps and
// inspects errors the same way, and it declares the sentinels that schema
// validation is expressed in:
//
//	ErrUnknownAttribute  a name that is not in the attribute table
//	ErrWrongValueType    a value (or a read) of the wrong kind category
//	ErrNotSet            a known attribute that was never written
//	ErrUnknownLabel      a class value outside the closed label set
//	ErrInvalidSchema     a table or label set that violates its invariants
//
// Usage:
//
//	if _, err := s.NumericValue("mbp"); errors.Is(err, errors.ErrNotSet) {
//	    // the sample never measured mbp
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Schema validation sentinels. Match them with Is; the concrete error types
// in package schema unwrap to the first two.
var (
	// ErrUnknownAttribute indicates a name outside the attribute table
	ErrUnknownAttribute = New("unknown attribute")

	// ErrWrongValueType indicates a value or read whose kind category does
	// not match the attribute's declared kind
	ErrWrongValueType = New("wrong value type")

	// ErrNotSet indicates a known attribute of the right kind that holds no value
	ErrNotSet = New("attribute not set")

	// ErrUnknownLabel indicates a class value outside the closed label set
	ErrUnknownLabel = New("unknown expertise label")

	// ErrInvalidSchema indicates an attribute table or label set that
	// cannot be used to build a schema
	ErrInvalidSchema = New("invalid schema")
)

// IsUnknownAttribute checks if an error is or wraps ErrUnknownAttribute
func IsUnknownAttribute(err error) bool {
	return err != nil && Is(err, ErrUnknownAttribute)
}

// IsWrongValueType checks if an error is or wraps ErrWrongValueType
func IsWrongValueType(err error) bool {
	return err != nil && Is(err, ErrWrongValueType)
}

// IsNotSet checks if an error is or wraps ErrNotSet
func IsNotSet(err error) bool {
	return err != nil && Is(err, ErrNotSet)
}

// IsUnknownLabel checks if an error is or wraps ErrUnknownLabel
func IsUnknownLabel(err error) bool {
	return err != nil && Is(err, ErrUnknownLabel)
}

// NewInvalidSchemaError creates an invalid-schema error with a formatted message
func NewInvalidSchemaError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidSchema, Newf(format, args...).Error())
}
