package schema

import (
	"fmt"

	"github.com/teranos/expertise/errors"
)

// UnknownAttributeError reports a name that is not in the schema.
// It matches errors.ErrUnknownAttribute.
type UnknownAttributeError struct {
	Attribute string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("attribute %q: %s", e.Attribute, errors.ErrUnknownAttribute)
}

func (e *UnknownAttributeError) Unwrap() error {
	return errors.ErrUnknownAttribute
}

// WrongValueTypeError reports a value, or a read, whose category does not
// match the attribute's kind. Value is only meaningful when HasValue is set,
// which is the case for writes. It matches errors.ErrWrongValueType.
type WrongValueTypeError struct {
	Attribute string
	Expected  Kind
	Value     any
	HasValue  bool
}

func (e *WrongValueTypeError) Error() string {
	if e.HasValue {
		return fmt.Sprintf("attribute %q is %s (%s), got %T value %v: %s",
			e.Attribute, e.Expected, e.Expected.Category(), e.Value, e.Value, errors.ErrWrongValueType)
	}
	return fmt.Sprintf("attribute %q is %s (%s): %s",
		e.Attribute, e.Expected, e.Expected.Category(), errors.ErrWrongValueType)
}

func (e *WrongValueTypeError) Unwrap() error {
	return errors.ErrWrongValueType
}
