package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrUnknownAttribute,
		ErrWrongValueType,
		ErrNotSet,
		ErrUnknownLabel,
		ErrInvalidSchema,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "%v must not match %v", a, b)
		}
	}
}

func TestWrappedSentinelsMatch(t *testing.T) {
	err := Wrapf(ErrNotSet, "attribute %q", "mbp")

	assert.True(t, IsNotSet(err))
	assert.False(t, IsUnknownAttribute(err))
	assert.Contains(t, err.Error(), `attribute "mbp"`)
	assert.Contains(t, err.Error(), "attribute not set")
}

func TestIsHelpersNil(t *testing.T) {
	assert.False(t, IsUnknownAttribute(nil))
	assert.False(t, IsWrongValueType(nil))
	assert.False(t, IsNotSet(nil))
	assert.False(t, IsUnknownLabel(nil))
}

type kindError struct {
	name string
}

func (e *kindError) Error() string { return "kind error: " + e.name }

func (e *kindError) Unwrap() error { return ErrWrongValueType }

func TestTypedErrorUnwrapsToSentinel(t *testing.T) {
	wrapped := Wrap(&kindError{name: "task"}, "setting value")

	assert.True(t, IsWrongValueType(wrapped))

	var target *kindError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "task", target.name)
}

func TestNewInvalidSchemaError(t *testing.T) {
	err := NewInvalidSchemaError("duplicate attribute %q", "mbp")

	assert.True(t, Is(err, ErrInvalidSchema))
	assert.Contains(t, err.Error(), `duplicate attribute "mbp"`)
}

func TestWithHint(t *testing.T) {
	err := WithHint(ErrUnknownLabel, "valid labels: NOVICE, EXPERT")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "valid labels: NOVICE, EXPERT", hints[0])
	assert.True(t, IsUnknownLabel(err))
}

func TestStackTrace(t *testing.T) {
	err := Wrap(ErrNotSet, "with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func ExampleWrapf() {
	err := Wrapf(ErrUnknownAttribute, "attribute %q", "colour")
	fmt.Println(err)
	// Output: attribute "colour": unknown attribute
}
