package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtrCopies(t *testing.T) {
	v := 4.0
	p := Ptr(v)
	v = 5

	assert.Equal(t, 4.0, *p)
}

func TestFloatOrNil(t *testing.T) {
	assert.Nil(t, FloatOrNil(math.NaN()))

	p := FloatOrNil(0.75)
	require.NotNil(t, p)
	assert.Equal(t, 0.75, *p)

	zero := FloatOrNil(0)
	require.NotNil(t, zero)
	assert.Equal(t, 0.0, *zero)
}
