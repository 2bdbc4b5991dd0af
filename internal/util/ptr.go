package util

import "math"

// Ptr returns a pointer to a copy of v
func Ptr[T any](v T) *T {
	return &v
}

// FloatOrNil returns nil for NaN so encoders print null for missing values
func FloatOrNil(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
