package impact

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for inputs the engine refuses to compute.
var ErrInvalidInput = errors.New("invalid asteroid input")

// InputError names the offending field.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %v)", ErrInvalidInput, e.Field, e.Reason, e.Value)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// Validate rejects non-finite or negative values, and non-positive diameter
// or velocity unless allowDegenerate is set.
func Validate(in AsteroidInput, allowDegenerate bool) error {
	fields := []struct {
		name     string
		value    float64
		positive bool
	}{
		{"diameter", in.Diameter, !allowDegenerate},
		{"velocity", in.Velocity, !allowDegenerate},
		{"distance", in.Distance, false},
	}
	for _, f := range fields {
		switch {
		case math.IsNaN(f.value) || math.IsInf(f.value, 0):
			return &InputError{Field: f.name, Value: f.value, Reason: "must be finite"}
		case f.value < 0:
			return &InputError{Field: f.name, Value: f.value, Reason: "must not be negative"}
		case f.positive && f.value == 0:
			return &InputError{Field: f.name, Value: f.value, Reason: "must be positive"}
		}
	}
	return nil
}
