package tensor

import (
	"fmt"
)

// Shape represents the dimensions of a tensor
type Shape []int

// NumElements returns the total number of elements
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // scalar
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that all dimensions are positive
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension %d at index %d: dimensions must be positive", dim, i)
		}
	}
	return nil
}

// Equal checks if two shapes are identical
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// String returns a human-readable form like [2 3].
func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}
