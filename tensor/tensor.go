// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/descent-ml/descent/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2×3 matrix. An empty Shape is a scalar.
type Shape = tensor.Shape

// Dense is a dense float64 tensor stored flat in row-major order.
type Dense = tensor.Dense

// NewDense wraps data in a tensor of the given shape. The slice is used
// directly, not copied; len(data) must equal shape.NumElements().
func NewDense(shape Shape, data []float64) (*Dense, error) {
	return tensor.NewDense(shape, data)
}

// Zeros creates a zero-filled tensor of the given shape.
func Zeros(shape Shape) (*Dense, error) {
	return tensor.Zeros(shape)
}

// Full creates a tensor of the given shape with every element set to value.
func Full(shape Shape, value float64) (*Dense, error) {
	return tensor.Full(shape, value)
}

// FromSlice creates a tensor of the given shape from a copy of data.
func FromSlice(shape Shape, data []float64) (*Dense, error) {
	return tensor.FromSlice(shape, data)
}

// Randn creates a tensor filled with normal samples of the given
// standard deviation, drawn from rng.
func Randn(shape Shape, stddev float64, rng *rand.Rand) (*Dense, error) {
	return tensor.Randn(shape, stddev, rng)
}

// Must panics if err is non-nil, otherwise returns d. It condenses
// creation of tensors whose shapes are known to be valid:
//
//	w := tensor.Must(tensor.Zeros(tensor.Shape{10, 4}))
func Must(d *Dense, err error) *Dense {
	return tensor.Must(d, err)
}

// Scale multiplies every element of d by c.
func Scale(c float64, d *Dense) {
	tensor.Scale(c, d)
}

// Add adds src into dst elementwise. Panics if shapes differ.
func Add(dst, src *Dense) {
	tensor.Add(dst, src)
}

// AddScaled adds c*src into dst elementwise. Panics if shapes differ.
func AddScaled(dst *Dense, c float64, src *Dense) {
	tensor.AddScaled(dst, c, src)
}

// SubTo stores a-b into dst elementwise. Panics if shapes differ.
func SubTo(dst, a, b *Dense) {
	tensor.SubTo(dst, a, b)
}

// Dot returns the inner product of a and b. Panics if shapes differ.
func Dot(a, b *Dense) float64 {
	return tensor.Dot(a, b)
}
