package tensor

import (
	"math/rand"
)

// Zeros creates a zero-filled tensor with the given shape.
func Zeros(shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Dense{
		data:  make([]float64, shape.NumElements()),
		shape: shape.Clone(),
	}, nil
}

// Full creates a tensor with every element set to value.
func Full(shape Shape, value float64) (*Dense, error) {
	d, err := Zeros(shape)
	if err != nil {
		return nil, err
	}
	d.Fill(value)
	return d, nil
}

// FromSlice creates a tensor with the given shape, copying data.
func FromSlice(shape Shape, data []float64) (*Dense, error) {
	buf := make([]float64, len(data))
	copy(buf, data)
	return NewDense(shape, buf)
}

// Randn creates a tensor with values drawn from a normal distribution
// with mean 0 and the given standard deviation. The caller supplies
// the random source so runs stay reproducible.
func Randn(shape Shape, stddev float64, rng *rand.Rand) (*Dense, error) {
	d, err := Zeros(shape)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = rng.NormFloat64() * stddev
	}
	return d, nil
}

// Must panics if err is non-nil, otherwise returns d. It is intended
// for package initialization and tests where the shape is a literal.
func Must(d *Dense, err error) *Dense {
	if err != nil {
		panic(err)
	}
	return d
}
