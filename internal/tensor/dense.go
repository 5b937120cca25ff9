// Package tensor provides the core numeric buffer types for the
// descent library. A Dense couples a flat float64 slice with a Shape;
// all optimizer and training code operates on these buffers in place.
package tensor

import (
	"fmt"
)

// Dense is a shape-tagged buffer of float64 values in row-major order.
type Dense struct {
	data  []float64
	shape Shape
}

// NewDense wraps data in a Dense with the given shape. The slice is
// used directly, not copied.
func NewDense(shape Shape, data []float64) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &Dense{data: data, shape: shape.Clone()}, nil
}

// Shape returns the tensor's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// Len returns the number of elements.
func (d *Dense) Len() int {
	return len(d.data)
}

// Data returns the underlying slice. Mutations are visible to the
// tensor.
func (d *Dense) Data() []float64 {
	return d.data
}

// At returns the element at flat index i.
func (d *Dense) At(i int) float64 {
	return d.data[i]
}

// Set stores v at flat index i.
func (d *Dense) Set(i int, v float64) {
	d.data[i] = v
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)
	return &Dense{data: data, shape: d.shape.Clone()}
}

// Fill sets every element to v.
func (d *Dense) Fill(v float64) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Zero sets every element to zero.
func (d *Dense) Zero() {
	d.Fill(0)
}
