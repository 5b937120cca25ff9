package tensor

import (
	"gonum.org/v1/gonum/floats"
)

// Elementwise helpers over Dense buffers. They follow the gonum
// convention of panicking on shape mismatch: every caller inside the
// library validates shapes before reaching them.

// Scale multiplies every element of d by c in place.
func Scale(c float64, d *Dense) {
	floats.Scale(c, d.data)
}

// Add adds src into dst elementwise in place.
func Add(dst, src *Dense) {
	if !dst.shape.Equal(src.shape) {
		panic("tensor: Add shape mismatch " + dst.shape.String() + " vs " + src.shape.String())
	}
	floats.Add(dst.data, src.data)
}

// AddScaled adds c*src into dst elementwise in place.
func AddScaled(dst *Dense, c float64, src *Dense) {
	if !dst.shape.Equal(src.shape) {
		panic("tensor: AddScaled shape mismatch " + dst.shape.String() + " vs " + src.shape.String())
	}
	floats.AddScaled(dst.data, c, src.data)
}

// SubTo stores a-b into dst elementwise.
func SubTo(dst, a, b *Dense) {
	if !a.shape.Equal(b.shape) || !dst.shape.Equal(a.shape) {
		panic("tensor: SubTo shape mismatch")
	}
	floats.SubTo(dst.data, a.data, b.data)
}

// Dot returns the inner product of a and b.
func Dot(a, b *Dense) float64 {
	if !a.shape.Equal(b.shape) {
		panic("tensor: Dot shape mismatch " + a.shape.String() + " vs " + b.shape.String())
	}
	return floats.Dot(a.data, b.data)
}
