// Package boxes converts bounding-box coordinates between the two
// layouts used in object detection: corner form (x1, y1, x2, y2) and
// center form (cx, cy, w, h).
//
// Boxes are stored n per tensor as the rows of an [n, 4] matrix. Both
// conversions validate the shape, leave the input untouched, and
// return a freshly allocated result.
package boxes

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/descent-ml/descent/internal/tensor"
)

// FormatError reports a tensor that cannot be interpreted as a box
// matrix.
type FormatError struct {
	Got tensor.Shape
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("boxes must have shape [n 4], got %v", e.Got)
}

func validate(b *tensor.Dense) error {
	shape := b.Shape()
	if len(shape) != 2 || shape[1] != 4 {
		return errors.WithStack(&FormatError{Got: shape.Clone()})
	}
	return nil
}

// CornerToCenter converts rows of (x1, y1, x2, y2) to (cx, cy, w, h).
func CornerToCenter(b *tensor.Dense) (*tensor.Dense, error) {
	if err := validate(b); err != nil {
		return nil, err
	}
	out, err := tensor.Zeros(b.Shape())
	if err != nil {
		return nil, err
	}
	src, dst := b.Data(), out.Data()
	for i := 0; i < len(src); i += 4 {
		x1, y1, x2, y2 := src[i], src[i+1], src[i+2], src[i+3]
		dst[i] = (x1 + x2) / 2
		dst[i+1] = (y1 + y2) / 2
		dst[i+2] = x2 - x1
		dst[i+3] = y2 - y1
	}
	return out, nil
}

// CenterToCorner converts rows of (cx, cy, w, h) to (x1, y1, x2, y2).
// It is the inverse of CornerToCenter up to rounding.
func CenterToCorner(b *tensor.Dense) (*tensor.Dense, error) {
	if err := validate(b); err != nil {
		return nil, err
	}
	out, err := tensor.Zeros(b.Shape())
	if err != nil {
		return nil, err
	}
	src, dst := b.Data(), out.Data()
	for i := 0; i < len(src); i += 4 {
		cx, cy, w, h := src[i], src[i+1], src[i+2], src[i+3]
		dst[i] = cx - w/2
		dst[i+1] = cy - h/2
		dst[i+2] = cx + w/2
		dst[i+3] = cy + h/2
	}
	return out, nil
}
