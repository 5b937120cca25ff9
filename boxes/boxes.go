// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package boxes

import (
	"github.com/descent-ml/descent/internal/boxes"
	"github.com/descent-ml/descent/internal/tensor"
)

// FormatError reports a tensor that is not an [n, 4] box matrix.
type FormatError = boxes.FormatError

// CornerToCenter converts rows of (x1, y1, x2, y2) to (cx, cy, w, h).
func CornerToCenter(b *tensor.Dense) (*tensor.Dense, error) {
	return boxes.CornerToCenter(b)
}

// CenterToCorner converts rows of (cx, cy, w, h) to (x1, y1, x2, y2).
func CenterToCorner(b *tensor.Dense) (*tensor.Dense, error) {
	return boxes.CenterToCorner(b)
}
