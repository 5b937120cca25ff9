// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float64 buffers the descent
// optimizers operate on.
//
// # Overview
//
// This package contains:
//   - Dense: a flat row-major float64 tensor with an explicit Shape
//   - Shape: dimension list with validation and equality helpers
//   - Creation helpers: Zeros, Full, FromSlice, Randn
//   - Elementwise helpers backed by gonum: Scale, Add, AddScaled, SubTo, Dot
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/descent-ml/descent/tensor"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//
//	    w := tensor.Must(tensor.Randn(tensor.Shape{784, 10}, 0.01, rng))
//	    g := tensor.Must(tensor.Full(w.Shape(), 0.5))
//
//	    // w -= 0.1 * g
//	    tensor.AddScaled(w, -0.1, g)
//	}
//
// Tensors do not track devices, data types, or gradients; they are
// plain numeric storage. Gradient bookkeeping lives in the optim
// package, model math in train.
package tensor
