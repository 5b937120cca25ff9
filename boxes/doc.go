// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package boxes converts bounding boxes between corner and center
// coordinate layouts.
//
// # Overview
//
// Detection pipelines store boxes either as corners (x1, y1, x2, y2)
// or as center plus size (cx, cy, w, h). This package converts [n, 4]
// tensors between the two:
//
//	corners := tensor.Must(tensor.FromSlice(tensor.Shape{1, 4}, []float64{10, 20, 30, 60}))
//
//	centers, err := boxes.CornerToCenter(corners) // (20, 40, 20, 40)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	back, err := boxes.CenterToCorner(centers)
//
// The conversions are mutual inverses up to float64 rounding and never
// modify their input.
package boxes
