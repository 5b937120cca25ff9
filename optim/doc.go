// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimization algorithms.
//
// # Overview
//
// This package contains:
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation with bias correction
//   - Yogi: Adam variant with a sign-controlled variance update
//   - Optimizer: the interface all three satisfy
//   - Parameter: a named value/gradient pair
//
// # Basic Usage
//
//	import (
//	    "github.com/descent-ml/descent/optim"
//	    "github.com/descent-ml/descent/tensor"
//	)
//
//	func main() {
//	    w := tensor.Must(tensor.Zeros(tensor.Shape{10}))
//	    params := []*optim.Parameter{optim.NewParameter("w", w)}
//
//	    optimizer, err := optim.NewAdam(params, optim.AdamConfig{LR: 0.01})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for step := 0; step < 100; step++ {
//	        params[0].SetGrad(computeGradient(w))
//	        if err := optimizer.Step(); err != nil {
//	            log.Fatal(err)
//	        }
//	        optimizer.ZeroGrad()
//	    }
//	}
//
// Gradients come from outside: any code that can produce a tensor of
// the parameter's shape can drive the optimizers. The train package
// provides an analytic linear-regression provider; autograd systems,
// finite differences, or hand-written derivatives work the same way.
//
// # Optimizers
//
// SGD (stochastic gradient descent):
//
//	optimizer, err := optim.NewSGD(params, optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
// Adam (adaptive moment estimation):
//
//	optimizer, err := optim.NewAdam(params, optim.AdamConfig{
//	    LR:    0.01,
//	    Beta1: 0.9,
//	    Beta2: 0.999,
//	    Eps:   1e-6,
//	})
//
// Yogi (Adam with additive, sign-controlled variance):
//
//	optimizer, err := optim.NewYogi(params, optim.YogiConfig{
//	    LR:  0.01,
//	    Eps: 1e-3,
//	})
//
// Zero config fields take the documented defaults, so the zero value
// of each config is usable as-is.
package optim
