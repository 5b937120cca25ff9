// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/descent-ml/descent/internal/optim"
	"github.com/descent-ml/descent/internal/tensor"
)

// Optimizer is the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Parameter couples a named tensor with its current gradient.
type Parameter = optim.Parameter

// NewParameter creates a parameter around value with no gradient attached.
func NewParameter(name string, value *tensor.Dense) *Parameter {
	return optim.NewParameter(name, value)
}

// Error types reported by the optimizers.

// InvalidHyperparameterError reports a rejected configuration value.
type InvalidHyperparameterError = optim.InvalidHyperparameterError

// ShapeMismatchError reports a gradient whose shape differs from its
// parameter's. Step fails with this error before touching any state.
type ShapeMismatchError = optim.ShapeMismatchError

// SGD (stochastic gradient descent)

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig configures an SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over params.
//
// Example:
//
//	optimizer, err := optim.NewSGD(
//	    model.Params(),
//	    optim.SGDConfig{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	    },
//	)
func NewSGD(params []*Parameter, config SGDConfig) (*SGD, error) {
	return optim.NewSGD(params, config)
}

// Adam (adaptive moment estimation)

// Adam implements the Adam optimizer with bias correction.
type Adam = optim.Adam

// AdamConfig configures an Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer over params.
//
// Example:
//
//	optimizer, err := optim.NewAdam(
//	    model.Params(),
//	    optim.AdamConfig{
//	        LR:    0.01,
//	        Beta1: 0.9,
//	        Beta2: 0.999,
//	        Eps:   1e-6,
//	    },
//	)
func NewAdam(params []*Parameter, config AdamConfig) (*Adam, error) {
	return optim.NewAdam(params, config)
}

// Yogi (sign-controlled variance)

// Yogi implements the Yogi optimizer, an Adam variant whose variance
// estimate moves by a bounded additive amount each step.
type Yogi = optim.Yogi

// YogiConfig configures a Yogi optimizer.
type YogiConfig = optim.YogiConfig

// NewYogi creates a Yogi optimizer over params.
//
// Example:
//
//	optimizer, err := optim.NewYogi(
//	    model.Params(),
//	    optim.YogiConfig{
//	        LR:  0.01,
//	        Eps: 1e-3,
//	    },
//	)
func NewYogi(params []*Parameter, config YogiConfig) (*Yogi, error) {
	return optim.NewYogi(params, config)
}
