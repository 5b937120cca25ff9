// Package optim implements gradient-based optimization algorithms.
//
// This package provides:
//   - Optimizer interface: shared contract for all optimizers
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation with bias correction
//   - Yogi: Adam variant with a sign-controlled, additive variance update
//
// Optimizers own their moment state (one velocity and one variance
// buffer per parameter, zero-initialized at construction) and a single
// step counter shared by every parameter. Gradients are computed
// externally and attached to parameters with SetGrad before each step.
//
// Example usage:
//
//	params := []*optim.Parameter{w, b}
//	opt, err := optim.NewAdam(params, optim.AdamConfig{LR: 0.01})
//	if err != nil {
//	    return err
//	}
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    model.Gradients(batchX, batchY) // attaches gradients via SetGrad
//	    if err := opt.Step(); err != nil {
//	        return err
//	    }
//	    opt.ZeroGrad()
//	}
package optim

import (
	"math"

	"github.com/pkg/errors"

	"github.com/descent-ml/descent/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter that has a gradient
	// attached. All gradient shapes are validated before anything is
	// mutated: on error, no parameter and no optimizer state has
	// changed and the step counter has not advanced.
	Step() error

	// ZeroGrad clears all parameter gradients.
	//
	// Call it after Step so stale gradients from one iteration cannot
	// leak into the next.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64

	// SetLR updates the learning rate.
	//
	// Useful for learning rate scheduling during training.
	SetLR(lr float64)

	// StepCount returns the number of successful Step calls so far.
	StepCount() int
}

// validateGradients checks every attached gradient against its
// parameter's shape. It runs before any mutation so that a failed
// Step leaves parameters, moment state, and the step counter exactly
// as they were.
func validateGradients(params []*Parameter) error {
	for i, p := range params {
		g := p.Grad()
		if g == nil {
			// No gradient this round; the parameter is skipped.
			continue
		}
		if !g.Shape().Equal(p.Value().Shape()) {
			return errors.WithStack(&ShapeMismatchError{
				Param: p.Name(),
				Index: i,
				Want:  p.Value().Shape().Clone(),
				Got:   g.Shape().Clone(),
			})
		}
	}
	return nil
}

// validateMomentConfig checks the hyperparameters shared by the
// moment-based optimizers. Validation happens once, at construction;
// Step never re-checks.
func validateMomentConfig(lr, beta1, beta2, eps float64) error {
	if lr <= 0 {
		return errors.WithStack(&InvalidHyperparameterError{
			Name: "LR", Value: lr, Reason: "learning rate must be positive",
		})
	}
	if beta1 < 0 || beta1 >= 1 {
		return errors.WithStack(&InvalidHyperparameterError{
			Name: "Beta1", Value: beta1, Reason: "must be in [0, 1)",
		})
	}
	if beta2 < 0 || beta2 >= 1 {
		return errors.WithStack(&InvalidHyperparameterError{
			Name: "Beta2", Value: beta2, Reason: "must be in [0, 1)",
		})
	}
	if eps <= 0 {
		return errors.WithStack(&InvalidHyperparameterError{
			Name: "Eps", Value: eps, Reason: "must be positive",
		})
	}
	return nil
}

// zerosLike allocates one zero tensor per parameter, shape-matched.
// Moment buffers stay index-aligned with the parameter list for the
// optimizer's whole lifetime.
func zerosLike(params []*Parameter) []*tensor.Dense {
	state := make([]*tensor.Dense, len(params))
	for i, p := range params {
		state[i] = tensor.Must(tensor.Zeros(p.Value().Shape()))
	}
	return state
}

// biasCorrection returns 1 - beta^t.
//
// Both moment optimizers compute it exactly once per Step from the
// shared counter, never per parameter, so every parameter in a call
// sees the same correction.
func biasCorrection(beta float64, t int) float64 {
	return 1.0 - math.Pow(beta, float64(t))
}
