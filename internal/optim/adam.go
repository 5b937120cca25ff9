package optim

import (
	"math"

	"github.com/descent-ml/descent/internal/parallel"
	"github.com/descent-ml/descent/internal/tensor"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains an exponential moving average of gradients (velocity)
//   - Maintains an exponential moving average of squared gradients (variance)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule, elementwise per parameter:
//
//	velocity = beta1 * velocity + (1-beta1) * gradient
//	variance = beta2 * variance + (1-beta2) * gradient²
//	vHat = velocity / (1 - beta1^t)                   // Bias correction
//	sHat = variance / (1 - beta2^t)                   // Bias correction
//	param = param - lr * vHat / (sqrt(sHat) + eps)
//
// The timestep t is shared by all parameters and advances exactly once
// per Step call, so bias correction is identical across the whole
// parameter list within one step.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	opt, err := optim.NewAdam(params, optim.AdamConfig{
//	    LR:    0.01,
//	    Beta1: 0.9,
//	    Beta2: 0.999,
//	    Eps:   1e-6,
//	})
type Adam struct {
	params   []*Parameter
	lr       float64
	beta1    float64
	beta2    float64
	eps      float64
	step     int             // Shared timestep for bias correction
	velocity []*tensor.Dense // First moment estimates, index-aligned with params
	variance []*tensor.Dense // Second moment estimates, index-aligned with params
	par      parallel.Config
}

// AdamConfig holds configuration for the Adam optimizer.
//
// Zero-valued fields take the documented defaults before validation;
// out-of-range values are rejected with InvalidHyperparameterError.
type AdamConfig struct {
	LR    float64 // Learning rate (default: 0.01)
	Beta1 float64 // Velocity decay coefficient (default: 0.9)
	Beta2 float64 // Variance decay coefficient (default: 0.999)
	Eps   float64 // Term for numerical stability (default: 1e-6)
}

func (c AdamConfig) withDefaults() AdamConfig {
	if c.LR == 0 {
		c.LR = 0.01
	}
	if c.Beta1 == 0 {
		c.Beta1 = 0.9
	}
	if c.Beta2 == 0 {
		c.Beta2 = 0.999
	}
	if c.Eps == 0 {
		c.Eps = 1e-6
	}
	return c
}

// NewAdam creates an Adam optimizer for params.
//
// Velocity and variance buffers are allocated here, zero-filled and
// shape-matched to each parameter. Hyperparameters are validated once;
// the returned error is an InvalidHyperparameterError naming the bad
// field.
func NewAdam(params []*Parameter, config AdamConfig) (*Adam, error) {
	config = config.withDefaults()
	if err := validateMomentConfig(config.LR, config.Beta1, config.Beta2, config.Eps); err != nil {
		return nil, err
	}

	return &Adam{
		params:   params,
		lr:       config.LR,
		beta1:    config.Beta1,
		beta2:    config.Beta2,
		eps:      config.Eps,
		step:     0,
		velocity: zerosLike(params),
		variance: zerosLike(params),
		par:      parallel.DefaultConfig(),
	}, nil
}

// Step performs a single Adam update over all parameters.
//
// The gradient shapes are validated up front: on ShapeMismatchError
// nothing has been updated, not even the step counter. Parameters
// without an attached gradient are skipped but keep their position in
// the state slices.
func (a *Adam) Step() error {
	if err := validateGradients(a.params); err != nil {
		return err
	}

	// One shared timestep per call, advanced before any update so the
	// first step corrects with t=1.
	a.step++
	bc1 := biasCorrection(a.beta1, a.step)
	bc2 := biasCorrection(a.beta2, a.step)

	for i, param := range a.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}
		a.updateParameter(param, grad, a.velocity[i], a.variance[i], bc1, bc2)
	}
	return nil
}

// updateParameter applies the Adam update for a single parameter.
func (a *Adam) updateParameter(param *Parameter, grad, vel, vari *tensor.Dense, bc1, bc2 float64) {
	gradData := grad.Data()
	velData := vel.Data()
	varData := vari.Data()
	paramData := param.Value().Data()

	parallel.For(len(paramData), func(start, end int) {
		for i := start; i < end; i++ {
			g := gradData[i]

			// velocity = beta1 * velocity + (1-beta1) * gradient
			velData[i] = a.beta1*velData[i] + (1.0-a.beta1)*g

			// variance = beta2 * variance + (1-beta2) * gradient²
			varData[i] = a.beta2*varData[i] + (1.0-a.beta2)*g*g

			vHat := velData[i] / bc1
			sHat := varData[i] / bc2

			paramData[i] -= a.lr * vHat / (math.Sqrt(sHat) + a.eps)
		}
	}, a.par)
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	for _, param := range a.params {
		param.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// StepCount returns the number of successful Step calls so far.
func (a *Adam) StepCount() int {
	return a.step
}

// Velocity returns the live first-moment buffer for parameter i.
func (a *Adam) Velocity(i int) *tensor.Dense {
	return a.velocity[i]
}

// Variance returns the live second-moment buffer for parameter i.
func (a *Adam) Variance(i int) *tensor.Dense {
	return a.variance[i]
}
