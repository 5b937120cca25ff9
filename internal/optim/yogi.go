package optim

import (
	"math"

	"github.com/descent-ml/descent/internal/parallel"
	"github.com/descent-ml/descent/internal/tensor"
)

// Yogi implements the Yogi optimizer, an Adam variant that replaces
// the multiplicative variance update with an additive, sign-controlled
// one.
//
// Update rule, elementwise per parameter:
//
//	velocity = beta1 * velocity + (1-beta1) * gradient       // Same as Adam
//	variance = variance + (1-beta2) * sign(gradient² - variance) * gradient²
//	vHat, sHat, parameter update: identical to Adam
//
// Adam moves variance toward gradient² by a fraction of the deviation
// gradient² - variance, so a single step can change it by an amount
// proportional to that deviation, however large. Yogi's sign rewrite
// caps every variance change at (1-beta2)*gradient² regardless of the
// deviation, which keeps the effective step size from swinging when
// gradients are sparse or heavy-tailed.
//
// The default Eps is looser than Adam's (1e-3 vs 1e-6) because the
// variance estimate no longer shrinks multiplicatively.
//
// Reference: "Adaptive Methods for Nonconvex Optimization"
// (Zaheer et al., 2018)
type Yogi struct {
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

// YogiConfig holds configuration for the Yogi optimizer.
//
// Zero-valued fields take the documented defaults before validation;
// out-of-range values are rejected with InvalidHyperparameterError.
type YogiConfig struct {
	LR    float64 // Learning rate (default: 0.01)
	Beta1 float64 // Velocity decay coefficient (default: 0.9)
	Beta2 float64 // Variance increment coefficient (default: 0.999)
	Eps   float64 // Term for numerical stability (default: 1e-3)
}

func (c YogiConfig) withDefaults() YogiConfig {
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
		c.Eps = 1e-3
	}
	return c
}

// NewYogi creates a Yogi optimizer for params.
//
// State allocation and validation behave exactly as in NewAdam.
func NewYogi(params []*Parameter, config YogiConfig) (*Yogi, error) {
	config = config.withDefaults()
	if err := validateMomentConfig(config.LR, config.Beta1, config.Beta2, config.Eps); err != nil {
		return nil, err
	}

	return &Yogi{
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

// Step performs a single Yogi update over all parameters.
//
// Validation, counter, and skip semantics are identical to Adam.Step;
// only the variance recurrence differs.
func (y *Yogi) Step() error {
	if err := validateGradients(y.params); err != nil {
		return err
	}

	y.step++
	bc1 := biasCorrection(y.beta1, y.step)
	bc2 := biasCorrection(y.beta2, y.step)

	for i, param := range y.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}
		y.updateParameter(param, grad, y.velocity[i], y.variance[i], bc1, bc2)
	}
	return nil
}

// updateParameter applies the Yogi update for a single parameter.
func (y *Yogi) updateParameter(param *Parameter, grad, vel, vari *tensor.Dense, bc1, bc2 float64) {
	gradData := grad.Data()
	velData := vel.Data()
	varData := vari.Data()
	paramData := param.Value().Data()

	parallel.For(len(paramData), func(start, end int) {
		for i := start; i < end; i++ {
			g := gradData[i]
			gg := g * g

			// velocity = beta1 * velocity + (1-beta1) * gradient
			velData[i] = y.beta1*velData[i] + (1.0-y.beta1)*g

			// variance = variance + (1-beta2) * sign(gradient² - variance) * gradient²
			// sign(0) contributes nothing, so an exact match stays put.
			switch d := gg - varData[i]; {
			case d > 0:
				varData[i] += (1.0 - y.beta2) * gg
			case d < 0:
				varData[i] -= (1.0 - y.beta2) * gg
			}

			vHat := velData[i] / bc1
			sHat := varData[i] / bc2

			paramData[i] -= y.lr * vHat / (math.Sqrt(sHat) + y.eps)
		}
	}, y.par)
}

// ZeroGrad clears gradients for all parameters.
func (y *Yogi) ZeroGrad() {
	for _, param := range y.params {
		param.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (y *Yogi) LR() float64 {
	return y.lr
}

// SetLR updates the learning rate.
func (y *Yogi) SetLR(lr float64) {
	y.lr = lr
}

// StepCount returns the number of successful Step calls so far.
func (y *Yogi) StepCount() int {
	return y.step
}

// Velocity returns the live first-moment buffer for parameter i.
func (y *Yogi) Velocity(i int) *tensor.Dense {
	return y.velocity[i]
}

// Variance returns the live second-moment buffer for parameter i.
func (y *Yogi) Variance(i int) *tensor.Dense {
	return y.variance[i]
}
