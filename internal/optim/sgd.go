package optim

import (
	"github.com/pkg/errors"

	"github.com/descent-ml/descent/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum accelerates descent along persistent gradient directions
// and dampens oscillations.
type SGD struct {
	params   []*Parameter
	lr       float64
	momentum float64
	step     int
	velocity []*tensor.Dense // nil when momentum is disabled
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor in [0, 1) (default: 0, disabled)
}

// NewSGD creates an SGD optimizer for params.
//
// Velocity buffers are only allocated when momentum is enabled.
func NewSGD(params []*Parameter, config SGDConfig) (*SGD, error) {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.LR <= 0 {
		return nil, errors.WithStack(&InvalidHyperparameterError{
			Name: "LR", Value: config.LR, Reason: "learning rate must be positive",
		})
	}
	if config.Momentum < 0 || config.Momentum >= 1 {
		return nil, errors.WithStack(&InvalidHyperparameterError{
			Name: "Momentum", Value: config.Momentum, Reason: "must be in [0, 1)",
		})
	}

	s := &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
	}
	if config.Momentum > 0 {
		s.velocity = zerosLike(params)
	}
	return s, nil
}

// Step performs a single descent update over all parameters.
//
// Gradient shapes are validated up front with the same atomic
// contract as the moment optimizers: on error nothing has changed.
// The step counter advances once per call so trainers can log by
// step uniformly across optimizer kinds.
func (s *SGD) Step() error {
	if err := validateGradients(s.params); err != nil {
		return err
	}

	s.step++

	for i, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}

		if s.momentum == 0 {
			// param -= lr * grad
			tensor.AddScaled(param.Value(), -s.lr, grad)
			continue
		}

		// velocity = momentum * velocity + grad
		vel := s.velocity[i]
		tensor.Scale(s.momentum, vel)
		tensor.Add(vel, grad)

		// param -= lr * velocity
		tensor.AddScaled(param.Value(), -s.lr, vel)
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StepCount returns the number of successful Step calls so far.
func (s *SGD) StepCount() int {
	return s.step
}

// Velocity returns the live momentum buffer for parameter i, or nil
// when momentum is disabled.
func (s *SGD) Velocity(i int) *tensor.Dense {
	if s.velocity == nil {
		return nil
	}
	return s.velocity[i]
}
