package optim

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// Parameter is a named trainable tensor together with its gradient.
//
// The value tensor is owned by the model and updated in place by the
// optimizer. The gradient is produced fresh each step by an external
// differentiation routine and attached with SetGrad; the optimizer
// only reads it and never keeps a reference past the step.
type Parameter struct {
	name  string
	value *tensor.Dense
	grad  *tensor.Dense
}

// NewParameter creates a parameter wrapping value.
//
// The tensor is used directly, not copied, so optimizer steps are
// visible to everything else holding it.
func NewParameter(name string, value *tensor.Dense) *Parameter {
	return &Parameter{name: name, value: value}
}

// Name returns the parameter's name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the live parameter tensor.
func (p *Parameter) Value() *tensor.Dense {
	return p.value
}

// Grad returns the currently attached gradient, or nil if none has
// been set since the last ZeroGrad.
func (p *Parameter) Grad() *tensor.Dense {
	return p.grad
}

// SetGrad attaches a gradient tensor.
//
// Shape agreement is checked at Step time, not here, so that a
// mis-shaped gradient surfaces as a typed error from the optimizer
// before anything has been updated.
func (p *Parameter) SetGrad(grad *tensor.Dense) {
	p.grad = grad
}

// ZeroGrad drops the gradient reference.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}
