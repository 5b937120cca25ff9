package optim

import (
	"fmt"

	"github.com/descent-ml/descent/internal/tensor"
)

// The optimizers fail in exactly two ways: a hyperparameter outside
// its legal range (caught once, at construction) and a gradient whose
// shape disagrees with its parameter (caught at the top of Step,
// before any state is touched). Everything else is pure elementwise
// arithmetic with no failure modes.

// InvalidHyperparameterError reports a configuration value outside its
// legal range.
type InvalidHyperparameterError struct {
	Name   string  // Field name, e.g. "Beta1"
	Value  float64 // The rejected value
	Reason string  // Legal range, e.g. "must be in [0, 1)"
}

func (e *InvalidHyperparameterError) Error() string {
	return fmt.Sprintf("invalid hyperparameter %s=%v: %s", e.Name, e.Value, e.Reason)
}

// ShapeMismatchError reports a gradient tensor whose shape differs
// from its parameter's. The step that produced it applied no updates.
type ShapeMismatchError struct {
	Param string       // Parameter name
	Index int          // Position in the optimizer's parameter list
	Want  tensor.Shape // Parameter shape
	Got   tensor.Shape // Gradient shape
}

func (e *ShapeMismatchError) Error() string {
	msg := fmt.Sprintf("gradient shape mismatch for parameter %q (index %d): want %v, got %v",
		e.Param, e.Index, e.Want, e.Got)
	if len(e.Want) != len(e.Got) {
		return msg
	}
	for d := range e.Want {
		if e.Want[d] != e.Got[d] {
			return fmt.Sprintf("%s (dimension %d: want %d, got %d)", msg, d, e.Want[d], e.Got[d])
		}
	}
	return msg
}
