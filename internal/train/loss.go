package train

import (
	"gonum.org/v1/gonum/floats"

	"github.com/pkg/errors"

	"github.com/descent-ml/descent/internal/tensor"
)

// SquaredLoss returns the mean halved squared error between a
// prediction and its target:
//
//	loss = (1/n) * Σ (pred - target)² / 2
//
// The half keeps the gradient of the loss a plain residual.
func SquaredLoss(pred, target *tensor.Dense) (float64, error) {
	if !pred.Shape().Equal(target.Shape()) {
		return 0, errors.Errorf("squared loss shape mismatch: %v vs %v", pred.Shape(), target.Shape())
	}
	n := float64(pred.Len())
	dist := floats.Distance(pred.Data(), target.Data(), 2)
	return dist * dist / (2 * n), nil
}
