package train

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/descent-ml/descent/internal/optim"
)

// Trainer drives the epoch/minibatch loop over a model and dataset.
//
// The zero values of the tuning fields are usable: one epoch,
// batches of 10, one loss record per epoch, no log output.
type Trainer struct {
	Optimizer optim.Optimizer

	Epochs    int // Number of passes over the dataset (default: 1)
	BatchSize int // Examples per step (default: 10)
	LogEvery  int // Steps between loss records; 0 records at epoch ends

	// Logf receives progress lines, log.Printf-shaped. nil disables
	// logging.
	Logf func(format string, args ...any)
}

// Result summarizes a training run.
type Result struct {
	Losses  []float64     // Full-dataset loss at each record point
	Steps   int           // Optimizer steps taken
	Elapsed time.Duration // Wall-clock training time
}

// Run trains model on ds for the configured number of epochs.
//
// Each step computes batch gradients through the model, applies one
// optimizer update, and clears the gradients. Recorded losses are
// measured on the whole dataset, not the minibatch, so the trajectory
// is comparable across batch sizes; the final state is always
// recorded, so Losses is never empty on success. The first optimizer
// error aborts the run with epoch/step context attached. A nil model,
// dataset, or Optimizer is rejected up front.
func (t *Trainer) Run(model Model, ds *Dataset, rng *rand.Rand) (*Result, error) {
	if model == nil {
		return nil, errors.New("trainer needs a model")
	}
	if ds == nil {
		return nil, errors.New("trainer needs a dataset")
	}
	if t.Optimizer == nil {
		return nil, errors.New("trainer needs an optimizer")
	}

	epochs := t.Epochs
	if epochs <= 0 {
		epochs = 1
	}
	batchSize := t.BatchSize
	if batchSize <= 0 {
		batchSize = 10
	}

	batcher, err := NewBatcher(ds, batchSize, rng)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	start := time.Now()
	lastRecord := 0

	for epoch := 1; epoch <= epochs; epoch++ {
		batcher.Reset()
		for {
			bx, by, ok := batcher.Next()
			if !ok {
				break
			}

			if _, err := model.Gradients(bx, by); err != nil {
				return nil, errors.Wrapf(err, "epoch %d step %d: gradients", epoch, result.Steps+1)
			}
			if err := t.Optimizer.Step(); err != nil {
				return nil, errors.Wrapf(err, "epoch %d step %d: optimizer step", epoch, result.Steps+1)
			}
			t.Optimizer.ZeroGrad()
			result.Steps++

			if t.LogEvery > 0 && result.Steps%t.LogEvery == 0 {
				if err := t.record(model, ds, result, epoch); err != nil {
					return nil, err
				}
				lastRecord = result.Steps
			}
		}

		if t.LogEvery <= 0 {
			if err := t.record(model, ds, result, epoch); err != nil {
				return nil, err
			}
			lastRecord = result.Steps
		}
	}

	// The final state is always recorded, even when the step count does
	// not land on a LogEvery boundary.
	if result.Steps > lastRecord {
		if err := t.record(model, ds, result, epochs); err != nil {
			return nil, err
		}
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// record appends the full-dataset loss and emits a log line.
func (t *Trainer) record(model Model, ds *Dataset, result *Result, epoch int) error {
	pred, err := model.Predict(ds.X)
	if err != nil {
		return errors.Wrapf(err, "epoch %d: evaluating", epoch)
	}
	loss, err := SquaredLoss(pred, ds.Y)
	if err != nil {
		return errors.Wrapf(err, "epoch %d: evaluating", epoch)
	}
	result.Losses = append(result.Losses, loss)
	if t.Logf != nil {
		t.Logf("epoch %d, step %d, loss %g", epoch, result.Steps, loss)
	}
	return nil
}
