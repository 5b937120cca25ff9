// Package train provides the training-loop harness around the
// optimizers: in-memory datasets, minibatch iteration, feature
// whitening, a linear-regression model with analytic gradients, and a
// Trainer that drives the epoch/batch loop.
//
// The package never reads files; callers construct datasets from
// tensors they already hold.
package train

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/descent-ml/descent/internal/tensor"
)

// Dataset pairs a feature matrix with its label vector.
type Dataset struct {
	X *tensor.Dense // Features, shape [n, d]
	Y *tensor.Dense // Labels, shape [n]
}

// NewDataset validates the shapes and wraps them. The tensors are
// used directly, not copied.
func NewDataset(x, y *tensor.Dense) (*Dataset, error) {
	if len(x.Shape()) != 2 {
		return nil, errors.Errorf("dataset features must have shape [n, d], got %v", x.Shape())
	}
	if len(y.Shape()) != 1 {
		return nil, errors.Errorf("dataset labels must have shape [n], got %v", y.Shape())
	}
	if x.Shape()[0] != y.Shape()[0] {
		return nil, errors.Errorf("dataset has %d feature rows but %d labels", x.Shape()[0], y.Shape()[0])
	}
	return &Dataset{X: x, Y: y}, nil
}

// Len returns the number of examples.
func (d *Dataset) Len() int {
	return d.X.Shape()[0]
}

// NumFeatures returns the feature dimension.
func (d *Dataset) NumFeatures() int {
	return d.X.Shape()[1]
}

// Batcher iterates a dataset in minibatches.
//
// Each epoch visits every example exactly once; the final batch may be
// short. With a random source the visit order is a fresh permutation
// per Reset, without one it is the dataset order (useful for
// deterministic evaluation).
type Batcher struct {
	ds        *Dataset
	batchSize int
	rng       *rand.Rand
	perm      []int
	pos       int
}

// NewBatcher creates a minibatch iterator over ds.
func NewBatcher(ds *Dataset, batchSize int, rng *rand.Rand) (*Batcher, error) {
	if batchSize < 1 {
		return nil, errors.Errorf("batch size must be at least 1, got %d", batchSize)
	}
	b := &Batcher{
		ds:        ds,
		batchSize: batchSize,
		rng:       rng,
		perm:      make([]int, ds.Len()),
	}
	for i := range b.perm {
		b.perm[i] = i
	}
	b.Reset()
	return b, nil
}

// Reset rewinds the iterator and, when a random source is present,
// reshuffles the visit order.
func (b *Batcher) Reset() {
	b.pos = 0
	if b.rng != nil {
		b.rng.Shuffle(len(b.perm), func(i, j int) {
			b.perm[i], b.perm[j] = b.perm[j], b.perm[i]
		})
	}
}

// Next returns the next feature/label minibatch, or ok=false when the
// epoch is exhausted. The returned tensors are fresh copies, so
// callers may hold or mutate them freely.
func (b *Batcher) Next() (x, y *tensor.Dense, ok bool) {
	n := b.ds.Len()
	if b.pos >= n {
		return nil, nil, false
	}

	end := b.pos + b.batchSize
	if end > n {
		end = n
	}
	rows := b.perm[b.pos:end]
	b.pos = end

	d := b.ds.NumFeatures()
	xData := make([]float64, len(rows)*d)
	yData := make([]float64, len(rows))
	src := b.ds.X.Data()
	lbl := b.ds.Y.Data()
	for i, r := range rows {
		copy(xData[i*d:(i+1)*d], src[r*d:(r+1)*d])
		yData[i] = lbl[r]
	}

	x = tensor.Must(tensor.NewDense(tensor.Shape{len(rows), d}, xData))
	y = tensor.Must(tensor.NewDense(tensor.Shape{len(rows)}, yData))
	return x, y, true
}
