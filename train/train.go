// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"math/rand"

	"github.com/descent-ml/descent/internal/tensor"
	"github.com/descent-ml/descent/internal/train"
)

// Dataset holds an in-memory feature matrix with one label per row.
type Dataset = train.Dataset

// NewDataset validates x as [n, d] features and y as n labels.
func NewDataset(x, y *tensor.Dense) (*Dataset, error) {
	return train.NewDataset(x, y)
}

// SyntheticRegression generates a linear-regression dataset with known
// weights and bias plus gaussian label noise.
func SyntheticRegression(n int, weights []float64, bias, noiseStd float64, rng *rand.Rand) (*Dataset, error) {
	return train.SyntheticRegression(n, weights, bias, noiseStd, rng)
}

// Batcher iterates a dataset in minibatches.
type Batcher = train.Batcher

// NewBatcher creates a batcher over ds. A nil rng preserves dataset
// order; otherwise each Reset reshuffles.
func NewBatcher(ds *Dataset, batchSize int, rng *rand.Rand) (*Batcher, error) {
	return train.NewBatcher(ds, batchSize, rng)
}

// WhitenStats carries per-column standardization statistics.
type WhitenStats = train.WhitenStats

// Whiten standardizes every column of x in place to zero mean and unit
// variance, returning the statistics for application to held-out data.
func Whiten(x *tensor.Dense) (*WhitenStats, error) {
	return train.Whiten(x)
}

// SquaredLoss returns the mean squared error between pred and target,
// halved.
func SquaredLoss(pred, target *tensor.Dense) (float64, error) {
	return train.SquaredLoss(pred, target)
}

// Model is anything that exposes parameters and can install gradients
// on them.
type Model = train.Model

// LinReg is a linear-regression model with analytic gradients.
type LinReg = train.LinReg

// NewLinReg creates a d-feature linear model with small random weights.
func NewLinReg(d int, rng *rand.Rand) (*LinReg, error) {
	return train.NewLinReg(d, rng)
}

// Trainer runs the epoch/minibatch loop.
type Trainer = train.Trainer

// Result summarizes a training run.
type Result = train.Result
