// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides the minibatch training harness around the
// descent optimizers.
//
// # Overview
//
// This package contains:
//   - Dataset and Batcher: in-memory examples with shuffled minibatch
//     iteration
//   - Whiten: column-wise feature standardization with reusable
//     statistics for held-out data
//   - LinReg: a linear-regression model with analytic gradients, the
//     reference gradient provider for the optimizers
//   - Trainer: the epoch/minibatch loop with loss recording
//
// # Basic Usage
//
//	import (
//	    "log"
//	    "math/rand"
//
//	    "github.com/descent-ml/descent/optim"
//	    "github.com/descent-ml/descent/train"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//
//	    ds, err := train.SyntheticRegression(1000, []float64{2, -3.4}, 4.2, 0.01, rng)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model, err := train.NewLinReg(ds.NumFeatures(), rng)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    opt, err := optim.NewAdam(model.Params(), optim.AdamConfig{LR: 0.01})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    trainer := &train.Trainer{
//	        Optimizer: opt,
//	        Epochs:    3,
//	        BatchSize: 10,
//	        Logf:      log.Printf,
//	    }
//	    result, err := trainer.Run(model, ds, rng)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    log.Printf("final loss %g after %d steps", result.Losses[len(result.Losses)-1], result.Steps)
//	}
//
// All data lives in memory. Nothing in this package reads files or
// talks to the network.
package train
