package train

import (
	"gonum.org/v1/gonum/stat"

	"github.com/pkg/errors"

	"github.com/descent-ml/descent/internal/tensor"
)

// WhitenStats records the per-column transform applied by Whiten so
// the same scaling can be reused on held-out data.
type WhitenStats struct {
	Mean []float64 // Column means
	Std  []float64 // Column divisors; 1 for constant columns
}

// Whiten standardizes every column of x in place to zero mean and
// unit sample standard deviation. Constant columns are centered but
// not divided. Whitening happens once, at data-preparation time,
// before any training step sees the features.
func Whiten(x *tensor.Dense) (*WhitenStats, error) {
	if len(x.Shape()) != 2 {
		return nil, errors.Errorf("whiten expects shape [n, d], got %v", x.Shape())
	}
	n, d := x.Shape()[0], x.Shape()[1]

	stats := &WhitenStats{
		Mean: make([]float64, d),
		Std:  make([]float64, d),
	}

	col := make([]float64, n)
	data := x.Data()
	for j := 0; j < d; j++ {
		for i := 0; i < n; i++ {
			col[i] = data[i*d+j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if n < 2 || std == 0 {
			std = 1
		}
		stats.Mean[j] = mean
		stats.Std[j] = std
		for i := 0; i < n; i++ {
			data[i*d+j] = (data[i*d+j] - mean) / std
		}
	}
	return stats, nil
}

// Apply standardizes x in place using previously computed statistics.
func (s *WhitenStats) Apply(x *tensor.Dense) error {
	if len(x.Shape()) != 2 || x.Shape()[1] != len(s.Mean) {
		return errors.Errorf("whiten stats cover %d columns, got shape %v", len(s.Mean), x.Shape())
	}
	n, d := x.Shape()[0], x.Shape()[1]
	data := x.Data()
	for j := 0; j < d; j++ {
		for i := 0; i < n; i++ {
			data[i*d+j] = (data[i*d+j] - s.Mean[j]) / s.Std[j]
		}
	}
	return nil
}
