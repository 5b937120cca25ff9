package train

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/pkg/errors"

	"github.com/descent-ml/descent/internal/tensor"
)

// SyntheticRegression generates n examples of y = Xw + b + noise with
// standard-normal features and gaussian noise of the given standard
// deviation. Handy for demos and for checking that a trainer recovers
// known coefficients.
func SyntheticRegression(n int, weights []float64, bias, noiseStd float64, rng *rand.Rand) (*Dataset, error) {
	if n < 1 {
		return nil, errors.Errorf("need at least one example, got %d", n)
	}
	d := len(weights)
	if d < 1 {
		return nil, errors.New("need at least one weight")
	}

	x, err := tensor.Randn(tensor.Shape{n, d}, 1.0, rng)
	if err != nil {
		return nil, err
	}

	yData := make([]float64, n)
	y := mat.NewVecDense(n, yData)
	y.MulVec(mat.NewDense(n, d, x.Data()), mat.NewVecDense(d, weights))
	floats.AddConst(bias, yData)
	if noiseStd > 0 {
		for i := range yData {
			yData[i] += rng.NormFloat64() * noiseStd
		}
	}

	labels, err := tensor.NewDense(tensor.Shape{n}, yData)
	if err != nil {
		return nil, err
	}
	return NewDataset(x, labels)
}
