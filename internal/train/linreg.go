package train

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/pkg/errors"

	"github.com/descent-ml/descent/internal/optim"
	"github.com/descent-ml/descent/internal/tensor"
)

// Model is what the Trainer drives: a set of trainable parameters, a
// forward pass, and a routine that computes the batch loss and
// attaches analytic gradients to the parameters.
type Model interface {
	Params() []*optim.Parameter
	Predict(x *tensor.Dense) (*tensor.Dense, error)
	Gradients(x, y *tensor.Dense) (float64, error)
}

// LinReg is a linear regression model y = Xw + b with squared loss.
//
// Its gradients are closed-form, which makes it the differentiation
// provider for the optimizers: Gradients evaluates the batch loss and
// installs ∂L/∂w and ∂L/∂b on the parameters, ready for a Step.
type LinReg struct {
	weight *optim.Parameter // Shape [d]
	bias   *optim.Parameter // Shape [1]
}

// NewLinReg creates a model for d features. The weight vector starts
// with small-variance random values, the bias at zero.
func NewLinReg(d int, rng *rand.Rand) (*LinReg, error) {
	if d < 1 {
		return nil, errors.Errorf("linreg needs at least one feature, got %d", d)
	}
	w, err := tensor.Randn(tensor.Shape{d}, 0.01, rng)
	if err != nil {
		return nil, err
	}
	return &LinReg{
		weight: optim.NewParameter("weight", w),
		bias:   optim.NewParameter("bias", tensor.Must(tensor.Zeros(tensor.Shape{1}))),
	}, nil
}

// Params returns the trainable parameters, weight first.
func (m *LinReg) Params() []*optim.Parameter {
	return []*optim.Parameter{m.weight, m.bias}
}

// Weight returns the weight parameter.
func (m *LinReg) Weight() *optim.Parameter {
	return m.weight
}

// Bias returns the bias parameter.
func (m *LinReg) Bias() *optim.Parameter {
	return m.bias
}

// Predict computes Xw + b for a [n, d] feature matrix.
func (m *LinReg) Predict(x *tensor.Dense) (*tensor.Dense, error) {
	n, d, err := m.checkFeatures(x)
	if err != nil {
		return nil, err
	}

	X := mat.NewDense(n, d, x.Data())
	w := mat.NewVecDense(d, m.weight.Value().Data())

	out := make([]float64, n)
	pred := mat.NewVecDense(n, out)
	pred.MulVec(X, w)
	floats.AddConst(m.bias.Value().At(0), out)

	return tensor.NewDense(tensor.Shape{n}, out)
}

// Gradients evaluates the halved squared loss on the batch and
// attaches the analytic gradients to the parameters:
//
//	r  = Xw + b - y
//	∂L/∂w = Xᵀr / n
//	∂L/∂b = mean(r)
//
// It returns the batch loss. Call the optimizer's Step afterwards to
// consume the gradients.
func (m *LinReg) Gradients(x, y *tensor.Dense) (float64, error) {
	n, d, err := m.checkFeatures(x)
	if err != nil {
		return 0, err
	}
	if len(y.Shape()) != 1 || y.Shape()[0] != n {
		return 0, errors.Errorf("labels must have shape [%d], got %v", n, y.Shape())
	}

	pred, err := m.Predict(x)
	if err != nil {
		return 0, err
	}

	// Residual r = pred - y.
	residual := make([]float64, n)
	floats.SubTo(residual, pred.Data(), y.Data())

	X := mat.NewDense(n, d, x.Data())
	r := mat.NewVecDense(n, residual)

	gw := make([]float64, d)
	gwVec := mat.NewVecDense(d, gw)
	gwVec.MulVec(X.T(), r)
	floats.Scale(1/float64(n), gw)

	gb := floats.Sum(residual) / float64(n)

	m.weight.SetGrad(tensor.Must(tensor.NewDense(tensor.Shape{d}, gw)))
	m.bias.SetGrad(tensor.Must(tensor.FromSlice(tensor.Shape{1}, []float64{gb})))

	return floats.Dot(residual, residual) / (2 * float64(n)), nil
}

func (m *LinReg) checkFeatures(x *tensor.Dense) (n, d int, err error) {
	if len(x.Shape()) != 2 {
		return 0, 0, errors.Errorf("features must have shape [n, d], got %v", x.Shape())
	}
	n, d = x.Shape()[0], x.Shape()[1]
	if want := m.weight.Value().Len(); d != want {
		return 0, 0, errors.Errorf("model expects %d features, got %d", want, d)
	}
	return n, d, nil
}
