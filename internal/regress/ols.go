// Package regress fits ordinary least squares regressions on dataset
// tables. It is the in-process stand-in for the external regression
// collaborator: the generator produces a table, this package recovers
// coefficients from it.
package regress

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/kmills/causalpath/internal/dataset"
)

// Fit holds the result of one OLS fit with an intercept.
type Fit struct {
	Outcome    string   `json:"outcome"`
	Predictors []string `json:"predictors"`

	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
	StdErrors    map[string]float64 `json:"std_errors"`

	RSquared float64 `json:"r_squared"`
	NumRows  int     `json:"num_rows"`
}

// Coefficient returns the fitted coefficient for a predictor.
func (f *Fit) Coefficient(predictor string) (float64, error) {
	v, ok := f.Coefficients[predictor]
	if !ok {
		return 0, fmt.Errorf("predictor %q not in fit", predictor)
	}
	return v, nil
}

// SimpleOLS regresses outcome on a single predictor with an intercept.
func SimpleOLS(tbl *dataset.Table, outcome, predictor string) (*Fit, error) {
	y, err := tbl.Column(outcome)
	if err != nil {
		return nil, err
	}
	x, err := tbl.Column(predictor)
	if err != nil {
		return nil, err
	}
	n := len(y)
	if n < 3 {
		return nil, fmt.Errorf("need at least 3 rows, got %d", n)
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)

	// Residual variance and the slope's standard error.
	xMean := stat.Mean(x, nil)
	var rss, sxx float64
	for i := range y {
		r := y[i] - alpha - beta*x[i]
		rss += r * r
		d := x[i] - xMean
		sxx += d * d
	}
	sigma2 := rss / float64(n-2)
	seBeta := math.Sqrt(sigma2 / sxx)

	var sumXX float64
	for _, v := range x {
		sumXX += v * v
	}
	seAlpha := seBeta * math.Sqrt(sumXX/float64(n))

	return &Fit{
		Outcome:      outcome,
		Predictors:   []string{predictor},
		Intercept:    alpha,
		Coefficients: map[string]float64{predictor: beta},
		StdErrors:    map[string]float64{predictor: seBeta, "intercept": seAlpha},
		RSquared:     rSquared(y, func(i int) float64 { return alpha + beta*x[i] }),
		NumRows:      n,
	}, nil
}

// MultipleOLS regresses outcome on several predictors with an intercept,
// solving the least-squares problem by QR factorization.
func MultipleOLS(tbl *dataset.Table, outcome string, predictors ...string) (*Fit, error) {
	if len(predictors) == 0 {
		return nil, fmt.Errorf("need at least one predictor")
	}

	y, err := tbl.Column(outcome)
	if err != nil {
		return nil, err
	}
	n := len(y)
	p := len(predictors) + 1 // including intercept
	if n <= p {
		return nil, fmt.Errorf("need more than %d rows for %d predictors, got %d", p, len(predictors), n)
	}

	x := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
	}
	for j, name := range predictors {
		col, err := tbl.Column(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			x.Set(i, j+1, col[i])
		}
	}
	yVec := mat.NewVecDense(n, append([]float64(nil), y...))

	var qr mat.QR
	qr.Factorize(x)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, yVec); err != nil {
		return nil, fmt.Errorf("solve least squares: %w", err)
	}

	// Residual variance and coefficient covariance sigma2 * (X'X)^-1.
	var fitted mat.VecDense
	fitted.MulVec(x, &beta)
	var rss float64
	for i := 0; i < n; i++ {
		r := y[i] - fitted.AtVec(i)
		rss += r * r
	}
	sigma2 := rss / float64(n-p)

	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("invert normal matrix: %w", err)
	}

	coeffs := make(map[string]float64, len(predictors))
	stderrs := make(map[string]float64, len(predictors)+1)
	stderrs["intercept"] = math.Sqrt(sigma2 * xtxInv.At(0, 0))
	for j, name := range predictors {
		coeffs[name] = beta.AtVec(j + 1)
		stderrs[name] = math.Sqrt(sigma2 * xtxInv.At(j+1, j+1))
	}

	return &Fit{
		Outcome:      outcome,
		Predictors:   append([]string(nil), predictors...),
		Intercept:    beta.AtVec(0),
		Coefficients: coeffs,
		StdErrors:    stderrs,
		RSquared:     rSquared(y, fitted.AtVec),
		NumRows:      n,
	}, nil
}

func rSquared(y []float64, fitted func(i int) float64) float64 {
	yMean := stat.Mean(y, nil)
	var rss, tss float64
	for i := range y {
		r := y[i] - fitted(i)
		rss += r * r
		d := y[i] - yMean
		tss += d * d
	}
	if tss == 0 {
		return 0
	}
	return 1 - rss/tss
}
