package regress

import (
	"math"
	"testing"

	"github.com/kmills/causalpath/internal/dataset"
)

// exactTable builds a table where y = 2 + 3a - b with no noise, so OLS
// must recover the coefficients exactly up to floating point.
func exactTable(t *testing.T) *dataset.Table {
	t.Helper()
	a := []float64{0, 1, 2, 3, 4, 5, 0.5, 1.5, 2.5, 3.5}
	b := []float64{1, 0, 2, 1, 3, 0, 2.5, 0.5, 1.5, 4}
	y := make([]float64, len(a))
	for i := range a {
		y[i] = 2 + 3*a[i] - b[i]
	}
	tbl, err := dataset.New([]string{"a", "b", "y"}, map[string][]float64{"a": a, "b": b, "y": y})
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	return tbl
}

func TestSimpleOLS_ExactLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9} // y = 1 + 2x
	tbl, err := dataset.New([]string{"x", "y"}, map[string][]float64{"x": x, "y": y})
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}

	fit, err := SimpleOLS(tbl, "y", "x")
	if err != nil {
		t.Fatalf("SimpleOLS: %v", err)
	}

	if math.Abs(fit.Intercept-1) > 1e-10 {
		t.Errorf("intercept = %v, want 1", fit.Intercept)
	}
	beta, err := fit.Coefficient("x")
	if err != nil {
		t.Fatalf("Coefficient: %v", err)
	}
	if math.Abs(beta-2) > 1e-10 {
		t.Errorf("slope = %v, want 2", beta)
	}
	if math.Abs(fit.RSquared-1) > 1e-10 {
		t.Errorf("R² = %v, want 1 for a noiseless line", fit.RSquared)
	}
	if fit.StdErrors["x"] > 1e-8 {
		t.Errorf("stderr = %v, want ~0 for a noiseless line", fit.StdErrors["x"])
	}
}

func TestMultipleOLS_ExactPlane(t *testing.T) {
	tbl := exactTable(t)

	fit, err := MultipleOLS(tbl, "y", "a", "b")
	if err != nil {
		t.Fatalf("MultipleOLS: %v", err)
	}

	if math.Abs(fit.Intercept-2) > 1e-9 {
		t.Errorf("intercept = %v, want 2", fit.Intercept)
	}
	wantCoeffs := map[string]float64{"a": 3, "b": -1}
	for name, want := range wantCoeffs {
		got, err := fit.Coefficient(name)
		if err != nil {
			t.Fatalf("Coefficient(%s): %v", name, err)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("coefficient %s = %v, want %v", name, got, want)
		}
	}
	if math.Abs(fit.RSquared-1) > 1e-9 {
		t.Errorf("R² = %v, want 1", fit.RSquared)
	}
	if fit.NumRows != 10 {
		t.Errorf("NumRows = %d, want 10", fit.NumRows)
	}
}

func TestMultipleOLS_MatchesSimpleOnOnePredictor(t *testing.T) {
	x := []float64{0.1, 0.9, 1.7, 2.2, 3.8, 4.1, 5.5, 6.0}
	y := []float64{1.2, 2.9, 5.4, 6.6, 9.1, 9.8, 12.4, 13.1}
	tbl, err := dataset.New([]string{"x", "y"}, map[string][]float64{"x": x, "y": y})
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}

	simple, err := SimpleOLS(tbl, "y", "x")
	if err != nil {
		t.Fatalf("SimpleOLS: %v", err)
	}
	multi, err := MultipleOLS(tbl, "y", "x")
	if err != nil {
		t.Fatalf("MultipleOLS: %v", err)
	}

	if math.Abs(simple.Intercept-multi.Intercept) > 1e-9 {
		t.Errorf("intercepts differ: %v vs %v", simple.Intercept, multi.Intercept)
	}
	bs, _ := simple.Coefficient("x")
	bm, _ := multi.Coefficient("x")
	if math.Abs(bs-bm) > 1e-9 {
		t.Errorf("slopes differ: %v vs %v", bs, bm)
	}
	if math.Abs(simple.StdErrors["x"]-multi.StdErrors["x"]) > 1e-9 {
		t.Errorf("stderrs differ: %v vs %v", simple.StdErrors["x"], multi.StdErrors["x"])
	}
	if math.Abs(simple.RSquared-multi.RSquared) > 1e-9 {
		t.Errorf("R² differ: %v vs %v", simple.RSquared, multi.RSquared)
	}
}

func TestOLS_Errors(t *testing.T) {
	tbl := exactTable(t)

	if _, err := SimpleOLS(tbl, "y", "missing"); err == nil {
		t.Error("SimpleOLS with unknown predictor: expected error")
	}
	if _, err := MultipleOLS(tbl, "missing", "a"); err == nil {
		t.Error("MultipleOLS with unknown outcome: expected error")
	}
	if _, err := MultipleOLS(tbl, "y"); err == nil {
		t.Error("MultipleOLS with no predictors: expected error")
	}

	tiny, err := dataset.New([]string{"x", "y"}, map[string][]float64{"x": {1, 2}, "y": {1, 2}})
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	if _, err := SimpleOLS(tiny, "y", "x"); err == nil {
		t.Error("SimpleOLS with 2 rows: expected error")
	}
}

func TestCompareRecovery(t *testing.T) {
	fit := &Fit{
		Outcome:      "y",
		Predictors:   []string{"x"},
		Coefficients: map[string]float64{"x": 1.52},
		StdErrors:    map[string]float64{"x": 0.04},
	}

	r, err := CompareRecovery(fit, "x", 1.5)
	if err != nil {
		t.Fatalf("CompareRecovery: %v", err)
	}
	if math.Abs(r.Gap-0.02) > 1e-12 {
		t.Errorf("Gap = %v, want 0.02", r.Gap)
	}
	if math.Abs(r.GapStdErrs-0.5) > 1e-9 {
		t.Errorf("GapStdErrs = %v, want 0.5", r.GapStdErrs)
	}

	if _, err := CompareRecovery(fit, "zzz", 0); err == nil {
		t.Error("CompareRecovery with unknown predictor: expected error")
	}
}
