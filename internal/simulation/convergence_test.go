package simulation

import (
	"testing"

	"github.com/kmills/causalpath/internal/model"
)

func mustCoefficients(t *testing.T, activations, effects []float64, direct, confounder float64) model.Coefficients {
	t.Helper()
	c, err := model.NewCoefficients(0.5, activations, effects, direct, confounder)
	if err != nil {
		t.Fatalf("NewCoefficients: %v", err)
	}
	return c
}

// Regressing the outcome on the treatment alone recovers the closed-form
// total effect as N grows, whatever the signs of the path coefficients.
func TestTotalEffectConverges_NegativeTotal(t *testing.T) {
	r := NewRunner(t)
	result := r.Run(Scenario{
		Name:         "negative-total",
		Coefficients: mustCoefficients(t, []float64{-1, -.5, -2, .25}, []float64{.2, .4, .3, -1}, -.4, 1.2),
		SampleSizes:  []int{200, 2000, 20000},
		Replicates:   5,
		BaseSeed:     42,
	})

	AssertTotalGapShrinks(t, result, 0.1)
	AssertTotalGapWithin(t, result, 0.3)
	AssertTotalSignRecovered(t, result)
}

func TestTotalEffectConverges_PositiveTotal(t *testing.T) {
	r := NewRunner(t)
	result := r.Run(Scenario{
		Name:         "positive-total",
		Coefficients: mustCoefficients(t, []float64{.3, .4, 1, 2}, []float64{.4, 1, .75, .3}, -.4, 0.6),
		SampleSizes:  []int{200, 2000, 20000},
		Replicates:   5,
		BaseSeed:     99,
	})

	AssertTotalGapShrinks(t, result, 0.1)
	AssertTotalGapWithin(t, result, 0.3)
	AssertTotalSignRecovered(t, result)
}

// A mediator-free process: the total effect collapses to the direct
// coefficient and both models should agree.
func TestTotalEffectConverges_DirectOnly(t *testing.T) {
	r := NewRunner(t)
	result := r.Run(Scenario{
		Name:         "direct-only",
		Coefficients: mustCoefficients(t, []float64{0, 0, 0, 0}, []float64{1, 1, 1, 1}, 1.5, 0),
		SampleSizes:  []int{500, 10000},
		Replicates:   3,
		BaseSeed:     7,
	})

	AssertTotalGapWithin(t, result, 0.35)
	AssertDirectGapWithin(t, result, 0.35)
	AssertTotalSignRecovered(t, result)
}
