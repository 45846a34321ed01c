package simulation

import (
	"math"
	"testing"
)

// AssertTotalGapShrinks asserts that the mean total-effect recovery gap at
// the largest sample size does not exceed the gap at the smallest size plus
// margin. Margin absorbs sampling noise; with growing N the large-sample
// gap should in fact be far smaller.
func AssertTotalGapShrinks(t *testing.T, result SimulationResult, margin float64) {
	t.Helper()
	small := result.Smallest().MeanTotalGap()
	large := result.Largest().MeanTotalGap()
	if large > small+margin {
		t.Errorf("AssertTotalGapShrinks: gap grew from %.4f (n=%d) to %.4f (n=%d)",
			small, result.Smallest().NumRows, large, result.Largest().NumRows)
	}
}

// AssertTotalGapWithin asserts that every replicate at the largest sample
// size recovers the total effect within tol.
func AssertTotalGapWithin(t *testing.T, result SimulationResult, tol float64) {
	t.Helper()
	for i, run := range result.Largest().Runs {
		if run.TotalRecovery.Gap > tol {
			t.Errorf("AssertTotalGapWithin: replicate %d: gap %.4f > %.4f (estimate %.4f, analytic %.4f)",
				i, run.TotalRecovery.Gap, tol, run.TotalRecovery.Estimate, run.TotalRecovery.Analytic)
		}
	}
}

// AssertDirectGapWithin asserts that every replicate at the largest sample
// size recovers the direct effect within tol.
func AssertDirectGapWithin(t *testing.T, result SimulationResult, tol float64) {
	t.Helper()
	for i, run := range result.Largest().Runs {
		if run.DirectRecovery.Gap > tol {
			t.Errorf("AssertDirectGapWithin: replicate %d: gap %.4f > %.4f (estimate %.4f, true %.4f)",
				i, run.DirectRecovery.Gap, tol, run.DirectRecovery.Estimate, run.DirectRecovery.Analytic)
		}
	}
}

// AssertTotalSignRecovered asserts that every replicate at the largest
// sample size recovers the sign of a nonzero analytic total effect.
func AssertTotalSignRecovered(t *testing.T, result SimulationResult) {
	t.Helper()
	for i, run := range result.Largest().Runs {
		if run.AnalyticTotal == 0 {
			t.Fatalf("AssertTotalSignRecovered: analytic total is zero; sign is undefined")
		}
		if math.Signbit(run.TotalRecovery.Estimate) != math.Signbit(run.AnalyticTotal) {
			t.Errorf("AssertTotalSignRecovered: replicate %d: estimate %.4f has wrong sign (analytic %.4f)",
				i, run.TotalRecovery.Estimate, run.AnalyticTotal)
		}
	}
}
