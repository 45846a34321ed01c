// Package simulation provides a multi-run test harness for validating the
// statistical properties of the generate-fit-compare pipeline.
//
// The harness exercises the real Generator, OLS fitting, and RunStore — no
// mocks. Scenarios are Go builders that fix a coefficient vector and run
// replicated experiments across growing sample sizes, capturing recovery
// gaps for property-based assertions.
//
// Each test gets an isolated SQLite run store via t.TempDir().
//
// Usage:
//
//	func TestTotalEffectConverges(t *testing.T) {
//	    r := simulation.NewRunner(t)
//	    result := r.Run(simulation.Scenario{
//	        Name:         "negative-total",
//	        Coefficients: coeffs,
//	        SampleSizes:  []int{200, 2000, 20000},
//	        Replicates:   5,
//	        BaseSeed:     42,
//	    })
//	    simulation.AssertTotalGapShrinks(t, result, 0.1)
//	}
package simulation
