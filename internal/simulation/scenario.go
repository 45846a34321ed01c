package simulation

import (
	"github.com/kmills/causalpath/internal/experiment"
	"github.com/kmills/causalpath/internal/model"
)

// Scenario defines a complete recovery experiment.
type Scenario struct {
	Name         string
	Coefficients model.Coefficients

	// SampleSizes are the row counts to run, typically increasing.
	SampleSizes []int

	// Replicates is the number of runs per sample size (default 1).
	Replicates int

	// BaseSeed makes the whole scenario deterministic: each run derives
	// its seed from BaseSeed, the size index, and the replicate index.
	BaseSeed uint64

	// Persist, when true, saves every run to the harness run store and
	// reloads it, exercising the persistence path.
	Persist bool
}

// SizeResult captures all replicates at one sample size.
type SizeResult struct {
	NumRows int
	Runs    []*experiment.Run
}

// MeanTotalGap returns the mean absolute gap between the fitted and
// analytic total effect across replicates.
func (sr SizeResult) MeanTotalGap() float64 {
	if len(sr.Runs) == 0 {
		return 0
	}
	sum := 0.0
	for _, run := range sr.Runs {
		sum += run.TotalRecovery.Gap
	}
	return sum / float64(len(sr.Runs))
}

// MeanDirectGap returns the mean absolute gap between the fitted and true
// direct effect across replicates.
func (sr SizeResult) MeanDirectGap() float64 {
	if len(sr.Runs) == 0 {
		return 0
	}
	sum := 0.0
	for _, run := range sr.Runs {
		sum += run.DirectRecovery.Gap
	}
	return sum / float64(len(sr.Runs))
}

// SimulationResult captures all sample sizes in scenario order.
type SimulationResult struct {
	Scenario Scenario
	Sizes    []SizeResult
}

// Smallest returns the result for the first (smallest) sample size.
func (r SimulationResult) Smallest() SizeResult { return r.Sizes[0] }

// Largest returns the result for the last (largest) sample size.
func (r SimulationResult) Largest() SizeResult { return r.Sizes[len(r.Sizes)-1] }
