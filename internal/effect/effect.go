// Package effect computes closed-form causal effects from a coefficient
// vector. No sampling is involved; these are the analytic values a fitted
// regression on generated data should approximate.
package effect

import "github.com/kmills/causalpath/internal/model"

// PathContribution is one causal path's share of the total effect. For a
// mediated path the contribution is activation×effect; for the direct path
// it is the direct coefficient itself.
type PathContribution struct {
	// Path names the route, e.g. "SM->OS->MH" or "SM->MH".
	Path string `json:"path"`

	// Mediator is the mediator on the path, empty for the direct path.
	Mediator string `json:"mediator,omitempty"`

	// Contribution is this path's term in the total-effect sum.
	Contribution float64 `json:"contribution"`
}

// TotalEffect returns the total causal effect of the treatment on the
// outcome: the sum over mediators of activation×effect, plus the direct
// coefficient. This equals, in expectation, the slope recovered by
// regressing the outcome on the treatment alone.
func TotalEffect(c model.Coefficients) float64 {
	total := c.Direct
	for _, m := range c.Mediators {
		total += m.Activation * m.Effect
	}
	return total
}

// PathContributions breaks the total effect into per-path terms: one per
// mediated path in canonical mediator order, then the direct path. The
// contributions sum exactly to TotalEffect.
func PathContributions(c model.Coefficients) []PathContribution {
	out := make([]PathContribution, 0, model.NumMediators+1)
	for _, m := range c.Mediators {
		out = append(out, PathContribution{
			Path:         model.NodeTreatment + "->" + m.Name + "->" + model.NodeOutcome,
			Mediator:     m.Name,
			Contribution: m.Activation * m.Effect,
		})
	}
	out = append(out, PathContribution{
		Path:         model.NodeTreatment + "->" + model.NodeOutcome,
		Contribution: c.Direct,
	})
	return out
}
