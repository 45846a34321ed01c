// Package model defines the fixed causal graph relating the treatment to the
// outcome, and the coefficient vector that parameterizes it.
//
// The topology is hard-coded: the treatment SM feeds four mediators (OS, OP,
// FM, FR) and the outcome MH directly; each mediator feeds MH; the exogenous
// confounder OA feeds only MH. Coefficients are data, the graph is not.
package model

import "fmt"

// Node names. These are also the column names of a generated dataset.
const (
	NodeTreatment  = "SM"
	NodeMediatorOS = "OS"
	NodeMediatorOP = "OP"
	NodeMediatorFM = "FM"
	NodeMediatorFR = "FR"
	NodeConfounder = "OA"
	NodeOutcome    = "MH"
)

// NumMediators is the number of mediators in the graph. The topology is
// fixed; coefficient vectors of any other arity are rejected.
const NumMediators = 4

// MediatorNames lists the mediators in canonical order. Coefficient vectors
// are matched to mediators positionally against this order.
var MediatorNames = [NumMediators]string{NodeMediatorOS, NodeMediatorOP, NodeMediatorFM, NodeMediatorFR}

// ColumnOrder is the canonical column order of a generated dataset.
var ColumnOrder = []string{NodeTreatment, NodeMediatorOS, NodeMediatorOP, NodeMediatorFM, NodeMediatorFR, NodeConfounder, NodeOutcome}

// Mediator binds one mediator's name to its two path coefficients: the
// activation coefficient on the treatment→mediator edge and the effect
// coefficient on the mediator→outcome edge.
type Mediator struct {
	Name       string  `json:"name" yaml:"name"`
	Activation float64 `json:"activation" yaml:"activation"`
	Effect     float64 `json:"effect" yaml:"effect"`
}

// Coefficients parameterizes every edge of the graph plus the outcome
// intercept. A zero value is valid (all effects zero); arity is not.
type Coefficients struct {
	// Intercept is the constant term of the outcome equation.
	Intercept float64 `json:"intercept" yaml:"intercept"`

	// Mediators holds one named record per mediator, in canonical order
	// (OS, OP, FM, FR).
	Mediators [NumMediators]Mediator `json:"mediators" yaml:"mediators"`

	// Direct is the coefficient on the treatment→outcome edge.
	Direct float64 `json:"direct" yaml:"direct"`

	// Confounder is the coefficient on the confounder→outcome edge.
	Confounder float64 `json:"confounder" yaml:"confounder"`
}

// NewCoefficients builds a Coefficients from positional activation and
// effect vectors, matching them to mediators by canonical order. Both
// vectors must have exactly NumMediators entries.
func NewCoefficients(intercept float64, activations, effects []float64, direct, confounder float64) (Coefficients, error) {
	if len(activations) != NumMediators {
		return Coefficients{}, fmt.Errorf("expected %d mediator activation coefficients, got %d", NumMediators, len(activations))
	}
	if len(effects) != NumMediators {
		return Coefficients{}, fmt.Errorf("expected %d mediator effect coefficients, got %d", NumMediators, len(effects))
	}

	c := Coefficients{
		Intercept:  intercept,
		Direct:     direct,
		Confounder: confounder,
	}
	for i, name := range MediatorNames {
		c.Mediators[i] = Mediator{
			Name:       name,
			Activation: activations[i],
			Effect:     effects[i],
		}
	}
	return c, nil
}

// Validate checks that mediator names match the canonical order. Coefficients
// built via NewCoefficients always pass; hand-assembled or deserialized
// values may not.
func (c Coefficients) Validate() error {
	for i, m := range c.Mediators {
		if m.Name != MediatorNames[i] {
			return fmt.Errorf("mediator %d: expected name %q, got %q", i, MediatorNames[i], m.Name)
		}
	}
	return nil
}

// Activations returns the mediator activation coefficients in canonical order.
func (c Coefficients) Activations() []float64 {
	out := make([]float64, NumMediators)
	for i, m := range c.Mediators {
		out[i] = m.Activation
	}
	return out
}

// Effects returns the mediator effect coefficients in canonical order.
func (c Coefficients) Effects() []float64 {
	out := make([]float64, NumMediators)
	for i, m := range c.Mediators {
		out[i] = m.Effect
	}
	return out
}
