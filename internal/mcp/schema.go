package mcp

import (
	"github.com/kmills/causalpath/internal/effect"
	"github.com/kmills/causalpath/internal/model"
	"github.com/kmills/causalpath/internal/regress"
)

// CoefficientsInput is the wire form of a coefficient vector. Activation
// and effect vectors are positional against the canonical mediator order
// (OS, OP, FM, FR) and must have exactly four entries.
type CoefficientsInput struct {
	Intercept   float64   `json:"intercept,omitempty" jsonschema:"Intercept of the outcome equation"`
	Activations []float64 `json:"activations" jsonschema:"Treatment-to-mediator coefficients in order OS OP FM FR (exactly 4)"`
	Effects     []float64 `json:"effects" jsonschema:"Mediator-to-outcome coefficients in order OS OP FM FR (exactly 4)"`
	Direct      float64   `json:"direct" jsonschema:"Direct treatment-to-outcome coefficient"`
	Confounder  float64   `json:"confounder,omitempty" jsonschema:"Confounder-to-outcome coefficient"`
}

// toModel converts the wire form to model.Coefficients, surfacing arity
// errors to the tool caller.
func (ci CoefficientsInput) toModel() (model.Coefficients, error) {
	return model.NewCoefficients(ci.Intercept, ci.Activations, ci.Effects, ci.Direct, ci.Confounder)
}

// EffectInput defines the input for the causal_effect tool.
type EffectInput struct {
	Coefficients CoefficientsInput `json:"coefficients" jsonschema:"Coefficient vector to evaluate"`
}

// EffectOutput defines the output for the causal_effect tool.
type EffectOutput struct {
	Total float64                   `json:"total" jsonschema:"Total causal effect of the treatment on the outcome"`
	Paths []effect.PathContribution `json:"paths" jsonschema:"Per-path contributions summing to the total"`
}

// SimulateInput defines the input for the causal_simulate tool.
type SimulateInput struct {
	Coefficients CoefficientsInput `json:"coefficients" jsonschema:"Coefficient vector for the data-generating process"`
	NumRows      int               `json:"num_rows" jsonschema:"Number of rows to simulate (positive)"`
	Seed         *uint64           `json:"seed,omitempty" jsonschema:"Deterministic seed; omit for entropy"`
}

// ColumnSummary summarizes one simulated column.
type ColumnSummary struct {
	Name   string  `json:"name"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// SimulateOutput defines the output for the causal_simulate tool.
type SimulateOutput struct {
	NumRows int             `json:"num_rows"`
	Columns []ColumnSummary `json:"columns" jsonschema:"Per-column summary statistics"`
}

// FitInput defines the input for the causal_fit tool.
type FitInput struct {
	Coefficients CoefficientsInput `json:"coefficients" jsonschema:"Coefficient vector for the data-generating process"`
	NumRows      int               `json:"num_rows" jsonschema:"Number of rows to simulate (positive)"`
	Seed         *uint64           `json:"seed,omitempty" jsonschema:"Deterministic seed; omit for entropy"`
	Persist      bool              `json:"persist,omitempty" jsonschema:"Save the run to the project run store"`
}

// FitOutput defines the output for the causal_fit tool.
type FitOutput struct {
	RunID          string           `json:"run_id"`
	AnalyticTotal  float64          `json:"analytic_total"`
	TotalRecovery  regress.Recovery `json:"total_recovery" jsonschema:"Fitted total effect vs the closed-form value"`
	DirectRecovery regress.Recovery `json:"direct_recovery" jsonschema:"Fitted direct effect vs the direct coefficient"`
	Persisted      bool             `json:"persisted"`
}

// GraphInput defines the input for the causal_graph tool.
type GraphInput struct {
	Format       string            `json:"format,omitempty" jsonschema:"Output format: dot (default) or json"`
	Coefficients CoefficientsInput `json:"coefficients" jsonschema:"Coefficients used as edge labels"`
}

// GraphOutput defines the output for the causal_graph tool.
type GraphOutput struct {
	Format string                 `json:"format"`
	DOT    string                 `json:"dot,omitempty" jsonschema:"Graphviz DOT source (dot format)"`
	Graph  map[string]interface{} `json:"graph,omitempty" jsonschema:"Node/edge arrays (json format)"`
}
