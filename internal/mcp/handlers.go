package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"gonum.org/v1/gonum/stat"

	"github.com/kmills/causalpath/internal/effect"
	"github.com/kmills/causalpath/internal/experiment"
	"github.com/kmills/causalpath/internal/model"
	"github.com/kmills/causalpath/internal/sample"
	"github.com/kmills/causalpath/internal/visualization"
)

// registerTools registers all causalpath MCP tools with the server.
func (s *Server) registerTools() error {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "causal_effect",
		Description: "Compute the closed-form total causal effect for a coefficient vector, with per-path contributions",
	}, s.handleEffect)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "causal_simulate",
		Description: "Simulate a dataset from the causal graph and return per-column summary statistics",
	}, s.handleSimulate)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "causal_fit",
		Description: "Simulate a dataset, fit total-effect and direct-effect regressions, and compare against the closed-form values",
	}, s.handleFit)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "causal_graph",
		Description: "Render the causal DAG in DOT (Graphviz) or JSON format with coefficient edge labels",
	}, s.handleGraph)

	return nil
}

// handleEffect implements the causal_effect tool.
func (s *Server) handleEffect(ctx context.Context, req *sdk.CallToolRequest, args EffectInput) (*sdk.CallToolResult, EffectOutput, error) {
	coeffs, err := args.Coefficients.toModel()
	if err != nil {
		return nil, EffectOutput{}, err
	}

	return nil, EffectOutput{
		Total: effect.TotalEffect(coeffs),
		Paths: effect.PathContributions(coeffs),
	}, nil
}

// handleSimulate implements the causal_simulate tool.
func (s *Server) handleSimulate(ctx context.Context, req *sdk.CallToolRequest, args SimulateInput) (*sdk.CallToolResult, SimulateOutput, error) {
	coeffs, err := args.Coefficients.toModel()
	if err != nil {
		return nil, SimulateOutput{}, err
	}

	var gen *sample.Generator
	if args.Seed != nil {
		gen, err = sample.NewSeeded(coeffs, *args.Seed)
	} else {
		gen, err = sample.New(coeffs)
	}
	if err != nil {
		return nil, SimulateOutput{}, err
	}

	tbl, err := gen.Generate(args.NumRows)
	if err != nil {
		return nil, SimulateOutput{}, err
	}

	columns := make([]ColumnSummary, 0, len(tbl.Names()))
	for _, name := range tbl.Names() {
		col, err := tbl.Column(name)
		if err != nil {
			return nil, SimulateOutput{}, err
		}
		mean, std := stat.MeanStdDev(col, nil)
		columns = append(columns, ColumnSummary{Name: name, Mean: mean, StdDev: std})
	}

	return nil, SimulateOutput{
		NumRows: tbl.NumRows(),
		Columns: columns,
	}, nil
}

// handleFit implements the causal_fit tool.
func (s *Server) handleFit(ctx context.Context, req *sdk.CallToolRequest, args FitInput) (*sdk.CallToolResult, FitOutput, error) {
	coeffs, err := args.Coefficients.toModel()
	if err != nil {
		return nil, FitOutput{}, err
	}

	runner := experiment.NewRunner(nil)
	run, _, err := runner.Execute(experiment.Params{
		Coefficients: coeffs,
		NumRows:      args.NumRows,
		Seed:         args.Seed,
	})
	if err != nil {
		return nil, FitOutput{}, err
	}

	persisted := false
	if args.Persist {
		if err := s.store.SaveRun(ctx, run); err != nil {
			return nil, FitOutput{}, fmt.Errorf("save run: %w", err)
		}
		persisted = true
	}

	return nil, FitOutput{
		RunID:          run.ID,
		AnalyticTotal:  run.AnalyticTotal,
		TotalRecovery:  run.TotalRecovery,
		DirectRecovery: run.DirectRecovery,
		Persisted:      persisted,
	}, nil
}

// handleGraph implements the causal_graph tool.
func (s *Server) handleGraph(ctx context.Context, req *sdk.CallToolRequest, args GraphInput) (*sdk.CallToolResult, GraphOutput, error) {
	coeffs, err := args.Coefficients.toModel()
	if err != nil {
		return nil, GraphOutput{}, err
	}

	format := args.Format
	if format == "" {
		format = string(visualization.FormatDOT)
	}

	g := model.CausalGraph()
	switch visualization.Format(format) {
	case visualization.FormatDOT:
		dot, err := visualization.RenderDOT(g, coeffs)
		if err != nil {
			return nil, GraphOutput{}, err
		}
		return nil, GraphOutput{Format: format, DOT: dot}, nil

	case visualization.FormatJSON:
		graph, err := visualization.RenderJSON(g, coeffs)
		if err != nil {
			return nil, GraphOutput{}, err
		}
		return nil, GraphOutput{Format: format, Graph: graph}, nil

	default:
		return nil, GraphOutput{}, fmt.Errorf("unsupported format %q (use 'dot' or 'json')", format)
	}
}
