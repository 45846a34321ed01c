package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmills/causalpath/internal/model"
	"github.com/kmills/causalpath/internal/visualization"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Visualize the causal graph",
		Long:  `Output the causal DAG in DOT (Graphviz) or JSON format, with edges labeled by the supplied coefficients.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			coeffs, err := coefficientsFromFlags(cmd)
			if err != nil {
				return err
			}

			g := model.CausalGraph()
			switch visualization.Format(format) {
			case visualization.FormatDOT:
				dot, err := visualization.RenderDOT(g, coeffs)
				if err != nil {
					return fmt.Errorf("render DOT: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), dot)

			case visualization.FormatJSON:
				result, err := visualization.RenderJSON(g, coeffs)
				if err != nil {
					return fmt.Errorf("render JSON: %w", err)
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("encode JSON: %w", err)
				}

			default:
				return fmt.Errorf("unsupported format %q (use 'dot' or 'json')", format)
			}

			return nil
		},
	}

	addCoefficientFlags(cmd)
	cmd.Flags().String("format", "dot", "Output format: dot or json")
	return cmd
}
