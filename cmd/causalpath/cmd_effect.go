package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmills/causalpath/internal/effect"
)

func newEffectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "effect",
		Short: "Compute the closed-form total causal effect",
		Long: `Compute the analytically known total causal effect for a coefficient
vector: the sum of activation×effect over the four mediated paths plus the
direct coefficient. No data is simulated.

Examples:
  causalpath effect --activations=-1,-.5,-2,.25 --effects=.2,.4,.3,-1 --direct=-.4
  causalpath effect --activations=.3,.4,1,2 --effects=.4,1,.75,.3 --direct=-.4 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			coeffs, err := coefficientsFromFlags(cmd)
			if err != nil {
				return err
			}

			total := effect.TotalEffect(coeffs)
			paths := effect.PathContributions(coeffs)

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"total": total,
					"paths": paths,
				})
			}

			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %+.4f\n", p.Path, p.Contribution)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %+.4f\n", "total", total)
			return nil
		},
	}

	addCoefficientFlags(cmd)
	return cmd
}
