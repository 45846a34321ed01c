package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmills/causalpath/internal/store"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect stored experiment runs",
	}

	cmd.AddCommand(newRunsListCmd(), newRunsShowCmd(), newRunsExportCmd())
	return cmd
}

func openRunStore(cmd *cobra.Command) (*store.RunStore, error) {
	root, _ := cmd.Flags().GetString("root")
	rs, err := store.NewRunStore(root)
	if err != nil {
		return nil, fmt.Errorf("open run store: %w", err)
	}
	return rs, nil
}

func newRunsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			limit, _ := cmd.Flags().GetInt("limit")

			rs, err := openRunStore(cmd)
			if err != nil {
				return err
			}
			defer rs.Close()

			summaries, err := rs.ListRuns(context.Background(), limit)
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}

			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs stored.")
				return nil
			}
			for _, s := range summaries {
				seed := "entropy"
				if s.Seed != nil {
					seed = fmt.Sprintf("%d", *s.Seed)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  rows=%-7d seed=%-10s analytic=%+.4f fitted=%+.4f\n",
					s.ID, s.NumRows, seed, s.AnalyticTotal, s.FittedTotal)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum runs to list (0 = all)")
	return cmd
}

func newRunsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the full record of one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := openRunStore(cmd)
			if err != nil {
				return err
			}
			defer rs.Close()

			run, err := rs.GetRun(context.Background(), args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(run)
		},
	}
}

func newRunsExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all runs as JSONL",
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				return fmt.Errorf("--output is required")
			}

			rs, err := openRunStore(cmd)
			if err != nil {
				return err
			}
			defer rs.Close()

			n, err := rs.ExportJSONL(context.Background(), output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d runs to %s\n", n, output)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file path")
	return cmd
}
