package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmills/causalpath/internal/config"
	"github.com/kmills/causalpath/internal/logging"
	"github.com/kmills/causalpath/internal/model"
)

// addCoefficientFlags registers the coefficient flags shared by every
// command that needs a full coefficient vector.
func addCoefficientFlags(cmd *cobra.Command) {
	cmd.Flags().String("activations", "", "Treatment-to-mediator coefficients, comma-separated 4-vector (order: OS,OP,FM,FR)")
	cmd.Flags().String("effects", "", "Mediator-to-outcome coefficients, comma-separated 4-vector (order: OS,OP,FM,FR)")
	cmd.Flags().Float64("direct", 0, "Direct treatment-to-outcome coefficient")
	cmd.Flags().Float64("intercept", 0, "Intercept of the outcome equation")
	cmd.Flags().Float64("confounder", 0, "Confounder-to-outcome coefficient")
}

// coefficientsFromFlags builds a validated coefficient vector from the
// flags registered by addCoefficientFlags. Wrong arity fails here, before
// any sampling happens.
func coefficientsFromFlags(cmd *cobra.Command) (model.Coefficients, error) {
	activationsStr, _ := cmd.Flags().GetString("activations")
	effectsStr, _ := cmd.Flags().GetString("effects")
	direct, _ := cmd.Flags().GetFloat64("direct")
	intercept, _ := cmd.Flags().GetFloat64("intercept")
	confounder, _ := cmd.Flags().GetFloat64("confounder")

	activations, err := parseVector(activationsStr)
	if err != nil {
		return model.Coefficients{}, fmt.Errorf("--activations: %w", err)
	}
	effects, err := parseVector(effectsStr)
	if err != nil {
		return model.Coefficients{}, fmt.Errorf("--effects: %w", err)
	}

	return model.NewCoefficients(intercept, activations, effects, direct, confounder)
}

// parseVector parses a comma-separated list of real numbers.
func parseVector(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("value is required")
	}

	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("element %d: %q is not a number", i+1, strings.TrimSpace(p))
		}
		out[i] = v
	}
	return out, nil
}

// seedFromFlags returns the seed flag value, or nil when the flag was not
// set (entropy seeding).
func seedFromFlags(cmd *cobra.Command) *uint64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	seed, _ := cmd.Flags().GetUint64("seed")
	return &seed
}

// loadConfig resolves the effective config for a command: the --config
// file when given, the default locations otherwise, with --log-level
// taking precedence over both.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newCommandLogger builds the operational logger for a command from the
// resolved config.
func newCommandLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
}
