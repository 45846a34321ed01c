package main

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestEffectCommand(t *testing.T) {
	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newEffectCmd())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"effect",
		"--activations=-1,-.5,-2,.25",
		"--effects=.2,.4,.3,-1",
		"--direct=-.4",
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("effect failed: %v", err)
	}

	if !strings.Contains(out.String(), "total") || !strings.Contains(out.String(), "-1.6500") {
		t.Errorf("output missing total -1.6500:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "SM->OS->MH") {
		t.Errorf("output missing path breakdown:\n%s", out.String())
	}
}

func TestEffectCommand_JSON(t *testing.T) {
	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newEffectCmd())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"effect", "--json",
		"--activations=.3,.4,1,2",
		"--effects=.4,1,.75,.3",
		"--direct=-.4",
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("effect --json failed: %v", err)
	}

	var result struct {
		Total float64           `json:"total"`
		Paths []json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if math.Abs(result.Total-1.47) > 1e-12 {
		t.Errorf("total = %v, want 1.47", result.Total)
	}
	if len(result.Paths) != 5 {
		t.Errorf("len(paths) = %d, want 5", len(result.Paths))
	}
}

func TestEffectCommand_WrongArity(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "three activations",
			args: []string{"effect", "--activations=1,2,3", "--effects=1,2,3,4", "--direct=0"},
		},
		{
			name: "five effects",
			args: []string{"effect", "--activations=1,2,3,4", "--effects=1,2,3,4,5", "--direct=0"},
		},
		{
			name: "missing activations",
			args: []string{"effect", "--effects=1,2,3,4", "--direct=0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd := newTestRootCmd()
			rootCmd.AddCommand(newEffectCmd())
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})
			rootCmd.SetArgs(tt.args)

			if err := rootCmd.Execute(); err == nil {
				t.Error("expected arity error, got nil")
			}
		})
	}
}
