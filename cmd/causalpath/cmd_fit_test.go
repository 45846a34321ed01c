package main

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/kmills/causalpath/internal/experiment"
)

func TestFitCommand(t *testing.T) {
	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newFitCmd())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"fit",
		"--activations=-1,-.5,-2,.25",
		"--effects=.2,.4,.3,-1",
		"--direct=-.4",
		"--rows", "2000",
		"--seed", "42",
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	if !strings.Contains(out.String(), "total effect") || !strings.Contains(out.String(), "-1.6500") {
		t.Errorf("output missing analytic total -1.6500:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "direct effect") {
		t.Errorf("output missing direct effect line:\n%s", out.String())
	}
}

func TestFitCommand_JSONAndSave(t *testing.T) {
	root := t.TempDir()

	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newFitCmd())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"fit", "--json", "--save",
		"--root", root,
		"--activations=.3,.4,1,2",
		"--effects=.4,1,.75,.3",
		"--direct=-.4",
		"--rows", "1000",
		"--seed", "7",
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("fit --json --save failed: %v", err)
	}

	var run experiment.Run
	if err := json.Unmarshal(out.Bytes(), &run); err != nil {
		t.Fatalf("output is not a valid run: %v\n%s", err, out.String())
	}
	if run.ID == "" {
		t.Error("run ID is empty")
	}
	if math.Abs(run.AnalyticTotal-1.47) > 1e-12 {
		t.Errorf("AnalyticTotal = %v, want 1.47", run.AnalyticTotal)
	}

	// Saved run must be listable.
	listCmd := newTestRootCmd()
	listCmd.AddCommand(newRunsCmd())
	var listOut bytes.Buffer
	listCmd.SetOut(&listOut)
	listCmd.SetArgs([]string{"runs", "list", "--root", root})
	if err := listCmd.Execute(); err != nil {
		t.Fatalf("runs list failed: %v", err)
	}
	if !strings.Contains(listOut.String(), run.ID) {
		t.Errorf("runs list missing saved run %s:\n%s", run.ID, listOut.String())
	}
}

func TestRunsList_Empty(t *testing.T) {
	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newRunsCmd())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"runs", "list", "--root", t.TempDir()})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("runs list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No runs stored.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
