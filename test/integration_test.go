// ABOUTME: Integration tests for fitdash CLI.
// ABOUTME: Tests full workflow from CLI commands against a built binary.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}

	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "fitdash")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/fitdash")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	// Isolate config and data
	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
		"NO_COLOR=1",
	)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	steps := []struct {
		args []string
		want string
	}{
		{[]string{"exercise", "add", "Bench Press", "--sets", "3", "--reps", "8", "--weight", "50"}, "Added Bench Press"},
		{[]string{"exercise", "add", "Running", "--minutes", "30"}, "Added Running"},
		{[]string{"exercise", "list"}, "2/0 done"},
		{[]string{"food", "log", "oats", "--qty", "2"}, "Logged Oats"},
		{[]string{"food", "list"}, "300 / 2400 kcal"},
		{[]string{"sleep", "set", "7.5", "--quality", "good"}, "Recorded 7.5 h"},
		{[]string{"weight", "81.4"}, "Recorded 81.4 kg"},
		{[]string{"trends"}, "Calories Out (Est.)"},
		{[]string{"level"}, "Total XP 45"},
		{[]string{"export", "json"}, `"tool": "fitdash"`},
	}

	for _, s := range steps {
		output, err := run(s.args...)
		if err != nil {
			t.Fatalf("%v failed: %v\n%s", s.args, err, output)
		}
		if !strings.Contains(output, s.want) {
			t.Errorf("%v: expected %q in output, got: %s", s.args, s.want, output)
		}
	}

	// Errors exit non-zero with a message
	output, err := run("exercise", "rm", "deadbeef")
	if err == nil {
		t.Error("Expected error removing an unknown exercise")
	}
	if !strings.Contains(output, "not found") {
		t.Errorf("Expected 'not found' in output, got: %s", output)
	}
}
