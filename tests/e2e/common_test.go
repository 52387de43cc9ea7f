package e2e

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildStrataBinary builds the strata binary in the specified directory and returns its path.
func buildStrataBinary(t *testing.T, dir string) string {
	t.Helper()
	bin := filepath.Join(dir, "strata.exe")
	buildCmd := exec.Command("go", "build", "-o", bin, "../../cmd/strata")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build strata: %v\n%s", err, string(out))
	}
	return bin
}

// runCLI executes the binary in workDir and returns combined output.
func runCLI(t *testing.T, bin, workDir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Dir = workDir
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}
