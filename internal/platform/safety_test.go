package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsDevRun(t *testing.T) {
	// The test binary itself is the canonical dev-run case.
	if !IsDevRun() {
		t.Error("IsDevRun should be true under go test")
	}
}

func TestResolveStorePath(t *testing.T) {
	t.Run("No Force Keeps Path", func(t *testing.T) {
		if got := ResolveStorePath("./docs", false); got != "./docs" {
			t.Errorf("Expected ./docs, got %s", got)
		}
		if got := ResolveStorePath("", false); got != "." {
			t.Errorf("Expected ., got %s", got)
		}
	})

	t.Run("Force Reroots Into Temp", func(t *testing.T) {
		got := ResolveStorePath("/home/user/docs", true)
		if !strings.HasPrefix(got, filepath.Join(os.TempDir(), "strata-dev")) {
			t.Errorf("Expected sandbox under temp, got %s", got)
		}
		if filepath.Base(got) != "docs" {
			t.Errorf("Expected base name preserved, got %s", got)
		}
	})

	t.Run("Paths Already In Temp Are Trusted", func(t *testing.T) {
		dir := t.TempDir()
		if got := ResolveStorePath(dir, true); got != filepath.Clean(dir) {
			t.Errorf("Temp path should pass through, got %s", got)
		}
	})

	t.Run("Empty Path Gets Default Sandbox", func(t *testing.T) {
		got := ResolveStorePath("", true)
		want := filepath.Join(os.TempDir(), "strata-dev", "default")
		if got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	})
}
