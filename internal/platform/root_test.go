package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/strata/pkg/store"
)

func TestFindRoot(t *testing.T) {
	t.Run("Finds Marker In Ancestor", func(t *testing.T) {
		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, store.DefaultSystemDir), 0755); err != nil {
			t.Fatal(err)
		}
		nested := filepath.Join(root, "docs", "deep")
		if err := os.MkdirAll(nested, 0755); err != nil {
			t.Fatal(err)
		}

		got, err := FindRoot(nested)
		if err != nil {
			t.Fatalf("FindRoot failed: %v", err)
		}

		// TempDir may itself sit behind a symlink on some platforms;
		// compare resolved paths.
		wantResolved, _ := filepath.EvalSymlinks(root)
		gotResolved, _ := filepath.EvalSymlinks(got)
		if gotResolved != wantResolved {
			t.Errorf("FindRoot = %s, want %s", got, root)
		}
	})

	t.Run("Starts At The Marker Itself", func(t *testing.T) {
		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, store.DefaultSystemDir), 0755); err != nil {
			t.Fatal(err)
		}

		got, err := FindRoot(root)
		if err != nil {
			t.Fatalf("FindRoot failed: %v", err)
		}
		if got != root {
			t.Errorf("FindRoot = %s, want %s", got, root)
		}
	})

	t.Run("No Marker Anywhere", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := FindRoot(dir); err == nil {
			t.Error("Expected error when no store root exists")
		}
	})

	t.Run("Marker Must Be A Directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, store.DefaultSystemDir), []byte("file"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := FindRoot(dir); err == nil {
			t.Error("A plain file must not count as a store marker")
		}
	})
}
