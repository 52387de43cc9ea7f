package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/strata/pkg/store"
)

// FindRoot recursively looks upwards from startDir for a store root,
// indicated by the hidden system directory. Returns the absolute path
// of the directory containing it.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasDir(dir, store.DefaultSystemDir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no %s directory found above %s", store.DefaultSystemDir, abs)
}

func hasDir(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.IsDir()
}
