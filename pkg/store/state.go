package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/aretw0/strata/pkg/core"
)

// StateFileName is the name of the persisted state file inside the
// hidden system directory.
const StateFileName = "state.json"

// stateFile is the on-disk shape of the whole store: every document
// with its full version history, keyed by logical path.
type stateFile struct {
	Documents map[string]*core.Document `json:"documents"`
}

// loadState reads the state file. A missing file is not an error; it
// means a fresh store with no documents yet.
func loadState(fs afero.Fs, path string) (map[string]*core.Document, error) {
	data, err := afero.ReadFile(fs, path)
	if os.IsNotExist(err) {
		return make(map[string]*core.Document), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var sf stateFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", path, err)
	}
	if sf.Documents == nil {
		sf.Documents = make(map[string]*core.Document)
	}
	return sf.Documents, nil
}

// saveState serializes the full document map and atomically replaces
// the state file. The parent directory is created if needed.
func saveState(fs afero.Fs, path string, documents map[string]*core.Document) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(stateFile{Documents: documents}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
