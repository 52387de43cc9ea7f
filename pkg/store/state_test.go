package store

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/aretw0/strata/pkg/core"
)

func TestLoadState(t *testing.T) {
	t.Run("Missing File Means Fresh Store", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		docs, err := loadState(fs, "/nowhere/state.json")
		if err != nil {
			t.Fatalf("loadState failed: %v", err)
		}
		if len(docs) != 0 {
			t.Errorf("Expected empty map, got %d entries", len(docs))
		}
	})

	t.Run("Corrupted File Is An Error", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, "/state.json", []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadState(fs, "/state.json"); err == nil {
			t.Error("Expected parse error for corrupted state")
		}
	})
}

func TestSaveState(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		docs := map[string]*core.Document{
			"a.md": core.NewDocument("a.md", "/root/a.md", "héllo 日本語\n", map[string]string{"author": "ana"}),
			"b.md": core.NewDocument("b.md", "/root/b.md", "", nil),
		}
		docs["a.md"].Append("second\n", nil)

		if err := saveState(fs, "/root/.strata/state.json", docs); err != nil {
			t.Fatalf("saveState failed: %v", err)
		}

		loaded, err := loadState(fs, "/root/.strata/state.json")
		if err != nil {
			t.Fatalf("loadState failed: %v", err)
		}

		if len(loaded) != 2 {
			t.Fatalf("Expected 2 documents, got %d", len(loaded))
		}
		a := loaded["a.md"]
		if a.CurrentVersion != 2 || len(a.Versions) != 2 {
			t.Errorf("History lost: current=%d versions=%d", a.CurrentVersion, len(a.Versions))
		}
		if a.Versions[0].Content != "héllo 日本語\n" {
			t.Errorf("Multi-byte content lost: %q", a.Versions[0].Content)
		}
		if a.Versions[0].Hash != docs["a.md"].Versions[0].Hash {
			t.Error("Hash drifted through round trip")
		}
		if !a.Versions[0].Timestamp.Equal(docs["a.md"].Versions[0].Timestamp) {
			t.Error("Timestamp drifted through round trip")
		}
		if b := loaded["b.md"]; len(b.Versions) != 1 || b.Versions[0].Content != "" {
			t.Errorf("Empty-content document lost: %+v", b)
		}
	})

	t.Run("Uses Expected Schema", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		docs := map[string]*core.Document{
			"a.md": core.NewDocument("a.md", "/root/a.md", "X", nil),
		}
		if err := saveState(fs, "/state.json", docs); err != nil {
			t.Fatalf("saveState failed: %v", err)
		}

		data, err := afero.ReadFile(fs, "/state.json")
		if err != nil {
			t.Fatal(err)
		}
		for _, key := range []string{`"documents"`, `"current_version"`, `"versions"`, `"hash"`, `"timestamp"`, `"metadata"`} {
			if !strings.Contains(string(data), key) {
				t.Errorf("State file missing %s key", key)
			}
		}
	})
}
