package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		filename := "/dir/test.txt"
		if err := fs.MkdirAll("/dir", 0755); err != nil {
			t.Fatal(err)
		}

		if err := writeFileAtomic(fs, filename, []byte("hello atomic"), 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := afero.ReadFile(fs, filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != "hello atomic" {
			t.Errorf("Expected content 'hello atomic', got '%s'", string(got))
		}
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		filename := "/dir/test.txt"
		if err := afero.WriteFile(fs, filename, []byte("initial"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		if err := writeFileAtomic(fs, filename, []byte("replaced"), 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, _ := afero.ReadFile(fs, filename)
		if string(got) != "replaced" {
			t.Errorf("Expected 'replaced', got '%s'", string(got))
		}
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		if err := writeFileAtomic(fs, "/dir/test.txt", []byte("x"), 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		entries, err := afero.ReadDir(fs, "/dir")
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("Temp file left behind: %s", e.Name())
			}
		}
	})

	t.Run("Works On The Real Filesystem", func(t *testing.T) {
		fs := afero.NewOsFs()
		filename := filepath.Join(t.TempDir(), "test.txt")

		if err := writeFileAtomic(fs, filename, []byte("on disk"), 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := afero.ReadFile(fs, filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != "on disk" {
			t.Errorf("Expected 'on disk', got '%s'", string(got))
		}
	})
}
