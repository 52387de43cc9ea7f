// Document is the central entity of the domain.
package core

import (
	"fmt"
	"time"
)

// Document owns the ordered version history of one tracked file.
//
// Name preserves the path exactly as the caller gave it, for display.
// Path is the resolved absolute location used for file I/O, so relative
// and absolute references to the same file behave identically.
//
// Versions is append-only and ordered by Number ascending; it is never
// empty once the Document exists, and the first Version is always 1.
type Document struct {
	Name           string    `json:"name"`
	Path           string    `json:"path"`
	CurrentVersion int       `json:"current_version"`
	Versions       []Version `json:"versions"`
}

// NewDocument creates a Document with its first snapshot already recorded.
func NewDocument(name, path, content string, metadata map[string]string) *Document {
	first := NewVersion(1, content, metadata)
	return &Document{
		Name:           name,
		Path:           path,
		CurrentVersion: first.Number,
		Versions:       []Version{first},
	}
}

// Latest returns the most recent Version.
func (d *Document) Latest() Version {
	return d.Versions[len(d.Versions)-1]
}

// ByNumber returns the Version with the given number.
// Numbers are contiguous from 1, so the slice index is the number minus one.
func (d *Document) ByNumber(n int) (Version, error) {
	if n < 1 || n > d.CurrentVersion {
		return Version{}, fmt.Errorf("version %d out of range 1-%d: %w", n, d.CurrentVersion, ErrInvalidVersion)
	}
	return d.Versions[n-1], nil
}

// HasChanged reports whether content differs from the latest snapshot.
// Equal hashes are treated as equal content; there is no byte-level fallback.
func (d *Document) HasChanged(content string) bool {
	return HashContent(content) != d.Latest().Hash
}

// Append records a new snapshot with the next sequence number and returns it.
// It performs no change check; deciding whether anything changed is the
// caller's responsibility.
func (d *Document) Append(content string, metadata map[string]string) Version {
	v := NewVersion(d.CurrentVersion+1, content, metadata)
	d.Versions = append(d.Versions, v)
	d.CurrentVersion = v.Number
	return v
}

// LastUpdate returns the capture time of the latest snapshot.
func (d *Document) LastUpdate() time.Time {
	return d.Latest().Timestamp
}
