package core

import (
	"crypto/sha256"
	"encoding/hex"
	"maps"
	"time"
)

// Version is one immutable snapshot of a document's content.
// All fields are fixed at construction; nothing mutates a Version afterwards.
type Version struct {
	Number    int               `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Hash      string            `json:"hash"`
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata"`
}

// NewVersion builds a snapshot of content with the given sequence number.
// The metadata map is copied so later changes by the caller cannot leak in.
func NewVersion(number int, content string, metadata map[string]string) Version {
	md := maps.Clone(metadata)
	if md == nil {
		md = map[string]string{}
	}

	return Version{
		Number:    number,
		Timestamp: time.Now(),
		Hash:      HashContent(content),
		Content:   content,
		Metadata:  md,
	}
}

// HashContent returns the SHA-256 hex digest of content.
// The digest is used for change detection only, never for addressing.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
