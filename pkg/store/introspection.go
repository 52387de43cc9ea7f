package store

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Root      string `json:"root"`
	Documents int    `json:"documents"`
	Versions  int    `json:"versions"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	versions := 0
	for _, doc := range s.documents {
		versions += len(doc.Versions)
	}

	return StoreState{
		Root:      s.root,
		Documents: len(s.documents),
		Versions:  versions,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
