package core

// EventType represents the kind of change observed on a tracked file.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventRemove EventType = "REMOVE"
)

// Event represents a change observed on a tracked file.
type Event struct {
	Type      EventType
	Path      string // logical path, as keyed in the store
	Timestamp int64  // Unix timestamp
}

// String implements lifecycle.Event so watch events can feed a
// lifecycle.Source directly.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
