package domain

import "context"

// Reserved marker IDs. They never run; they only anchor the entry and exit edges.
const (
	Start = "__start__"
	End   = "__end__"
)

// NodeFunc is the processing step of a node. It receives a snapshot of the
// current state and returns the delta to merge.
type NodeFunc func(ctx context.Context, state State) (Delta, error)

// IsMarker reports whether id is one of the reserved Start/End markers.
func IsMarker(id string) bool {
	return id == Start || id == End
}
