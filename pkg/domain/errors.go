package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph wraps every topology validation failure.
var ErrInvalidGraph = errors.New("invalid graph")

// Topology validation failures. Each is joined with ErrInvalidGraph by the validator.
var (
	ErrReservedNode  = errors.New("reserved node id")
	ErrDuplicateNode = errors.New("duplicate node")
	ErrUnknownNode   = errors.New("unknown node")
	ErrNoEntry       = errors.New("no edge from start")
	ErrUnreachable   = errors.New("unreachable node")
	ErrCycle         = errors.New("cycle detected")
)

// ErrMissingConfig is returned when a required configuration field is absent.
var ErrMissingConfig = errors.New("missing required configuration")

// ErrInvalidConfig is returned when a configuration value is present but not usable.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrEmptyResponse is returned when the model answers without any message.
var ErrEmptyResponse = errors.New("empty model response")

// NodeError reports the node that failed during an invocation.
// It unwraps to the node's own error so callers can match its class.
type NodeError struct {
	Node string
	Err  error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %q: %v", e.Node, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}
