package dsl

import "github.com/aretw0/flash/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	id      string
	fn      domain.NodeFunc
	targets []string
	builder *Builder
}

// Do sets the processing function of the node.
func (n *NodeBuilder) Do(fn domain.NodeFunc) *NodeBuilder {
	n.fn = fn
	return n
}

// Go adds an unconditional edge to the target node (or End).
func (n *NodeBuilder) Go(target string) *NodeBuilder {
	n.targets = append(n.targets, target)
	return n
}

// ID returns the node identifier.
func (n *NodeBuilder) ID() string {
	return n.id
}

func (n *NodeBuilder) edges() []domain.Edge {
	out := make([]domain.Edge, len(n.targets))
	for i, to := range n.targets {
		out[i] = domain.Edge{From: n.id, To: to}
	}
	return out
}
