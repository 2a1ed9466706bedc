package dsl

import (
	"fmt"

	"github.com/aretw0/flash/internal/runtime"
	"github.com/aretw0/flash/pkg/domain"
)

// Marker aliases, so graphs can be declared without importing domain.
const (
	Start = domain.Start
	End   = domain.End
)

// Builder manages the graph construction.
type Builder struct {
	order []string
	nodes map[string]*NodeBuilder
	entry *NodeBuilder
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Start returns the builder for the entry marker. Only Go is meaningful on it.
func (b *Builder) Start() *NodeBuilder {
	if b.entry == nil {
		b.entry = &NodeBuilder{id: Start, builder: b}
	}
	return b.entry
}

// Add creates a new node in the graph.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		id:      id,
		builder: b,
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Topology returns the declared graph without compiling it.
func (b *Builder) Topology() runtime.Topology {
	var t runtime.Topology
	if b.entry != nil {
		t.Edges = append(t.Edges, b.entry.edges()...)
	}
	for _, id := range b.order {
		nb := b.nodes[id]
		t.Nodes = append(t.Nodes, runtime.NodeSpec{ID: id, Fn: nb.fn})
		t.Edges = append(t.Edges, nb.edges()...)
	}
	return t
}

// Compile validates the graph and returns the runnable form.
func (b *Builder) Compile(opts ...runtime.Option) (*runtime.Graph, error) {
	g, err := runtime.Compile(b.Topology(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to compile graph: %w", err)
	}
	return g, nil
}
