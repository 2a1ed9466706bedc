package runtime

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/flash/internal/logging"
	"github.com/aretw0/flash/internal/validator"
	"github.com/aretw0/flash/pkg/domain"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NodeSpec declares one processing node.
type NodeSpec struct {
	ID string
	Fn domain.NodeFunc
}

// Topology is the uncompiled graph: nodes in declaration order plus edges.
type Topology struct {
	Nodes []NodeSpec
	Edges []domain.Edge
}

// Graph is a compiled, immutable message graph.
// It holds no per-invocation state and can be invoked repeatedly (and concurrently).
type Graph struct {
	order  []string
	fns    map[string]domain.NodeFunc
	edges  []domain.Edge
	merge  domain.MergeFunc
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	tracer trace.Tracer
}

// Option defines a functional option for configuring a compiled Graph.
type Option func(*Graph)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		g.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(g *Graph) {
		g.hooks = hooks
	}
}

// WithTracer emits one span per invocation and one per node.
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Graph) {
		g.tracer = tracer
	}
}

// WithMerge replaces the default append-only merge rule.
func WithMerge(merge domain.MergeFunc) Option {
	return func(g *Graph) {
		g.merge = merge
	}
}

// Compile validates the topology and builds the runnable graph.
func Compile(t Topology, opts ...Option) (*Graph, error) {
	ids := make([]string, len(t.Nodes))
	fns := make(map[string]domain.NodeFunc, len(t.Nodes))
	for i, n := range t.Nodes {
		ids[i] = n.ID
		if n.Fn == nil {
			return nil, fmt.Errorf("%w: node %q has no function", domain.ErrInvalidGraph, n.ID)
		}
		fns[n.ID] = n.Fn
	}

	order, err := validator.Validate(ids, t.Edges)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		order: order,
		fns:   fns,
		edges: append([]domain.Edge(nil), t.Edges...),
		merge: domain.AppendMessages,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logging.NewNop()
	}
	if g.tracer == nil {
		g.tracer = noop.NewTracerProvider().Tracer("")
	}
	if g.merge == nil {
		g.merge = domain.AppendMessages
	}

	g.logger.Debug("Graph Compiled", "nodes", len(order), "edges", len(g.edges))
	return g, nil
}

// Nodes returns the node IDs in execution order.
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.order...)
}

// Edges returns the declared edges.
func (g *Graph) Edges() []domain.Edge {
	return append([]domain.Edge(nil), g.edges...)
}
