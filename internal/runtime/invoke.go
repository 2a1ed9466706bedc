package runtime

import (
	"context"
	"time"

	"github.com/aretw0/flash/pkg/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Invoke runs one pass over the graph, synchronously, starting from initial.
// Every node runs exactly once, in execution order, on a snapshot of the state so far;
// its delta is merged before the next node starts.
//
// If a node fails the pass stops there: Invoke returns a zero State and a
// *domain.NodeError wrapping the node's error. No partial state escapes.
func (g *Graph) Invoke(ctx context.Context, initial domain.State) (domain.State, error) {
	ctx, span := g.tracer.Start(ctx, "graph.invoke", trace.WithAttributes(
		attribute.Int("graph.nodes", len(g.order)),
		attribute.Int("state.messages", len(initial.Messages)),
	))
	defer span.End()

	state := initial.Clone()
	for _, id := range g.order {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return domain.State{}, err
		}

		delta, err := g.step(ctx, id, state)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return domain.State{}, &domain.NodeError{Node: id, Err: err}
		}
		state = g.merge(state, delta)
	}

	g.logger.Debug("Graph Finished", "messages", len(state.Messages))
	return state, nil
}

func (g *Graph) step(ctx context.Context, id string, state domain.State) (domain.Delta, error) {
	ctx, span := g.tracer.Start(ctx, "node "+id, trace.WithAttributes(attribute.String("node.id", id)))
	defer span.End()

	g.emit(ctx, g.hooks.OnNodeEnter, &domain.NodeEvent{
		Type:     domain.EventNodeEnter,
		NodeID:   id,
		Messages: len(state.Messages),
	})
	g.logger.Debug("Enter Node", "node_id", id, "messages", len(state.Messages))

	start := time.Now()
	delta, err := g.fns[id](ctx, state.Clone())
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.logger.Debug("Node Failed", "node_id", id, "err", err)
	} else {
		span.SetAttributes(attribute.Int("delta.messages", len(delta.Messages)))
		g.logger.Debug("Leave Node", "node_id", id, "delta", len(delta.Messages), "duration", elapsed)
	}

	g.emit(ctx, g.hooks.OnNodeLeave, &domain.NodeEvent{
		Type:     domain.EventNodeLeave,
		NodeID:   id,
		Messages: len(state.Messages),
		Duration: elapsed,
		Err:      err,
	})

	return delta, err
}

func (g *Graph) emit(ctx context.Context, hook func(context.Context, *domain.NodeEvent), e *domain.NodeEvent) {
	if hook == nil {
		return
	}
	e.Timestamp = time.Now()
	hook(ctx, e)
}
