package flash

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/flash/internal/runtime"
	"github.com/aretw0/flash/pkg/domain"
	"github.com/aretw0/flash/pkg/dsl"
	"github.com/aretw0/flash/pkg/ports"
	"go.opentelemetry.io/otel/trace"
)

// Version is the release of the module, reported by `flash version`.
const Version = "0.3.0"

// ChatNodeID is the identifier of the only processing node.
const ChatNodeID = "chat_bot"

// Graph is the compiled chat graph.
type Graph = runtime.Graph

// Option defines a functional option for configuring the chat graph.
type Option = runtime.Option

// WithLogger sets a custom structured logger for the graph.
func WithLogger(logger *slog.Logger) Option {
	return runtime.WithLogger(logger)
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return runtime.WithLifecycleHooks(hooks)
}

// WithTracer enables OpenTelemetry spans.
func WithTracer(tracer trace.Tracer) Option {
	return runtime.WithTracer(tracer)
}

// ChatNode returns the node function that forwards the whole conversation to model
// and contributes exactly one message, the reply.
func ChatNode(model ports.ChatModel) domain.NodeFunc {
	return func(ctx context.Context, state domain.State) (domain.Delta, error) {
		reply, err := model.Invoke(ctx, state.Messages)
		if err != nil {
			return domain.Delta{}, err
		}
		return domain.Delta{Messages: []domain.Message{reply}}, nil
	}
}

// NewChatGraph builds and compiles START -> chat_bot -> END around model.
func NewChatGraph(model ports.ChatModel, opts ...Option) (*Graph, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: chat model is nil", domain.ErrMissingConfig)
	}

	b := dsl.New()
	b.Start().Go(ChatNodeID)
	b.Add(ChatNodeID).
		Do(ChatNode(model)).
		Go(dsl.End)

	return b.Compile(opts...)
}

// Ask runs one invocation of g seeded with a single user message holding text.
// The text is passed through as-is, empty included.
func Ask(ctx context.Context, g *Graph, text string) (domain.State, error) {
	return g.Invoke(ctx, domain.NewState(domain.UserMessage(text)))
}
