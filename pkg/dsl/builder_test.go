package dsl

import (
	"context"
	"testing"

	"github.com/aretw0/flash/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(ctx context.Context, s domain.State) (domain.Delta, error) {
	last, _ := s.Last()
	return domain.Delta{Messages: []domain.Message{domain.AssistantMessage(last.Content)}}, nil
}

func TestBuilder_SimpleFlow(t *testing.T) {
	// 1. Build the graph using DSL
	b := New()
	b.Start().Go("chat_bot")
	b.Add("chat_bot").
		Do(echo).
		Go(End)

	// 2. Verify declared topology
	topo := b.Topology()
	require.Len(t, topo.Nodes, 1)
	assert.Equal(t, "chat_bot", topo.Nodes[0].ID)
	assert.Equal(t, []domain.Edge{
		{From: domain.Start, To: "chat_bot"},
		{From: "chat_bot", To: domain.End},
	}, topo.Edges)

	// 3. Compile and run
	g, err := b.Compile()
	require.NoError(t, err)

	final, err := g.Invoke(context.Background(), domain.NewState(domain.UserMessage("ping")))
	require.NoError(t, err)
	assert.Equal(t, []domain.Message{
		domain.UserMessage("ping"),
		domain.AssistantMessage("ping"),
	}, final.Messages)
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := New()
	first := b.Add("a")
	second := b.Add("a")

	assert.Same(t, first, second)
	assert.Equal(t, "a", second.ID())
	assert.Len(t, b.Topology().Nodes, 1)
	assert.Same(t, b.Start(), b.Start())
}

func TestBuilder_CompileErrors(t *testing.T) {
	t.Run("Missing entry", func(t *testing.T) {
		b := New()
		b.Add("a").Do(echo).Go(End)

		_, err := b.Compile()
		assert.ErrorIs(t, err, domain.ErrNoEntry)
	})

	t.Run("Missing function", func(t *testing.T) {
		b := New()
		b.Start().Go("a")
		b.Add("a").Go(End)

		_, err := b.Compile()
		assert.ErrorIs(t, err, domain.ErrInvalidGraph)
	})

	t.Run("Dangling edge", func(t *testing.T) {
		b := New()
		b.Start().Go("a")
		b.Add("a").Do(echo).Go("ghost")

		_, err := b.Compile()
		assert.ErrorIs(t, err, domain.ErrUnknownNode)
	})
}
