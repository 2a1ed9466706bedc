package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/flash/pkg/adapters/memory"
	"github.com/aretw0/flash/pkg/domain"
	contract "github.com/aretw0/flash/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Contract(t *testing.T) {
	contract.ChatModelContractTest(t, memory.NewModel("hi there"))
	contract.ChatModelContractTest(t, memory.NewEcho())
}

func TestModel_Script(t *testing.T) {
	m := memory.NewModel("one", "two")
	ctx := context.Background()
	input := []domain.Message{domain.UserMessage("hello")}

	for _, want := range []string{"one", "two", "two"} {
		reply, err := m.Invoke(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, domain.AssistantMessage(want), reply)
	}
	assert.Len(t, m.Calls(), 3)
	assert.Equal(t, input, m.Calls()[0])
}

func TestModel_Echo(t *testing.T) {
	reply, err := memory.NewEcho().Invoke(context.Background(), []domain.Message{
		domain.UserMessage("ping"),
		domain.AssistantMessage("ignored"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ping", reply.Content)
}

func TestModel_Errors(t *testing.T) {
	boom := errors.New("boom")

	_, err := memory.NewFailing(boom).Invoke(context.Background(), nil)
	assert.ErrorIs(t, err, boom)

	_, err = memory.NewModel().Invoke(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = memory.NewModel("x").Invoke(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
