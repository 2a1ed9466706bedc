package tests

import (
	"context"
	"testing"

	"github.com/aretw0/flash/pkg/domain"
	"github.com/aretw0/flash/pkg/ports"
)

// ChatModelContractTest is a reusable test suite that verifies if an adapter complies with ports.ChatModel.
// The model under test must answer successfully for a plain user message.
func ChatModelContractTest(t *testing.T, model ports.ChatModel) {
	t.Helper()

	// 1. Reply is a single assistant message
	t.Run("Invoke_ReturnsAssistant", func(t *testing.T) {
		reply, err := model.Invoke(context.Background(), []domain.Message{domain.UserMessage("hello")})
		if err != nil {
			t.Fatalf("unexpected error invoking model: %v", err)
		}
		if reply.Role != domain.RoleAssistant {
			t.Errorf("expected role %q, got %q", domain.RoleAssistant, reply.Role)
		}
	})

	// 2. Input is left untouched
	t.Run("Invoke_DoesNotMutateInput", func(t *testing.T) {
		input := []domain.Message{
			domain.UserMessage("first"),
			domain.AssistantMessage("second"),
			domain.UserMessage("third"),
		}
		snapshot := make([]domain.Message, len(input))
		copy(snapshot, input)

		if _, err := model.Invoke(context.Background(), input); err != nil {
			t.Fatalf("unexpected error invoking model: %v", err)
		}
		if len(input) != len(snapshot) {
			t.Fatalf("input length changed: got %d, want %d", len(input), len(snapshot))
		}
		for i := range snapshot {
			if input[i] != snapshot[i] {
				t.Errorf("message %d mutated: got %+v, want %+v", i, input[i], snapshot[i])
			}
		}
	})
}
