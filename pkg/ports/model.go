package ports

import (
	"context"

	"github.com/aretw0/flash/pkg/domain"
)

// ChatModel is the external language-model contract.
// Invoke receives the ordered conversation and returns exactly one reply message.
// Implementations must not modify the slice they are given.
type ChatModel interface {
	Invoke(ctx context.Context, messages []domain.Message) (domain.Message, error)
}

// ChatModelFunc adapts a plain function to ChatModel.
type ChatModelFunc func(ctx context.Context, messages []domain.Message) (domain.Message, error)

// Invoke calls f.
func (f ChatModelFunc) Invoke(ctx context.Context, messages []domain.Message) (domain.Message, error) {
	return f(ctx, messages)
}
