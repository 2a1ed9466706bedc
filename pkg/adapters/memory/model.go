package memory

import (
	"context"
	"sync"

	"github.com/aretw0/flash/pkg/domain"
)

// Model implements ports.ChatModel in memory.
// It answers from a fixed script (the last reply repeats once the script runs out),
// or with a fixed error. Safe for concurrent use.
type Model struct {
	replies []string
	reply   func([]domain.Message) string
	err     error

	mu    sync.Mutex
	calls [][]domain.Message
}

// NewModel creates a scripted model.
func NewModel(replies ...string) *Model {
	return &Model{replies: replies}
}

// NewEcho creates a model that answers with the content of the last user message.
func NewEcho() *Model {
	return &Model{reply: func(messages []domain.Message) string {
		for i := len(messages) - 1; i >= 0; i-- {
			if messages[i].Role == domain.RoleUser {
				return messages[i].Content
			}
		}
		return ""
	}}
}

// NewFailing creates a model whose every call fails with err.
func NewFailing(err error) *Model {
	return &Model{err: err}
}

// Invoke records the call and returns the next scripted reply.
func (m *Model) Invoke(ctx context.Context, messages []domain.Message) (domain.Message, error) {
	// Copy on record so later caller mutations don't rewrite history
	seen := make([]domain.Message, len(messages))
	copy(seen, messages)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, seen)

	if err := ctx.Err(); err != nil {
		return domain.Message{}, err
	}
	if m.err != nil {
		return domain.Message{}, m.err
	}
	if m.reply != nil {
		return domain.AssistantMessage(m.reply(seen)), nil
	}
	if len(m.replies) == 0 {
		return domain.Message{}, domain.ErrEmptyResponse
	}

	idx := len(m.calls) - 1
	if idx >= len(m.replies) {
		idx = len(m.replies) - 1
	}
	return domain.AssistantMessage(m.replies[idx]), nil
}

// Calls returns a copy of the conversations the model has been invoked with.
func (m *Model) Calls() [][]domain.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][]domain.Message, len(m.calls))
	copy(out, m.calls)
	return out
}
