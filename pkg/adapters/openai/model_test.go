package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/flash/pkg/domain"
	contract "github.com/aretw0/flash/pkg/ports/tests"
	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(goopenai.ChatCompletionResponse), args.Error(1)
}

func reply(content string) goopenai.ChatCompletionResponse {
	return goopenai.ChatCompletionResponse{
		Model: DefaultModel,
		Choices: []goopenai.ChatCompletionChoice{
			{Message: goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleAssistant, Content: content}},
		},
	}
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New(Config{})
	require.ErrorIs(t, err, domain.ErrMissingConfig)
	assert.Contains(t, err.Error(), "api_key")
	assert.Contains(t, err.Error(), "model")

	_, err = New(Config{APIKey: "sk-test"})
	require.ErrorIs(t, err, domain.ErrMissingConfig)
	assert.NotContains(t, err.Error(), "api_key")

	m, err := New(Config{APIKey: "sk-test", Model: DefaultModel, BaseURL: "http://localhost:8080/v1"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, m.model)
}

func TestModel_Invoke(t *testing.T) {
	client := &mockCompleter{}
	client.On("CreateChatCompletion", mock.Anything, goopenai.ChatCompletionRequest{
		Model: DefaultModel,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: "user", Content: "hello"},
		},
	}).Return(reply("hi there"), nil).Once()

	m := newModel(client, DefaultModel)
	got, err := m.Invoke(context.Background(), []domain.Message{domain.UserMessage("hello")})

	require.NoError(t, err)
	assert.Equal(t, domain.AssistantMessage("hi there"), got)
	client.AssertExpectations(t)
}

func TestModel_Contract(t *testing.T) {
	client := &mockCompleter{}
	client.On("CreateChatCompletion", mock.Anything, mock.Anything).Return(reply("ok"), nil)

	contract.ChatModelContractTest(t, newModel(client, DefaultModel))
}

func TestModel_Invoke_Errors(t *testing.T) {
	t.Run("Transport error is wrapped, not retried", func(t *testing.T) {
		cause := &goopenai.APIError{HTTPStatusCode: 401, Message: "invalid api key"}
		client := &mockCompleter{}
		client.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(goopenai.ChatCompletionResponse{}, cause).Once()

		_, err := newModel(client, DefaultModel).Invoke(context.Background(), []domain.Message{domain.UserMessage("hello")})

		var apiErr *goopenai.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.HTTPStatusCode)
		client.AssertNumberOfCalls(t, "CreateChatCompletion", 1)
	})

	t.Run("No choices", func(t *testing.T) {
		client := &mockCompleter{}
		client.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(goopenai.ChatCompletionResponse{}, nil)

		_, err := newModel(client, DefaultModel).Invoke(context.Background(), nil)
		assert.ErrorIs(t, err, domain.ErrEmptyResponse)
	})

	t.Run("Empty role defaults to assistant", func(t *testing.T) {
		client := &mockCompleter{}
		client.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(goopenai.ChatCompletionResponse{
				Choices: []goopenai.ChatCompletionChoice{{Message: goopenai.ChatCompletionMessage{Content: "x"}}},
			}, nil)

		got, err := newModel(client, DefaultModel).Invoke(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAssistant, got.Role)
	})

	t.Run("Plain errors keep their identity", func(t *testing.T) {
		cause := errors.New("connection refused")
		client := &mockCompleter{}
		client.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(goopenai.ChatCompletionResponse{}, cause)

		_, err := newModel(client, DefaultModel).Invoke(context.Background(), nil)
		assert.ErrorIs(t, err, cause)
	})
}
