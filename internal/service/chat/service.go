package chat

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sandevgo/flashbot/internal/core"
	"github.com/sandevgo/flashbot/internal/providers/llm"
	"github.com/sandevgo/flashbot/pkg/log"
)

const (
	msgTimeout    = "⏰ Request timed out. Please try again."
	msgConnection = "🌐 Could not reach the completion API. Check your connection."
	msgAPIError   = "❌ API error: %d\n%s"
	msgGeneric    = "❌ Something went wrong: %v"
)

// Service runs the completion pipeline: encode the payload, merge it with
// the stored context, call the model, record the exchange. Every failure
// is converted to user-facing text; nothing escapes as an error.
type Service struct {
	store core.ContextStore
	llm   core.Completer
}

func NewService(store core.ContextStore, completer core.Completer) *Service {
	return &Service{
		store: store,
		llm:   completer,
	}
}

// Complete relays one user payload to the model and returns the reply or
// a failure message. History is only mutated after a successful call:
// the user turn first, then the assistant turn. Failed exchanges are
// never recorded, so a broken call cannot pollute the context.
func (s *Service) Complete(ctx context.Context, userID int64, text string, data []byte, mimeType string) string {
	logger := log.FromCtx(ctx)

	content := Encode(ctx, text, data, mimeType)

	history, err := s.store.Get(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("user", userID).Msg("failed to read context")
		return fmt.Sprintf(msgGeneric, err)
	}

	userMsg := core.Message{Role: core.RoleUser, Content: content}
	messages := append(slices.Clone(history), userMsg)

	logger.Info().Int64("user", userID).Int("history", len(history)).Msg("requesting completion")

	reply, err := s.llm.Chat(ctx, messages)
	if err != nil {
		return s.describeFailure(ctx, err)
	}

	if err := s.store.Append(ctx, userID, userMsg); err != nil {
		logger.Error().Err(err).Int64("user", userID).Msg("failed to record user turn")
	}
	assistantMsg := core.Message{Role: core.RoleAssistant, Content: core.TextContent(reply)}
	if err := s.store.Append(ctx, userID, assistantMsg); err != nil {
		logger.Error().Err(err).Int64("user", userID).Msg("failed to record assistant turn")
	}

	return reply
}

// Clear wipes the user's conversation context.
func (s *Service) Clear(ctx context.Context, userID int64) error {
	return s.store.Clear(ctx, userID)
}

func (s *Service) describeFailure(ctx context.Context, err error) string {
	logger := log.FromCtx(ctx)

	var apiErr *llm.APIError
	switch {
	case errors.As(err, &apiErr):
		logger.Error().Int("status", apiErr.Status).Msg("completion api error")
		return fmt.Sprintf(msgAPIError, apiErr.Status, apiErr.Body)
	case errors.Is(err, llm.ErrTimeout):
		return msgTimeout
	case errors.Is(err, llm.ErrConnection):
		return msgConnection
	default:
		logger.Error().Err(err).Msg("completion failed")
		return fmt.Sprintf(msgGeneric, err)
	}
}
