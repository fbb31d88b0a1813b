package chat

import (
	"context"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encOnce sync.Once
	enc     *tiktoken.Tiktoken
)

// HistoryStats reports the number of stored messages and an approximate
// token count for the user's context. The token count uses cl100k_base
// as a rough proxy; a failed encoder load reports -1 tokens.
func (s *Service) HistoryStats(ctx context.Context, userID int64) (int, int) {
	history, err := s.store.Get(ctx, userID)
	if err != nil {
		return 0, -1
	}

	encOnce.Do(func() {
		enc, _ = tiktoken.GetEncoding("cl100k_base")
	})
	if enc == nil {
		return len(history), -1
	}

	tokens := 0
	for _, msg := range history {
		tokens += len(enc.Encode(msg.Content.PlainText(), nil, nil))
	}
	return len(history), tokens
}
