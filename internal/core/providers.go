package core

import "context"

// Completer issues one chat-completion request and returns the
// assistant's text. Errors carry the failure classification.
type Completer interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
