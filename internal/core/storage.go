package core

import "context"

// ContextStore keeps per-user conversation history, bounded to
// 2*MaxContextLength messages. Oldest messages are evicted first.
// Implementations must be safe for concurrent use across users.
type ContextStore interface {
	// Get returns the user's history in chronological order. Unknown
	// users get an empty history, never an error.
	Get(ctx context.Context, userID int64) ([]Message, error)

	// Append pushes one message and trims the oldest messages while the
	// history exceeds its bound.
	Append(ctx context.Context, userID int64, msg Message) error

	// Clear resets the user's history to empty.
	Clear(ctx context.Context, userID int64) error

	// Len reports the current number of stored messages for the user.
	Len(ctx context.Context, userID int64) (int, error)
}
