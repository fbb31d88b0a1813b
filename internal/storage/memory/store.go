package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/sandevgo/flashbot/internal/core"
)

// Store keeps conversation context in a process-local map. State lives
// only for the process lifetime.
type Store struct {
	mu    sync.Mutex
	bound int
	users map[int64][]core.Message
}

func New(bound int) *Store {
	return &Store{
		bound: bound,
		users: make(map[int64][]core.Message),
	}
}

func (s *Store) Get(ctx context.Context, userID int64) ([]core.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.users[userID]
	if !ok {
		s.users[userID] = nil
	}
	// copy so callers never alias the stored slice
	return slices.Clone(history), nil
}

func (s *Store) Append(ctx context.Context, userID int64, msg core.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.users[userID], msg)
	for s.bound > 0 && len(history) > s.bound {
		history = history[1:]
	}
	s.users[userID] = history
	return nil
}

func (s *Store) Clear(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[userID] = nil
	return nil
}

func (s *Store) Len(ctx context.Context, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users[userID]), nil
}
