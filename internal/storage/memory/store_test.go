package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/flashbot/internal/core"
)

func userTurn(text string) core.Message {
	return core.Message{Role: core.RoleUser, Content: core.TextContent(text)}
}

func TestGet_UnknownUserReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	s := New(20)

	history, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, history)

	// the entry is retained after first access
	n, err := s.Len(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAppend_KeepsChronologicalOrder(t *testing.T) {
	ctx := context.Background()
	s := New(20)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Append(ctx, 1, userTurn(fmt.Sprintf("msg-%d", i))))
	}

	history, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 5)
	for i, msg := range history {
		assert.Equal(t, fmt.Sprintf("msg-%d", i), msg.Content.PlainText())
	}
}

func TestAppend_EvictsOldestOverBound(t *testing.T) {
	ctx := context.Background()
	s := New(4) // 2 exchange pairs

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Append(ctx, 1, userTurn(fmt.Sprintf("msg-%d", i))))

		n, err := s.Len(ctx, 1)
		require.NoError(t, err)
		assert.LessOrEqual(t, n, 4)
	}

	history, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "msg-6", history[0].Content.PlainText())
	assert.Equal(t, "msg-9", history[3].Content.PlainText())
}

func TestClear_ThenGetIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := New(20)

	require.NoError(t, s.Append(ctx, 1, userTurn("hello")))
	require.NoError(t, s.Clear(ctx, 1))

	history, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestUsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := New(20)

	require.NoError(t, s.Append(ctx, 1, userTurn("from one")))
	require.NoError(t, s.Append(ctx, 2, userTurn("from two")))
	require.NoError(t, s.Clear(ctx, 1))

	one, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, one)

	two, err := s.Get(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 1)
	assert.Equal(t, "from two", two[0].Content.PlainText())
}

func TestGet_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New(20)

	require.NoError(t, s.Append(ctx, 1, userTurn("original")))

	history, err := s.Get(ctx, 1)
	require.NoError(t, err)
	history[0] = userTurn("mutated")

	again, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Content.PlainText())
}

func TestConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	s := New(1000)

	var wg sync.WaitGroup
	for u := int64(1); u <= 4; u++ {
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(u int64, i int) {
				defer wg.Done()
				_ = s.Append(ctx, u, userTurn(fmt.Sprintf("u%d-%d", u, i)))
			}(u, i)
		}
	}
	wg.Wait()

	for u := int64(1); u <= 4; u++ {
		n, err := s.Len(ctx, u)
		require.NoError(t, err)
		assert.Equal(t, 50, n)
	}
}
