package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/flashbot/internal/core"
)

func newTestStore(t *testing.T, bound int) *Store {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewStore(db, bound)
}

func TestStore_GetUnknownUserReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 20)

	history, err := s.Get(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStore_AppendAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 20)

	require.NoError(t, s.Append(ctx, 1, core.Message{Role: core.RoleUser, Content: core.TextContent("hi")}))
	require.NoError(t, s.Append(ctx, 1, core.Message{Role: core.RoleAssistant, Content: core.TextContent("hello")}))

	history, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, core.RoleUser, history[0].Role)
	assert.Equal(t, "hi", history[0].Content.PlainText())
	assert.Equal(t, core.RoleAssistant, history[1].Role)
	assert.Equal(t, "hello", history[1].Content.PlainText())
}

func TestStore_MultimodalRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 20)

	content := core.Content{
		{Type: core.PartText, Text: "what is this"},
		{Type: core.PartImage, ImageURL: &core.ImageURL{URL: "data:image/jpeg;base64,AAAA"}},
	}
	require.NoError(t, s.Append(ctx, 1, core.Message{Role: core.RoleUser, Content: content}))

	history, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Len(t, history[0].Content, 2)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", history[0].Content[1].ImageURL.URL)
}

func TestStore_TrimsOldest(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 4)

	for i := 0; i < 10; i++ {
		msg := core.Message{Role: core.RoleUser, Content: core.TextContent(string(rune('a' + i)))}
		require.NoError(t, s.Append(ctx, 1, msg))
	}

	history, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "g", history[0].Content.PlainText())
	assert.Equal(t, "j", history[3].Content.PlainText())
}

func TestStore_ClearAndIsolation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 20)

	require.NoError(t, s.Append(ctx, 1, core.Message{Role: core.RoleUser, Content: core.TextContent("one")}))
	require.NoError(t, s.Append(ctx, 2, core.Message{Role: core.RoleUser, Content: core.TextContent("two")}))

	require.NoError(t, s.Clear(ctx, 1))

	one, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, one)

	n, err := s.Len(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
