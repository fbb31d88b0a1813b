package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/flashbot/internal/config"
	"github.com/sandevgo/flashbot/internal/core"
)

func newTestProvider(baseURL string, timeout time.Duration) *OpenRouter {
	p := NewOpenRouter(&config.OpenRouterConfig{
		APIKey:      "test-key",
		Model:       "test/model",
		MaxTokens:   4096,
		Temperature: 0.7,
		Timeout:     timeout,
	})
	p.baseURL = baseURL
	return p
}

func TestChat_Success(t *testing.T) {
	var gotBody map[string]any
	var gotAuth, gotTitle, gotReferer string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTitle = r.Header.Get("X-Title")
		gotReferer = r.Header.Get("HTTP-Referer")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hi there"}}]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, 5*time.Second)

	reply, err := p.Chat(context.Background(), []core.Message{
		{Role: core.RoleUser, Content: core.TextContent("hi")},
	})
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, core.FlashName, gotTitle)
	assert.Equal(t, core.FlashRepositoryURL, gotReferer)

	assert.Equal(t, "test/model", gotBody["model"])
	assert.Equal(t, float64(4096), gotBody["max_tokens"])
	assert.Equal(t, 0.7, gotBody["temperature"])
	assert.Equal(t, false, gotBody["stream"])

	// single text part goes over the wire as a plain string
	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	first := msgs[0].(map[string]any)
	assert.Equal(t, "hi", first["content"])
}

func TestChat_MultimodalWireFormat(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, 5*time.Second)

	content := core.Content{
		{Type: core.PartText, Text: "what is this"},
		{Type: core.PartImage, ImageURL: &core.ImageURL{URL: "data:image/jpeg;base64,AAAA"}},
	}
	_, err := p.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: content}})
	require.NoError(t, err)

	msgs := gotBody["messages"].([]any)
	parts := msgs[0].(map[string]any)["content"].([]any)
	require.Len(t, parts, 2)
	assert.Equal(t, "text", parts[0].(map[string]any)["type"])
	img := parts[1].(map[string]any)
	assert.Equal(t, "image_url", img["type"])
	assert.Equal(t, "data:image/jpeg;base64,AAAA", img["image_url"].(map[string]any)["url"])
}

func TestChat_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, 5*time.Second)

	_, err := p.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: core.TextContent("hi")}})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Equal(t, `{"error":"rate limited"}`, apiErr.Body)
}

func TestChat_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, 50*time.Millisecond)

	_, err := p.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: core.TextContent("hi")}})
	assert.True(t, errors.Is(err, ErrTimeout), "expected ErrTimeout, got %v", err)
}

func TestChat_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens on the address anymore

	p := newTestProvider(srv.URL, 5*time.Second)

	_, err := p.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: core.TextContent("hi")}})
	assert.True(t, errors.Is(err, ErrConnection), "expected ErrConnection, got %v", err)
}

func TestChat_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, 5*time.Second)

	_, err := p.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: core.TextContent("hi")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty choices")
}
