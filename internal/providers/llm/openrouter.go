package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sandevgo/flashbot/internal/config"
	"github.com/sandevgo/flashbot/internal/core"
)

type OpenRouter struct {
	baseProvider
	maxTokens   int
	temperature float64
}

func NewOpenRouter(cfg *config.OpenRouterConfig) *OpenRouter {
	return &OpenRouter{
		baseProvider: newBaseProvider("https://openrouter.ai/api", cfg.APIKey, cfg.Model, cfg.Timeout),
		maxTokens:    cfg.MaxTokens,
		temperature:  cfg.Temperature,
	}
}

// Chat posts history plus the new turn and returns the assistant's text.
// Streaming stays disabled; the whole reply arrives in one response.
func (o *OpenRouter) Chat(ctx context.Context, messages []core.Message) (string, error) {
	payload := map[string]any{
		"model":       o.model,
		"messages":    messages,
		"max_tokens":  o.maxTokens,
		"temperature": o.temperature,
		"stream":      false,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + o.apiKey,
		"HTTP-Referer":  core.FlashRepositoryURL,
		"X-Title":       core.FlashName,
	}

	resp, err := o.doRequest(ctx, http.MethodPost, "/v1/chat/completions", payload, headers)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	return parseResponse(resp)
}

func parseResponse(resp *http.Response) (string, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Status: resp.StatusCode, Body: string(data)}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("empty choices: %s", string(data))
	}
	return result.Choices[0].Message.Content, nil
}
