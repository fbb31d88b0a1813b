package telegram

import (
	"strings"

	"github.com/sandevgo/flashbot/pkg/conv"
	tele "gopkg.in/telebot.v3"
)

// maxMessageLen is Telegram's hard per-message limit.
const maxMessageLen = 4096

// relay sends a model response as plain text, split into consecutive
// fixed-size chunks when it exceeds the platform limit.
func (b *Bot) relay(c tele.Context, text string) error {
	for _, chunk := range splitMessage(text, maxMessageLen) {
		if err := c.Send(chunk); err != nil {
			return err
		}
	}
	return nil
}

// sendMarkdown renders a static markdown text to Telegram HTML.
func (b *Bot) sendMarkdown(c tele.Context, md string, opts ...interface{}) error {
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	opts = append(opts, tele.ModeHTML)
	return c.Send(html, opts...)
}

// splitMessage cuts text into consecutive maxLen-character chunks,
// preserving order. Counts runes, not bytes, so multibyte text is never
// split mid-character.
func splitMessage(text string, maxLen int) []string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for start := 0; start < len(runes); start += maxLen {
		end := start + maxLen
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
