package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"
)

func (b *Bot) handleStart(c tele.Context) error {
	return b.sendMarkdown(c, welcomeText, b.menu)
}

func (b *Bot) handleClear(c tele.Context) error {
	ctx := b.baseCtx(c)
	if err := b.chat.Clear(ctx, c.Sender().ID); err != nil {
		return err
	}
	return c.Send(msgCleared)
}

func (b *Bot) handleHelp(c tele.Context) error {
	return b.sendMarkdown(c, helpText)
}

func (b *Bot) handleStatus(c tele.Context) error {
	ctx := b.baseCtx(c)
	userID := c.Sender().ID
	_ = c.Notify(tele.Typing)

	probe := b.chat.Complete(ctx, userID, statusProbeText, nil, "")
	msgs, tokens := b.chat.HistoryStats(ctx, userID)

	tokenInfo := "n/a"
	if tokens >= 0 {
		tokenInfo = strconv.Itoa(tokens)
	}

	status := fmt.Sprintf(`📊 **Bot status**

✅ Telegram: up
✅ Completion API: %s

🕐 Server time: %s
🔄 Context: %d messages (~%s tokens)

**API probe:** %s`,
		b.model,
		time.Now().Format(time.DateTime),
		msgs, tokenInfo,
		firstRunes(probe, 100))

	return b.sendMarkdown(c, status)
}

// Callback buttons replay the matching command actions.

func (b *Bot) handleHelpCallback(c tele.Context) error {
	_ = c.Respond(&tele.CallbackResponse{})
	return b.sendMarkdown(c, helpText)
}

func (b *Bot) handleClearCallback(c tele.Context) error {
	ctx := b.baseCtx(c)
	if err := b.chat.Clear(ctx, c.Sender().ID); err != nil {
		return err
	}
	_ = c.Respond(&tele.CallbackResponse{Text: msgClearedCallback})
	return c.Edit(msgClearedEdit)
}

func (b *Bot) handleText(c tele.Context) error {
	ctx := b.baseCtx(c)
	_ = c.Notify(tele.Typing)

	response := b.chat.Complete(ctx, c.Sender().ID, c.Text(), nil, "")
	return b.relay(c, response)
}

func (b *Bot) handlePhoto(c tele.Context) error {
	ctx := b.baseCtx(c)
	_ = c.Notify(tele.Typing)

	// telebot already resolves the largest photo variant
	photo := c.Message().Photo
	data, err := b.download(&photo.File)
	if err != nil {
		return c.Send(fmt.Sprintf(msgDownloadFailed, err))
	}

	prompt := c.Message().Caption
	if prompt == "" {
		prompt = defaultPhotoPrompt
	}

	response := b.chat.Complete(ctx, c.Sender().ID, prompt, data, defaultPhotoMIME)
	return b.relay(c, response)
}

func (b *Bot) handleDocument(c tele.Context) error {
	ctx := b.baseCtx(c)
	_ = c.Notify(tele.Typing)

	doc := c.Message().Document
	if doc.FileSize > maxDocumentSize {
		return c.Send(msgFileTooBig)
	}

	mimeType := resolveMIME(doc.MIME, doc.FileName)
	if mimeType == "" {
		return c.Send(msgUnknownFileType)
	}
	if !documentSupported(mimeType) {
		return b.sendMarkdown(c, fmt.Sprintf(msgUnsupportedType, strings.Join(supportedDocumentTypes, ", ")))
	}

	data, err := b.download(&doc.File)
	if err != nil {
		return c.Send(fmt.Sprintf(msgDownloadFailed, err))
	}

	prompt := c.Message().Caption
	if prompt == "" {
		prompt = fmt.Sprintf(defaultFilePromptFn, doc.FileName)
	}

	response := b.chat.Complete(ctx, c.Sender().ID, prompt, data, mimeType)
	return b.relay(c, response)
}

func (b *Bot) handleVoice(c tele.Context) error {
	return c.Send(msgVoiceUnsupported)
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
