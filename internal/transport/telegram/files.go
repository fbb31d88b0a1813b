package telegram

import (
	"io"
	"mime"
	"path/filepath"
	"strings"

	tele "gopkg.in/telebot.v3"
)

// maxDocumentSize mirrors Telegram's 20 MiB bot download limit; larger
// documents are rejected before any download attempt.
const maxDocumentSize = 20 * 1024 * 1024

// Telegram photos are re-encoded server-side, so the MIME type is always
// assumed to be JPEG.
const defaultPhotoMIME = "image/jpeg"

var supportedDocumentTypes = []string{
	"text/plain",
	"application/pdf",
	"application/json",
	"text/csv",
	"application/msword",
	"text/html",
}

// resolveMIME prefers the platform-provided type and falls back to a
// filename extension lookup. Returns "" when the type stays unknown.
func resolveMIME(metaMIME, fileName string) string {
	if metaMIME != "" {
		return metaMIME
	}

	guessed := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	// strip parameters like "; charset=utf-8"
	if i := strings.Index(guessed, ";"); i >= 0 {
		guessed = strings.TrimSpace(guessed[:i])
	}
	return guessed
}

// documentSupported reports whether a document type is in the allow-list
// or any text/* subtype.
func documentSupported(mimeType string) bool {
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	for _, t := range supportedDocumentTypes {
		if mimeType == t {
			return true
		}
	}
	return false
}

// download fetches the full file body from Telegram.
func (b *Bot) download(file *tele.File) ([]byte, error) {
	rc, err := b.bot.File(file)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
