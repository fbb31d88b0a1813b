package chat

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sandevgo/flashbot/internal/core"
)

const (
	// maxFileChars caps how much of a text file is forwarded to the model.
	maxFileChars = 4000

	defaultGreeting = "Hello!"

	mimePDF = "application/pdf"
)

// Encode converts free text plus an optional file payload into the
// structured content the completions API expects. It never fails: broken
// payloads degrade to a descriptive text part.
func Encode(ctx context.Context, text string, data []byte, mimeType string) core.Content {
	var parts core.Content

	if text != "" {
		parts = append(parts, core.ContentPart{Type: core.PartText, Text: text})
	}

	if len(data) > 0 && mimeType != "" {
		if strings.HasPrefix(mimeType, "image/") {
			uri := encodeDataURI(data, mimeType)
			parts = append(parts, core.ContentPart{Type: core.PartImage, ImageURL: &core.ImageURL{URL: uri}})
		} else {
			parts = append(parts, filePart(data, mimeType))
		}
	}

	if len(parts) == 0 {
		fallback := text
		if fallback == "" {
			fallback = defaultGreeting
		}
		parts = core.TextContent(fallback)
	}

	return parts
}

func encodeDataURI(data []byte, mimeType string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

func filePart(data []byte, mimeType string) core.ContentPart {
	if mimeType == mimePDF {
		// No PDF text extraction; the model only learns the size.
		text := fmt.Sprintf("[PDF file received, text was not extracted automatically. Size: %d bytes]", len(data))
		return core.ContentPart{Type: core.PartText, Text: text}
	}

	decoded := strings.ToValidUTF8(string(data), "�")
	if runes := []rune(decoded); len(runes) > maxFileChars {
		decoded = string(runes[:maxFileChars])
	}

	return core.ContentPart{
		Type: core.PartText,
		Text: fmt.Sprintf("File content (%s):\n\n%s", mimeType, decoded),
	}
}
