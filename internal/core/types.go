package core

import (
	"bytes"
	"encoding/json"
)

const (
	FlashName          = "FlashBot"
	FlashUserAgent     = "FlashBot/0.1"
	FlashRepositoryURL = "https://github.com/sandevgo/flashbot"
	FlashVersion       = "0.1.0"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	PartText  = "text"
	PartImage = "image_url"
)

// Message is a single conversation turn as sent to the completions API.
type Message struct {
	Role    string  `json:"role"`
	Content Content `json:"content"`
}

// Content is an ordered list of content parts. On the wire it is either a
// plain string (single text part, which is what the API returns for
// assistant turns) or an array of parts (multimodal user turns).
type Content []ContentPart

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

// TextContent builds a single-part text content.
func TextContent(s string) Content {
	return Content{{Type: PartText, Text: s}}
}

// ImageContent builds a single-part image content from a data URI.
func ImageContent(url string) Content {
	return Content{{Type: PartImage, ImageURL: &ImageURL{URL: url}}}
}

// PlainText concatenates the text parts, ignoring images.
func (c Content) PlainText() string {
	var buf bytes.Buffer
	for _, p := range c {
		if p.Type == PartText {
			buf.WriteString(p.Text)
		}
	}
	return buf.String()
}

func (c Content) MarshalJSON() ([]byte, error) {
	if len(c) == 1 && c[0].Type == PartText {
		return json.Marshal(c[0].Text)
	}
	return json.Marshal([]ContentPart(c))
}

func (c *Content) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = TextContent(s)
		return nil
	}
	var parts []ContentPart
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	*c = parts
	return nil
}
