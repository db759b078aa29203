package markup

import (
	"bytes"
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown renders page content in-process with goldmark and sanitizes the
// result, for deployments without an external engine.
type Markdown struct {
	engine    goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewMarkdown returns a Markdown renderer with GFM tables and autolinking.
func NewMarkdown() *Markdown {
	return &Markdown{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
			goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
		),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (m *Markdown) Render(_ context.Context, raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := m.engine.Convert([]byte(raw), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return string(m.sanitizer.SanitizeBytes(buf.Bytes())), nil
}
