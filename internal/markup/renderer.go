// Package markup turns stored wiki markup into HTML.
package markup

import (
	"context"
	"errors"
)

var (
	// ErrRenderUnavailable means the markup engine could not be started.
	ErrRenderUnavailable = errors.New("markup engine unavailable")
	// ErrRenderFailed means the markup engine ran but did not finish cleanly.
	ErrRenderFailed = errors.New("markup engine failed")
)

// Renderer converts raw page markup into an HTML fragment.
// Empty input renders to empty output.
type Renderer interface {
	Render(ctx context.Context, raw string) (string, error)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(ctx context.Context, raw string) (string, error)

// Render calls f.
func (f RendererFunc) Render(ctx context.Context, raw string) (string, error) {
	return f(ctx, raw)
}
