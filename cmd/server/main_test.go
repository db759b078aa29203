package main

import (
	"testing"
	"time"

	"github.com/nmewiki/internal/config"
	"github.com/nmewiki/internal/markup"
)

func TestNewRendererSelectsEngine(t *testing.T) {
	cfg := config.AppConfig{
		MarkupRenderer: config.RendererNME,
		NMEPath:        "/usr/local/bin/nme",
		NMEFlags:       []string{"--body"},
		NMEErrorLog:    "/tmp/error-output.txt",
		RenderTimeout:  time.Second,
	}

	p, ok := newRenderer(cfg, nil).(*markup.Process)
	if !ok {
		t.Fatalf("expected *markup.Process for nme renderer")
	}
	if p.Path != cfg.NMEPath || p.Timeout != time.Second || p.ErrorLog != cfg.NMEErrorLog {
		t.Fatalf("unexpected process renderer %+v", p)
	}

	cfg.MarkupRenderer = config.RendererMarkdown
	if _, ok := newRenderer(cfg, nil).(*markup.Markdown); !ok {
		t.Fatalf("expected *markup.Markdown for markdown renderer")
	}
}
