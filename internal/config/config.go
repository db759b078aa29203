package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// RendererNME 通过外部 NME 程序渲染页面内容。
	RendererNME = "nme"
	// RendererMarkdown renders page content in-process as Markdown.
	RendererMarkdown = "markdown"
)

// DefaultNMEFlags 启用严格 Creole、URL 自动链接、仅输出正文以及交叉引用。
const DefaultNMEFlags = "--strictcreole --autourllink --body --xref"

// AppConfig 汇总运行 wiki 服务所需的配置。
type AppConfig struct {
	ListenAddr     string
	Port           string
	DatabasePath   string
	GinMode        string
	SessionSecret  string
	HomePage       string
	MarkupRenderer string
	NMEPath        string
	NMEFlags       []string
	NMEErrorLog    string
	RenderTimeout  time.Duration
	LogLevel       string
	LogFormat      string
}

// Load 从环境变量读取应用配置，并为缺失项提供默认值。
func Load() (AppConfig, error) {
	port := env("PORT", "8080")

	timeout, err := time.ParseDuration(env("RENDER_TIMEOUT", "10s"))
	if err != nil {
		return AppConfig{}, fmt.Errorf("parse RENDER_TIMEOUT: %w", err)
	}

	cfg := AppConfig{
		ListenAddr:     env("LISTEN_ADDR", fmt.Sprintf(":%s", port)),
		Port:           port,
		DatabasePath:   env("DATABASE_PATH", "nmewiki.db"),
		GinMode:        env("GIN_MODE", "release"),
		SessionSecret:  env("SESSION_SECRET", "nmewiki-dev-secret"),
		HomePage:       env("HOME_PAGE", "home"),
		MarkupRenderer: strings.ToLower(env("MARKUP_RENDERER", RendererNME)),
		NMEPath:        env("NME_PATH", "nme"),
		NMEFlags:       strings.Fields(env("NME_FLAGS", DefaultNMEFlags)),
		NMEErrorLog:    env("NME_ERROR_LOG", "/tmp/error-output.txt"),
		RenderTimeout:  timeout,
		LogLevel:       strings.ToLower(env("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(env("LOG_FORMAT", "text")),
	}

	return cfg, nil
}

// Validate 检查会导致服务无法启动的配置项。
func (c AppConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ListenAddr, validation.Required),
		validation.Field(&c.DatabasePath, validation.Required),
		validation.Field(&c.SessionSecret, validation.Required),
		validation.Field(&c.HomePage, validation.Required, validation.By(noSlash)),
		validation.Field(&c.GinMode, validation.In("debug", "release", "test")),
		validation.Field(&c.MarkupRenderer, validation.Required, validation.In(RendererNME, RendererMarkdown)),
		validation.Field(&c.NMEPath, validation.When(c.MarkupRenderer == RendererNME, validation.Required)),
		validation.Field(&c.RenderTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
	)
}

func noSlash(value any) error {
	s, _ := value.(string)
	if strings.Contains(s, "/") {
		return validation.NewError("validation_no_slash", "must be a single path segment")
	}
	return nil
}

func env(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
