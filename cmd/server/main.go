package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nmewiki/internal/config"
	"github.com/nmewiki/internal/db"
	"github.com/nmewiki/internal/handler"
	"github.com/nmewiki/internal/logging"
	"github.com/nmewiki/internal/markup"
	"github.com/nmewiki/internal/router"
	"github.com/nmewiki/internal/service"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.Setup(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to configure logging: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	gdb, err := db.Open(cfg.DatabasePath, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize database")
	}

	// 设置并运行 Gin 服务器
	api := handler.NewAPI(service.NewPageService(gdb), newRenderer(cfg, logger), logger, cfg.HomePage)
	r, err := router.SetupRouter(router.Options{
		API:           api,
		Logger:        logger,
		SessionSecret: cfg.SessionSecret,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to set up router")
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RenderTimeout + 30*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.WithFields(logrus.Fields{
			"addr":     cfg.ListenAddr,
			"renderer": cfg.MarkupRenderer,
			"database": cfg.DatabasePath,
		}).Info("wiki server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("failed to run server")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}
}

func newRenderer(cfg config.AppConfig, logger *logrus.Logger) markup.Renderer {
	if cfg.MarkupRenderer == config.RendererMarkdown {
		return markup.NewMarkdown()
	}
	return markup.NewProcess(cfg.NMEPath, cfg.NMEFlags, cfg.NMEErrorLog, cfg.RenderTimeout, logger)
}
