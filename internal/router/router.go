package router

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/nmewiki/internal/handler"
	"github.com/nmewiki/internal/view"
	"github.com/sirupsen/logrus"
)

const sessionName = "nmewiki_session"

// Options 汇总路由注入到 handler 的依赖。
type Options struct {
	API           *handler.API
	Logger        *logrus.Logger
	SessionSecret string
}

// SetupRouter 配置 Gin 引擎并注册 wiki 路由。
func SetupRouter(opts Options) (*gin.Engine, error) {
	tmpl, err := view.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	r := gin.New()
	r.Use(handler.RequestID(), handler.RequestLogger(log), gin.Recovery())

	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 3600})
	r.Use(sessions.Sessions(sessionName, store))

	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", view.Static())

	api := opts.API
	r.GET("/healthz", api.HealthCheck)

	r.GET("/", api.RedirectHome)
	r.GET("/:page", api.ShowPage)
	r.POST("/:page", api.SavePage)
	r.GET("/:page/edit", api.EditPage)

	r.NoRoute(api.NotFound)

	return r, nil
}
