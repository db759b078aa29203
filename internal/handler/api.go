package handler

import (
	"github.com/nmewiki/internal/markup"
	"github.com/nmewiki/internal/service"
	"github.com/sirupsen/logrus"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	pages    *service.PageService
	renderer markup.Renderer
	log      *logrus.Logger
	homePage string
}

// NewAPI constructs a handler set around the page store and markup renderer.
func NewAPI(pages *service.PageService, renderer markup.Renderer, log *logrus.Logger, homePage string) *API {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if homePage == "" {
		homePage = "home"
	}
	return &API{
		pages:    pages,
		renderer: renderer,
		log:      log,
		homePage: homePage,
	}
}
