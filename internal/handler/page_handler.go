package handler

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmewiki/internal/markup"
	"github.com/nmewiki/internal/view"
)

// reservedPages are shadowed by fixed routes and can never be viewed.
var reservedPages = map[string]struct{}{
	"healthz": {},
	"static":  {},
}

func isReserved(name string) bool {
	_, ok := reservedPages[name]
	return ok
}

// RedirectHome 将站点根路径重定向到首页
func (a *API) RedirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, view.PageURL(a.homePage))
}

// ShowPage renders a page through the markup engine, or offers the create
// form when the page has no content yet.
func (a *API) ShowPage(c *gin.Context) {
	name := c.Param("page")

	content, err := a.pages.Content(c.Request.Context(), name)
	if err != nil {
		a.renderError(c, http.StatusInternalServerError, "The page could not be loaded.", err)
		return
	}

	if content == "" {
		// a pending flash belongs to this request even when there is nothing to show
		a.popFlash(c)
		c.HTML(http.StatusOK, view.Create, gin.H{
			"page":    name,
			"pageURL": view.PageURL(name),
			"content": "",
		})
		return
	}

	html, err := a.renderer.Render(c.Request.Context(), content)
	if err != nil {
		message := "The markup engine could not render this page."
		if errors.Is(err, markup.ErrRenderUnavailable) {
			message = "The markup engine is not available."
		}
		a.renderError(c, http.StatusBadGateway, message, err)
		return
	}

	c.HTML(http.StatusOK, view.Page, gin.H{
		"page":    name,
		"pageURL": view.PageURL(name),
		"content": template.HTML(html),
		"flash":   a.popFlash(c),
	})
}

// SavePage 根据提交的表单创建或覆盖页面内容
func (a *API) SavePage(c *gin.Context) {
	name := c.Param("page")
	if isReserved(name) {
		a.renderError(c, http.StatusForbidden, "This page name is reserved.", nil)
		return
	}
	content := c.PostForm("content")

	if _, err := a.pages.Upsert(c.Request.Context(), name, content); err != nil {
		a.renderError(c, http.StatusInternalServerError, "The page could not be saved.", err)
		return
	}

	a.entry(c).WithField("page", name).WithField("bytes", len(content)).Info("page saved")
	if content != "" {
		a.addFlash(c, savedFlash)
	}
	c.Redirect(http.StatusFound, view.PageURL(name))
}

// EditPage 渲染带原始内容的编辑表单
func (a *API) EditPage(c *gin.Context) {
	name := c.Param("page")
	if isReserved(name) {
		a.renderError(c, http.StatusForbidden, "This page name is reserved.", nil)
		return
	}

	content, err := a.pages.Content(c.Request.Context(), name)
	if err != nil {
		a.renderError(c, http.StatusInternalServerError, "The page could not be loaded.", err)
		return
	}

	c.HTML(http.StatusOK, view.Edit, gin.H{
		"page":    name,
		"pageURL": view.PageURL(name),
		"content": content,
	})
}

// NotFound answers every unmatched route.
func (a *API) NotFound(c *gin.Context) {
	a.renderError(c, http.StatusNotFound, "No such page or action.", nil)
}

// HealthCheck 提供检查页面存储是否可用的健康检查端点。
func (a *API) HealthCheck(c *gin.Context) {
	if err := a.pages.Ping(c.Request.Context()); err != nil {
		a.entry(c).WithError(err).Warn("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
	})
}
