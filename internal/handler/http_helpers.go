package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/nmewiki/internal/view"
	"github.com/sirupsen/logrus"
)

const savedFlash = "Page saved."

func (a *API) renderError(c *gin.Context, status int, message string, err error) {
	entry := a.entry(c).WithField("status", status)
	if err != nil {
		entry = entry.WithError(err)
		c.Error(err)
	}
	if status >= http.StatusInternalServerError {
		entry.Error(message)
	} else {
		entry.Debug(message)
	}

	c.HTML(status, view.Error, gin.H{
		"page":    http.StatusText(status),
		"status":  status,
		"message": message,
	})
}

func (a *API) entry(c *gin.Context) *logrus.Entry {
	fields := logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}
	if id := c.GetString(RequestIDKey); id != "" {
		fields["request_id"] = id
	}
	return a.log.WithFields(fields)
}

// session returns nil when no session middleware is installed.
func session(c *gin.Context) sessions.Session {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return nil
	}
	return sessions.Default(c)
}

func (a *API) addFlash(c *gin.Context, message string) {
	s := session(c)
	if s == nil {
		return
	}
	s.AddFlash(message)
	if err := s.Save(); err != nil {
		a.entry(c).WithError(err).Warn("failed to save flash message")
	}
}

func (a *API) popFlash(c *gin.Context) string {
	s := session(c)
	if s == nil {
		return ""
	}
	flashes := s.Flashes()
	if len(flashes) == 0 {
		return ""
	}
	if err := s.Save(); err != nil {
		a.entry(c).WithError(err).Warn("failed to clear flash message")
	}
	message, _ := flashes[len(flashes)-1].(string)
	return message
}
