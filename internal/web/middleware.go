package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/visits"
)

const (
	sessionCookieName = "portfolio_session"
	sessionKey        = "session_id"
)

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request", attrs...)
		case status >= http.StatusBadRequest:
			logger.Warn("request", attrs...)
		default:
			logger.Debug("request", attrs...)
		}
	}
}

// sessionCookie makes sure every request carries a session id. The cookie has
// no Max-Age, so it lives as long as the browser session.
func (h *Handler) sessionCookie() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = session.NewSessionID()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookieName, id, 0, "/", "", h.CookieSecure, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// requireAdmin stops requests from sessions that have not logged in. Pages
// are sent back to the login form, API calls get a 401.
func (h *Handler) requireAdmin(api bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.Gate.IsAuthenticated(sessionID(c)) {
			c.Next()
			return
		}
		if api {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		if isHTMX(c) {
			c.Header("HX-Redirect", "/admin")
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin")
		c.Abort()
	}
}

const visitTimeout = 5 * time.Second

// trackVisits records public page views once the handler has run, skipping
// static assets, admin pages and clients that send DNT. Recording stays on the
// request so server shutdown waits for it before storage is closed.
func (h *Handler) trackVisits() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || !visits.Trackable(path, c.GetHeader("DNT")) {
			c.Next()
			return
		}

		c.Next()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), visitTimeout)
		defer cancel()
		if err := h.Visits.Record(ctx, c.ClientIP(), c.GetHeader("User-Agent"), path); err != nil {
			h.Logger.Warn("recording visit failed", "error", err)
		}
	}
}

func isHTMX(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader("HX-Request"), "true")
}
