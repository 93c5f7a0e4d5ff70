// Package web is the HTTP surface: the public page, the contact form, the
// admin editor and its JSON API.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/editor"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/visits"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Deps are the services the handlers use.
type Deps struct {
	Store      *content.Store
	Gate       *session.Gate
	Workspaces *editor.Workspaces
	Contact    *contact.Service
	Visits     visits.Recorder
	Hasher     *visits.Hasher
	Logger     *slog.Logger
	// CookieSecure marks the session cookie Secure; enable behind TLS.
	CookieSecure bool
}

func (d Deps) check() error {
	switch {
	case d.Store == nil:
		return errors.New("web: content store is required")
	case d.Gate == nil:
		return errors.New("web: session gate is required")
	case d.Contact == nil:
		return errors.New("web: contact service is required")
	case d.Hasher == nil:
		return errors.New("web: ip hasher is required")
	}
	return nil
}

// Handler holds the route handlers.
type Handler struct {
	Deps
}

// New builds the gin engine with every route registered.
func New(deps Deps) (*gin.Engine, error) {
	if err := deps.check(); err != nil {
		return nil, err
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Visits == nil {
		deps.Visits = visits.NopRecorder{}
	}
	if deps.Workspaces == nil {
		deps.Workspaces = editor.NewWorkspaces(deps.Store)
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	h := &Handler{Deps: deps}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(requestLogger(deps.Logger))
	r.Use(h.sessionCookie())
	r.Use(h.trackVisits())

	r.StaticFS("/static", http.FS(static))

	h.registerPublicRoutes(r)
	h.registerAdminRoutes(r)
	h.registerAPIRoutes(r)

	return r, nil
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
