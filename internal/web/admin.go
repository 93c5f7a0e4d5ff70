package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/editor"
	"github.com/Zachkp/portfolio/internal/portfolio"
)

const (
	msgIncorrectPassword = "Incorrect password"
	msgSaveFailed        = "Save failed, please retry"
	msgSaved             = "Changes saved"
)

type flash struct {
	Kind string
	Text string
}

// editorView is what the section editor templates render.
type editorView struct {
	Section portfolio.Section
	Title   string
	Draft   any
	Editing int
	Flash   *flash
}

type passwordForm struct {
	Old string `form:"old_password" binding:"required"`
	New string `form:"new_password" binding:"required,max=128"`
}

func (h *Handler) registerAdminRoutes(r *gin.Engine) {
	r.GET("/admin", h.adminHome)
	r.POST("/admin/login", h.login)
	r.POST("/admin/logout", h.logout)

	admin := r.Group("/admin")
	admin.Use(h.requireAdmin(false))

	admin.GET("/sections/:section", h.openSection)
	admin.POST("/sections/:section/field", h.setField)
	admin.POST("/sections/:section/rows", h.addRow)
	admin.POST("/sections/:section/rows/:index/delete", h.deleteRow)
	admin.POST("/sections/:section/rows/:index/toggle", h.toggleRow)
	admin.POST("/sections/:section/save", h.saveSection)
	admin.POST("/password", h.changePassword)
	admin.POST("/reset", h.resetContent)
}

// adminHome shows the dashboard to logged-in sessions and the login form to
// everyone else.
func (h *Handler) adminHome(c *gin.Context) {
	if !h.Gate.IsAuthenticated(sessionID(c)) {
		h.renderLogin(c, http.StatusOK, "")
		return
	}
	h.renderDashboard(c, nil)
}

func (h *Handler) renderLogin(c *gin.Context, status int, errMsg string) {
	usingDefault, err := h.Gate.UsingDefaultPassword(c.Request.Context())
	if err != nil {
		h.Logger.Warn("checking admin password state failed", "error", err)
	}
	c.HTML(status, "admin-login.html", gin.H{
		"title":        "Admin Login",
		"error":        errMsg,
		"usingDefault": usingDefault,
		"defaultPass":  h.Gate.DefaultPassword(),
	})
}

func (h *Handler) renderDashboard(c *gin.Context, f *flash) {
	ctx := c.Request.Context()

	usingDefault, err := h.Gate.UsingDefaultPassword(ctx)
	if err != nil {
		h.Logger.Warn("checking admin password state failed", "error", err)
	}
	stats, err := h.Visits.Stats(ctx)
	if err != nil {
		h.Logger.Error("loading visitor stats failed", "error", err)
		stats = nil
	}

	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"title":        "Admin Dashboard",
		"sections":     portfolio.Sections(),
		"usingDefault": usingDefault,
		"stats":        stats,
		"flash":        f,
	})
}

func (h *Handler) login(c *gin.Context) {
	sid := sessionID(c)
	ok, err := h.Gate.Login(c.Request.Context(), sid, c.PostForm("password"))
	if err != nil {
		_ = c.Error(err)
		h.renderLogin(c, http.StatusInternalServerError, "Login is unavailable, please retry")
		return
	}
	if !ok {
		h.Logger.Warn("failed admin login", "client", h.Hasher.Hash(c.ClientIP()))
		h.renderLogin(c, http.StatusUnauthorized, msgIncorrectPassword)
		return
	}

	h.Logger.Info("admin login", "client", h.Hasher.Hash(c.ClientIP()))
	redirect(c, "/admin")
}

func (h *Handler) logout(c *gin.Context) {
	sid := sessionID(c)
	h.Gate.Logout(sid)
	h.Workspaces.Discard(sid)
	redirect(c, "/admin")
}

func (h *Handler) openSection(c *gin.Context) {
	section, ok := h.sectionParam(c)
	if !ok {
		return
	}
	var view editorView
	err := h.Workspaces.Open(sessionID(c), section, func(ed editor.Editor) error {
		view = newEditorView(ed, nil)
		return nil
	})
	if err != nil {
		h.editorError(c, err)
		return
	}
	c.HTML(http.StatusOK, "admin-editor.html", view)
}

func (h *Handler) setField(c *gin.Context) {
	f := editor.Field{
		Group: c.PostForm("group"),
		Index: formInt(c, "index"),
		Name:  c.PostForm("name"),
	}
	value := c.PostForm("value")

	h.withDraft(c, func(ed editor.Editor) (*flash, error) {
		return nil, ed.Set(f, value)
	})
}

func (h *Handler) addRow(c *gin.Context) {
	group := c.PostForm("group")
	h.withDraft(c, func(ed editor.Editor) (*flash, error) {
		_, err := ed.Add(group)
		return nil, err
	})
}

func (h *Handler) deleteRow(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.editorError(c, editor.ErrIndexOutOfRange)
		return
	}
	group := c.PostForm("group")
	h.withDraft(c, func(ed editor.Editor) (*flash, error) {
		return nil, ed.Delete(group, index)
	})
}

// toggleRow expands or collapses a project card.
func (h *Handler) toggleRow(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.editorError(c, editor.ErrIndexOutOfRange)
		return
	}
	h.withDraft(c, func(ed editor.Editor) (*flash, error) {
		pe, ok := ed.(*editor.ProjectsEditor)
		if !ok {
			return nil, editor.ErrNotSupported
		}
		return nil, pe.Toggle(index)
	})
}

// saveSection writes the draft through to the store. A storage failure is
// shown to the admin and the draft stays open so the save can be retried.
func (h *Handler) saveSection(c *gin.Context) {
	h.withDraft(c, func(ed editor.Editor) (*flash, error) {
		err := ed.Save(c.Request.Context())
		if errors.Is(err, content.ErrPersist) {
			h.Logger.Error("saving section failed", "section", ed.Section(), "error", err)
			return &flash{Kind: "error", Text: msgSaveFailed}, nil
		}
		if err != nil {
			return nil, err
		}
		h.Logger.Info("section saved", "section", ed.Section())
		return &flash{Kind: "success", Text: msgSaved}, nil
	})
}

// withDraft runs fn on the session's draft of the :section parameter and
// re-renders the editor fragment.
func (h *Handler) withDraft(c *gin.Context, fn func(editor.Editor) (*flash, error)) {
	section, ok := h.sectionParam(c)
	if !ok {
		return
	}
	var view editorView
	err := h.Workspaces.Do(sessionID(c), section, func(ed editor.Editor) error {
		f, err := fn(ed)
		if err != nil {
			return err
		}
		view = newEditorView(ed, f)
		return nil
	})
	if err != nil {
		h.editorError(c, err)
		return
	}
	c.HTML(http.StatusOK, "editor-body", view)
}

func (h *Handler) changePassword(c *gin.Context) {
	var form passwordForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderDashboard(c, &flash{Kind: "error", Text: "Enter the current password and a new password"})
		return
	}

	ok, err := h.Gate.ChangePassword(c.Request.Context(), form.Old, form.New)
	switch {
	case err != nil:
		_ = c.Error(err)
		h.renderDashboard(c, &flash{Kind: "error", Text: "Password change failed, please retry"})
	case !ok:
		h.renderDashboard(c, &flash{Kind: "error", Text: "Current password is incorrect"})
	default:
		h.renderDashboard(c, &flash{Kind: "success", Text: "Password changed"})
	}
}

func (h *Handler) resetContent(c *gin.Context) {
	sid := sessionID(c)
	if err := h.Store.ResetToDefault(c.Request.Context()); err != nil {
		_ = c.Error(err)
		h.renderDashboard(c, &flash{Kind: "error", Text: "Reset failed, please retry"})
		return
	}
	h.Workspaces.Discard(sid)
	h.Logger.Info("content reset to default")
	h.renderDashboard(c, &flash{Kind: "success", Text: "Content reset to default"})
}

func (h *Handler) sectionParam(c *gin.Context) (portfolio.Section, bool) {
	section, err := portfolio.ParseSection(c.Param("section"))
	if err != nil {
		c.HTML(http.StatusNotFound, "admin-error.html", gin.H{"error": "Unknown section"})
		return "", false
	}
	return section, true
}

func (h *Handler) editorError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, editor.ErrUnknownGroup),
		errors.Is(err, editor.ErrIndexOutOfRange),
		errors.Is(err, editor.ErrNotSupported):
		status = http.StatusBadRequest
	case errors.Is(err, portfolio.ErrUnknownSection):
		status = http.StatusNotFound
	}
	_ = c.Error(err)
	c.HTML(status, "admin-error.html", gin.H{"error": err.Error()})
}

func newEditorView(ed editor.Editor, f *flash) editorView {
	view := editorView{
		Section: ed.Section(),
		Title:   sectionTitle(ed.Section()),
		Draft:   ed.Draft(),
		Editing: -1,
		Flash:   f,
	}
	if pe, ok := ed.(*editor.ProjectsEditor); ok {
		view.Editing = pe.Editing()
	}
	return view
}

func formInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.PostForm(key))
	if err != nil {
		return 0
	}
	return n
}

// redirect sends htmx requests an HX-Redirect and everything else a 303.
func redirect(c *gin.Context, location string) {
	if isHTMX(c) {
		c.Header("HX-Redirect", location)
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}
