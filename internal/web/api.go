package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/portfolio"
)

const maxBodyBytes = 1 << 20

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/admin/api")
	api.Use(h.requireAdmin(true))

	api.GET("/data", h.apiData)
	api.PUT("/sections/:section", h.apiPutSection)
	api.PATCH("/data", h.apiPatchData)
	api.POST("/reset", h.apiReset)
	api.GET("/stats", h.apiStats)
}

func (h *Handler) apiData(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Data())
}

// apiPutSection replaces one section with the JSON body.
func (h *Handler) apiPutSection(c *gin.Context) {
	section, err := portfolio.ParseSection(c.Param("section"))
	if err != nil {
		apiError(c, err)
		return
	}
	raw, err := readBody(c)
	if err != nil {
		apiError(c, err)
		return
	}

	var patch portfolio.Patch
	if err := patch.Decode(section, raw); err != nil {
		apiError(c, err)
		return
	}
	if err := h.Store.UpdateData(c.Request.Context(), patch); err != nil {
		apiError(c, err)
		return
	}
	value, _ := h.Store.Section(section)
	c.JSON(http.StatusOK, value)
}

// apiPatchData replaces every section named in the JSON object body. Unknown
// keys are rejected rather than ignored.
func (h *Handler) apiPatchData(c *gin.Context) {
	raw, err := readBody(c)
	if err != nil {
		apiError(c, err)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be a JSON object"})
		return
	}

	var patch portfolio.Patch
	for name, value := range fields {
		section, err := portfolio.ParseSection(name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := patch.Decode(section, value); err != nil {
			apiError(c, err)
			return
		}
	}
	if patch.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no sections to update"})
		return
	}

	if err := h.Store.UpdateData(c.Request.Context(), patch); err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Store.Data())
}

func (h *Handler) apiReset(c *gin.Context) {
	if err := h.Store.ResetToDefault(c.Request.Context()); err != nil {
		apiError(c, err)
		return
	}
	h.Workspaces.Discard(sessionID(c))
	c.JSON(http.StatusOK, h.Store.Data())
}

func (h *Handler) apiStats(c *gin.Context) {
	stats, err := h.Visits.Stats(c.Request.Context())
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func readBody(c *gin.Context) ([]byte, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, errBadBody
	}
	return raw, nil
}

var errBadBody = errors.New("request body unreadable or too large")

func apiError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, portfolio.ErrUnknownSection):
		status = http.StatusNotFound
	case errors.Is(err, portfolio.ErrSectionType), errors.Is(err, errBadBody):
		status = http.StatusBadRequest
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}
