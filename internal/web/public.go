package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
)

func (h *Handler) registerPublicRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.GET("/privacy", h.privacy)
	r.POST("/contact", h.submitContact)
	r.GET("/healthz", h.healthz)
}

func (h *Handler) index(c *gin.Context) {
	data := h.Store.Data()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":    data.Hero.Name,
		"data":     data,
		"featured": data.FeaturedProjects(),
	})
}

func (h *Handler) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"title": "Privacy Policy",
	})
}

// submitContact answers with an HTML fragment for htmx to swap into the form.
func (h *Handler) submitContact(c *gin.Context) {
	var msg contact.Message
	if err := c.ShouldBind(&msg); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in every field.",
		})
		return
	}

	if err := h.Contact.Send(c.Request.Context(), msg); err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error":  "Please check the highlighted fields.",
				"fields": verr.Fields,
			})
			return
		}
		_ = c.Error(err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
