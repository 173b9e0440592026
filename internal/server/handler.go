package server

import (
	"net/http"
	"strconv"

	"github.com/Zachkp/portfolio/internal/apperr"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/locale"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/server/middleware"
	"github.com/Zachkp/portfolio/internal/textutil"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type handler struct {
	deps Deps
}

// requestedLocale returns the lang query parameter, or the locale negotiated
// from Accept-Language when it is absent. Unsupported values are passed
// through so composition rejects them.
func requestedLocale(c *gin.Context) string {
	if lang, ok := c.GetQuery("lang"); ok {
		return lang
	}
	return locale.Negotiate(c.GetHeader("Accept-Language")).String()
}

func (h *handler) compose(c *gin.Context, code string) (*profile.ComposedProfile, bool) {
	p, err := h.deps.Composer.Compose(code)
	if err != nil {
		label, result := code, "error"
		if apperr.IsKind(err, apperr.KindConfiguration) {
			label, result = "unsupported", "rejected"
		}
		h.deps.Metrics.Compositions.WithLabelValues(label, result).Inc()
		fail(c, err)
		return nil, false
	}
	h.deps.Metrics.Compositions.WithLabelValues(p.Locale.String(), "ok").Inc()
	return p, true
}

func (h *handler) getProfile(c *gin.Context) {
	p, ok := h.compose(c, requestedLocale(c))
	if !ok {
		return
	}
	success(c, p)
}

func (h *handler) getStats(c *gin.Context) {
	p, ok := h.compose(c, requestedLocale(c))
	if !ok {
		return
	}
	stats, err := h.deps.Stats.Compute(p)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, stats)
}

func (h *handler) getProjects(c *gin.Context) {
	featured := false
	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "featured must be true or false")
			return
		}
		featured = v
	}
	p, ok := h.compose(c, requestedLocale(c))
	if !ok {
		return
	}
	if featured {
		success(c, profile.FeaturedProjects(p))
		return
	}
	success(c, p.Projects)
}

func (h *handler) getCertificates(c *gin.Context) {
	p, ok := h.compose(c, requestedLocale(c))
	if !ok {
		return
	}
	success(c, profile.CertificatesNewestFirst(p))
}

func (h *handler) getExperience(c *gin.Context) {
	p, ok := h.compose(c, requestedLocale(c))
	if !ok {
		return
	}
	success(c, profile.Timeline(p, h.deps.Now()))
}

func (h *handler) getReferences(c *gin.Context) {
	p, ok := h.compose(c, requestedLocale(c))
	if !ok {
		return
	}
	success(c, profile.ReferenceCards(p))
}

// postContact validates and logs a contact message. It never delivers mail.
func (h *handler) postContact(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		h.deps.Metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"details": []apperr.FieldError{{Field: "body", Message: "Request body must be a JSON object"}},
		})
		return
	}

	err := h.deps.Contact.Submit(c.Request.Context(), sub, middleware.Visitor(c))
	switch {
	case err == nil:
		h.deps.Metrics.ContactSubmissions.WithLabelValues("accepted").Inc()
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully"})
	case apperr.IsKind(err, apperr.KindValidation):
		h.deps.Metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"details": apperr.FieldsOf(err),
		})
	default:
		h.deps.Metrics.ContactSubmissions.WithLabelValues("error").Inc()
		logger.GetGinLogger(c).Error("Error processing contact form", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}

// getCV describes the CV for lang. PDF rendering is not implemented; the
// response carries the profile fields a document would be built from.
func (h *handler) getCV(c *gin.Context) {
	lang := c.DefaultQuery("lang", locale.Default.String())
	if lang != locale.ES.String() && lang != locale.EN.String() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid language"})
		return
	}

	p, err := h.deps.Composer.Compose(lang)
	if err != nil {
		logger.GetGinLogger(c).Error("Error generating CV", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate CV"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "CV generation endpoint",
		"lang":     lang,
		"note":     "PDF rendering is not available; this endpoint returns the data a CV is built from.",
		"filename": textutil.Slugify(p.Name) + "-cv-" + lang + ".pdf",
		"profile": gin.H{
			"name":  p.Name,
			"title": p.Title,
			"email": p.Email,
		},
	})
}
