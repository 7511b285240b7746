package api

import (
	"log"
	"net/http"

	"launchpage_studio/internal/ai"
	"launchpage_studio/internal/types"

	"github.com/gin-gonic/gin"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	aiGenerator *ai.Generator
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(aiGen *ai.Generator) *APIHandler {
	return &APIHandler{aiGenerator: aiGen}
}

// --- API Handlers ---

// POST /api/generate
func (h *APIHandler) GenerateLandingPage(c *gin.Context) {
	// A missing key is reported even when the body is also bad.
	if err := h.aiGenerator.RequireCopyCredential(); err != nil {
		log.Printf("ERROR: Copy generation is not configured: %v", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	var req types.ProductBrief
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Rejected /api/generate body: %v", err)
		c.String(http.StatusBadRequest, ai.MsgInvalidBody)
		return
	}

	log.Printf("Received landing page request for %q", req.ProductName)

	out, err := h.aiGenerator.GenerateLandingCopy(c.Request.Context(), req)
	if err != nil {
		status := ai.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Printf("Error generating landing page for %q: %v", req.ProductName, err)
		}
		c.String(status, ai.PublicMessage(err, ai.MsgCopyFailed))
		return
	}

	// The model's document is forwarded byte for byte.
	c.Data(http.StatusOK, "application/json; charset=utf-8", out.Raw)
}

// POST /api/hero-image
func (h *APIHandler) GenerateHeroImage(c *gin.Context) {
	if err := h.aiGenerator.RequireImageCredential(); err != nil {
		log.Printf("ERROR: Hero image generation is not configured: %v", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	var req types.HeroImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Rejected /api/hero-image body: %v", err)
		c.String(http.StatusBadRequest, ai.MsgInvalidBody)
		return
	}

	image, err := h.aiGenerator.GenerateHeroImage(c.Request.Context(), req)
	if err != nil {
		status := ai.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Printf("Error generating hero image for %q: %v", req.ProductName, err)
		}
		c.String(status, ai.PublicMessage(err, ai.MsgImageFailed))
		return
	}

	c.JSON(http.StatusOK, image)
}
