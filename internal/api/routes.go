package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Generation ---
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/generate", h.GenerateLandingPage) // Landing page copy from a product brief
		apiGroup.POST("/hero-image", h.GenerateHeroImage) // One hero illustration URL
	}

	// --- Simple Health Check ---
	// Does not touch the AI provider.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

}
