// Package web serves the Form & Preview studio as server-rendered pages.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"launchpage_studio/internal/studio"
	"launchpage_studio/internal/types"
)

//go:embed templates/*.html static/*
var assets embed.FS

const sessionCookie = "launchpage_session"

// Handler serves the studio pages.
type Handler struct {
	store     *studio.Store
	generator studio.CopyGenerator
	cookieAge int // seconds
}

func NewHandler(store *studio.Store, generator studio.CopyGenerator, cookieAge int) *Handler {
	return &Handler{store: store, generator: generator, cookieAge: cookieAge}
}

// RegisterRoutes installs the studio templates, static assets and routes.
func RegisterRoutes(router *gin.Engine, h *Handler) error {
	tmpl, err := template.ParseFS(assets, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse studio templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(assets, "static")
	if err != nil {
		return fmt.Errorf("failed to open studio assets: %w", err)
	}
	router.StaticFS("/static", http.FS(static))

	router.GET("/", h.NewStudio)
	studioGroup := router.Group("/studio")
	{
		studioGroup.GET("", h.ShowStudio)
		studioGroup.POST("/generate", h.Generate)
		studioGroup.POST("/reset", h.Reset)
		studioGroup.POST("/mode", h.SetMode)
	}
	return nil
}

// GET / always starts a fresh session.
func (h *Handler) NewStudio(c *gin.Context) {
	sess := h.store.Create()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, sess.ID, h.cookieAge, "/", "", false, true)
	c.HTML(http.StatusOK, "studio.html", sess.View())
}

// GET /studio
func (h *Handler) ShowStudio(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "studio.html", sess.View())
}

// POST /studio/generate
func (h *Handler) Generate(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	brief := briefFromForm(c)
	ticket, err := sess.Begin(brief)
	switch {
	case errors.Is(err, studio.ErrBusy):
		log.Printf("WARN: Ignored submit for session %s: generation already running", sess.ID)
	case err != nil:
		log.Printf("WARN: Ignored submit for session %s: %v", sess.ID, err)
	default:
		// The browser follows the redirect to the Submitting page, which may
		// drop this request. The Generator still bounds the call.
		ctx := context.WithoutCancel(c.Request.Context())
		go func() {
			if err := sess.Run(ctx, h.generator, ticket, brief); err != nil {
				log.Printf("Studio generation failed for session %s: %v", sess.ID, err)
			}
		}()
	}
	c.Redirect(http.StatusSeeOther, "/studio")
}

// POST /studio/reset
func (h *Handler) Reset(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if err := sess.Reset(); err != nil {
		log.Printf("WARN: Ignored reset for session %s: %v", sess.ID, err)
	}
	c.Redirect(http.StatusSeeOther, "/studio")
}

// POST /studio/mode switches the preview tab. The tab buttons live inside
// the brief form, so a changed form is recorded as an edit first.
func (h *Handler) SetMode(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if _, posted := c.GetPostForm("productName"); posted {
		if brief := briefFromForm(c); brief != sess.View().Form {
			if err := sess.UpdateForm(brief); err != nil {
				log.Printf("WARN: Ignored form edit for session %s: %v", sess.ID, err)
			}
		}
	}

	if err := sess.SetMode(studio.PreviewMode(c.PostForm("mode"))); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/studio")
}

func (h *Handler) session(c *gin.Context) (*studio.Session, bool) {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		return nil, false
	}
	return h.store.Get(id)
}

func briefFromForm(c *gin.Context) types.ProductBrief {
	// Not trimmed; /api/generate does not trim either.
	return types.ProductBrief{
		ProductName:    c.PostForm("productName"),
		OneLiner:       c.PostForm("oneLiner"),
		Description:    c.PostForm("description"),
		TargetAudience: c.PostForm("targetAudience"),
		Tone:           c.PostForm("tone"),
		PrimaryCTA:     c.PostForm("primaryCta"),
		SecondaryCTA:   c.PostForm("secondaryCta"),
	}
}
