package ai

import (
	"context"
	"errors"
	"time"

	"launchpage_studio/internal/schemas"
)

// Shape errors returned by provider backends.
var (
	ErrNoTextContent = errors.New("no text content returned")
	ErrNoImageURL    = errors.New("no image URL returned")
)

// TextModel runs one single-shot text completion. Implementations return
// ErrNoTextContent when the reply carries no text.
type TextModel interface {
	GenerateText(ctx context.Context, apiKey, prompt string) (string, error)
}

// ImageModel generates one image and returns its hosted URL. Implementations
// return ErrNoImageURL when the reply carries no URL.
type ImageModel interface {
	GenerateImageURL(ctx context.Context, apiKey, prompt string) (string, error)
}

// Credential names a provider secret and how to read it. Lookup is called on
// every request, never cached.
type Credential struct {
	Name   string
	Lookup func(name string) string
}

// Resolve returns the secret or a ConfigurationError naming it.
func (c Credential) Resolve() (string, error) {
	if c.Lookup == nil {
		return "", &ConfigurationError{Variable: c.Name}
	}
	key := c.Lookup(c.Name)
	if key == "" {
		return "", &ConfigurationError{Variable: c.Name}
	}
	return key, nil
}

// Options wires a Generator.
type Options struct {
	Text     TextModel
	TextKey  Credential
	Image    ImageModel
	ImageKey Credential

	// Schema, when set, rejects copy that does not match the landing page schema.
	Schema *schemas.Validator

	// Timeout bounds each provider call; zero means no bound beyond ctx.
	Timeout time.Duration
}

// Generator runs the copy and hero image generations.
type Generator struct {
	text     TextModel
	textKey  Credential
	image    ImageModel
	imageKey Credential
	schema   *schemas.Validator
	timeout  time.Duration
}

func NewGenerator(opts Options) *Generator {
	return &Generator{
		text:     opts.Text,
		textKey:  opts.TextKey,
		image:    opts.Image,
		imageKey: opts.ImageKey,
		schema:   opts.Schema,
		timeout:  opts.Timeout,
	}
}

// RequireCopyCredential reports whether copy generation is configured.
func (g *Generator) RequireCopyCredential() error {
	_, err := g.textKey.Resolve()
	return err
}

// RequireImageCredential reports whether image generation is configured.
func (g *Generator) RequireImageCredential() error {
	_, err := g.imageKey.Resolve()
	return err
}

func (g *Generator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}
