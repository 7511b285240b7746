package ai

import (
	"context"
	"fmt"
	"log"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIOptions configures the OpenAI backend.
type OpenAIOptions struct {
	BaseURL    string // empty means the public endpoint
	HTTPClient *http.Client
	CopyModel  string
	ImageModel string
	ImageSize  string
}

// OpenAIBackend implements TextModel and ImageModel on top of go-openai.
// A client is built per call from the key resolved for that call; the
// underlying *http.Client and its connection pool are shared.
type OpenAIBackend struct {
	opts OpenAIOptions
}

func NewOpenAIBackend(opts OpenAIOptions) *OpenAIBackend {
	if opts.CopyModel == "" {
		opts.CopyModel = "gpt-4.1-mini"
	}
	if opts.ImageModel == "" {
		opts.ImageModel = openai.CreateImageModelDallE3
	}
	if opts.ImageSize == "" {
		opts.ImageSize = openai.CreateImageSize1024x1024
	}
	return &OpenAIBackend{opts: opts}
}

func (b *OpenAIBackend) client(apiKey string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if b.opts.BaseURL != "" {
		config.BaseURL = b.opts.BaseURL
	}
	if b.opts.HTTPClient != nil {
		config.HTTPClient = b.opts.HTTPClient
	}
	return openai.NewClientWithConfig(config)
}

// GenerateText sends prompt as the only user message and returns the first
// choice's content.
func (b *OpenAIBackend) GenerateText(ctx context.Context, apiKey, prompt string) (string, error) {
	resp, err := b.client(apiKey).CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: b.opts.CopyModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for empty completion: %+v", resp.Usage)
		return "", ErrNoTextContent
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerateImageURL requests a single image as a hosted URL.
func (b *OpenAIBackend) GenerateImageURL(ctx context.Context, apiKey, prompt string) (string, error) {
	resp, err := b.client(apiKey).CreateImage(
		ctx,
		openai.ImageRequest{
			Prompt:         prompt,
			Model:          b.opts.ImageModel,
			N:              1,
			Size:           b.opts.ImageSize,
			ResponseFormat: openai.CreateImageResponseFormatURL,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai image generation failed: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", ErrNoImageURL
	}

	return resp.Data[0].URL, nil
}
