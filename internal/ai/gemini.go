package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiBackend implements TextModel with Google Gemini. It is only used for
// copy generation; hero images always go through OpenAI.
type GeminiBackend struct {
	model string
}

func NewGeminiBackend(model string) *GeminiBackend {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiBackend{model: model}
}

// GenerateText returns the first part of the first candidate when it is text.
func (b *GeminiBackend) GenerateText(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(b.model)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	return firstGeminiText(resp)
}

func firstGeminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoTextContent
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		log.Printf("WARN: Gemini candidate has no content, finish reason %v", candidate.FinishReason)
		return "", ErrNoTextContent
	}
	text, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok || text == "" {
		return "", ErrNoTextContent
	}
	return string(text), nil
}
