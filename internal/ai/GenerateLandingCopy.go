package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"launchpage_studio/internal/ai/prompts"
	"launchpage_studio/internal/types"
	"launchpage_studio/internal/utils"
)

// GenerateLandingCopy asks the text model for landing page copy and returns
// the model's JSON untouched.
func (g *Generator) GenerateLandingCopy(ctx context.Context, brief types.ProductBrief) (*types.GeneratedCopy, error) {
	apiKey, err := g.textKey.Resolve()
	if err != nil {
		return nil, err
	}

	if err := checkBrief(brief); err != nil {
		return nil, err
	}

	callID := uuid.New().String()
	log.Printf("Generating landing copy (call %s) for %q, tone %q", callID, brief.ProductName, brief.Tone)

	fullPrompt := prompts.LandingCopyPrompt(brief)

	callCtx, cancel := g.withTimeout(ctx)
	defer cancel()

	text, err := g.text.GenerateText(callCtx, apiKey, fullPrompt)
	if err != nil {
		if errors.Is(err, ErrNoTextContent) {
			log.Printf("ERROR: Model returned no text content (call %s)", callID)
			return nil, &UpstreamProtocolError{Message: "no text content returned"}
		}
		log.Printf("ERROR: Copy generation call %s failed: %s", callID, utils.DescribeUpstreamError(err))
		return nil, fmt.Errorf("copy generation failed: %w", err)
	}

	raw := []byte(text)
	if !json.Valid(raw) {
		log.Printf("ERROR: Failed to parse JSON from model (call %s): %s", callID, text)
		return nil, &UpstreamFormatError{Message: "model did not return valid JSON", Raw: text}
	}

	if g.schema != nil {
		if err := g.schema.Validate(raw); err != nil {
			log.Printf("ERROR: Model JSON does not match the landing page schema (call %s): %v", callID, err)
			return nil, &UpstreamFormatError{Message: "model JSON does not match the landing page schema", Raw: text, Cause: err}
		}
	}

	out, err := types.DecodeLandingPage(raw)
	if err != nil {
		// Valid JSON but not an object; only reachable with the schema check off.
		log.Printf("WARN: Model JSON is not an object (call %s); passing it through", callID)
		out = &types.GeneratedCopy{Raw: raw}
	}

	log.Printf("Landing copy generated (call %s), %d bytes", callID, len(raw))
	return out, nil
}

func checkBrief(brief types.ProductBrief) error {
	errs := types.Check(brief)
	if len(errs) == 0 {
		return nil
	}
	for _, fe := range errs {
		if fe.Tag == "required" {
			return &ValidationError{Message: MsgMissingRequired}
		}
	}
	return &ValidationError{Message: fmt.Sprintf("%s is too long", errs[0].Field)}
}
