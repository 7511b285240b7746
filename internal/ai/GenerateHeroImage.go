package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"launchpage_studio/internal/ai/prompts"
	"launchpage_studio/internal/types"
	"launchpage_studio/internal/utils"
)

// GenerateHeroImage asks the image model for one hero illustration and
// returns its provider-hosted URL. The URL may expire; it is not stored.
func (g *Generator) GenerateHeroImage(ctx context.Context, req types.HeroImageRequest) (*types.HeroImage, error) {
	apiKey, err := g.imageKey.Resolve()
	if err != nil {
		return nil, err
	}

	if errs := types.Check(req); len(errs) > 0 {
		if errs[0].Tag == "required_without" {
			return nil, &ValidationError{Message: MsgMissingProductInfo}
		}
		return nil, &ValidationError{Message: fmt.Sprintf("%s is too long", errs[0].Field)}
	}

	callID := uuid.New().String()
	log.Printf("Generating hero image (call %s) for %q, preset %q", callID, req.ProductName, req.StylePreset)

	fullPrompt := prompts.HeroImagePrompt(req.ProductName, req.Description, req.StylePreset)

	callCtx, cancel := g.withTimeout(ctx)
	defer cancel()

	url, err := g.image.GenerateImageURL(callCtx, apiKey, fullPrompt)
	if err != nil {
		if errors.Is(err, ErrNoImageURL) {
			log.Printf("ERROR: Image model returned no URL (call %s)", callID)
			return nil, &UpstreamProtocolError{Message: "no image URL returned"}
		}
		log.Printf("ERROR: Hero image call %s failed: %s", callID, utils.DescribeUpstreamError(err))
		return nil, fmt.Errorf("hero image generation failed: %w", err)
	}

	return &types.HeroImage{URL: url}, nil
}
