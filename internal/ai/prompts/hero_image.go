package prompts

import "fmt"

// Visual directions for the hero image, keyed by the studio template preset.
var visualStyles = map[string]string{
	"minimal": "minimalist, clean, lots of white space, subtle gradients, simple line icons, product-focused SaaS hero illustration",
	"bold":    "bold SaaS landing page hero, strong gradients, neon accents, abstract 3D blobs, sharp UI mockups, modern and high contrast",
	"playful": "soft, friendly, pastel colors, rounded shapes, creator-focused dashboard illustration, subtle hand-drawn details",
	"b2b":     "clean corporate B2B SaaS hero, blue and slate palette, subtle gradients, realistic but simplified dashboard mockup, trustworthy and modern",
}

// DefaultVisualStyle is used for unknown or missing presets.
const DefaultVisualStyle = "modern SaaS landing page hero, gradient background, abstract shapes, and product dashboard mockup"

const (
	fallbackProductName = "AI-powered SaaS product"
	fallbackDescription = "AI startup tool that helps users do their work faster."
)

// VisualStyle resolves a preset key to its art direction.
func VisualStyle(preset string) string {
	if style, ok := visualStyles[preset]; ok {
		return style
	}
	return DefaultVisualStyle
}

// HeroImagePrompt builds the image generation prompt. Empty name or
// description are replaced by generic placeholders.
func HeroImagePrompt(productName, description, preset string) string {
	if productName == "" {
		productName = fallbackProductName
	}
	if description == "" {
		description = fallbackDescription
	}

	return fmt.Sprintf(`
Landing page hero illustration for a SaaS product.

Product name: %s
Description: %s

Visual style: %s
Framing: wide hero banner, 16:9 layout, centered composition, no text.
Subject: abstract but clearly tech / SaaS, with UI cards, charts, or dashboard elements.
Quality: crisp, high-resolution, suitable as a landing page hero image.
`, productName, description, VisualStyle(preset))
}
