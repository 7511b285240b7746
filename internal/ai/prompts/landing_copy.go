package prompts

import (
	"fmt"

	"launchpage_studio/internal/types"
)

// Tone phrases interpolated into the copy prompt.
const (
	ToneBold    = "bold, punchy, hacker-news-launch style"
	ToneCalm    = "calm, confident B2B SaaS"
	TonePlayful = "playful, fun, creator-focused"
	ToneMinimal = "minimal, clean, product-focused"
)

// ToneLabel maps a tone key to its phrase. Unknown or empty keys get ToneBold.
func ToneLabel(tone string) string {
	switch tone {
	case "calm":
		return ToneCalm
	case "playful":
		return TonePlayful
	case "minimal":
		return ToneMinimal
	default:
		return ToneBold
	}
}

// LandingCopyPrompt builds the single instruction sent for copy generation.
func LandingCopyPrompt(brief types.ProductBrief) string {
	prompt := `
You are a senior SaaS copywriter who specialises in landing pages that convert.

Write high-converting landing page copy for the following product. Return **only** valid JSON that matches this exact shape:

{
  "heroTitle": string,
  "heroSubtitle": string,
  "features": [{ "title": string, "body": string }],
  "pricing": [{ "name": string, "price": string, "cadence": string, "bullet": string }],
  "faqs": [{ "q": string, "a": string }],
  "rawHtml": string
}

Product name: %s
One-line pitch: %s
Target audience: %s
Detailed description: %s
Preferred tone of voice: %s
Primary call-to-action button label: %s
Secondary call-to-action button label: %s

Constraints:
- Hero title must be under 90 characters, sharp and concrete.
- Hero subtitle must be 1-2 sentences and focus on outcome and speed.
- Include exactly 4 features focused on pain points and outcomes.
- Include exactly 2 pricing tiers. Make them realistic for an indie SaaS.
- FAQs should be concise, addressing trust, editing, and usage.
- In "rawHtml", include a clean, semantic HTML5 snippet with sections for hero, features, pricing, and FAQs. No inline styles, no <html> or <body> tags.
- Do NOT include markdown. Do NOT include comments. Do NOT wrap the JSON in backticks.
`

	return fmt.Sprintf(prompt,
		brief.ProductName,
		brief.OneLiner,
		brief.TargetAudience,
		brief.Description,
		ToneLabel(brief.Tone),
		brief.PrimaryLabel(),
		brief.SecondaryLabel(),
	)
}
