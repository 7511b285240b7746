package studio

import (
	"launchpage_studio/internal/types"
)

// RawPlaceholder is shown in raw mode until a result carries rawHtml.
const RawPlaceholder = "<!-- Generated landing page HTML will appear here once you run it on a server with your OPENAI_API_KEY configured. -->"

// Sample copy rendered in the visual preview for any section the current
// result does not provide.
var (
	sampleHeroTitle    = "Your AI-native startup, in one line."
	sampleHeroSubtitle = "Drop your idea in. Get a conversion-optimized landing page out. Built for indie hackers, by an indie hacker."
	sampleFeatures     = []types.Feature{
		{Title: "Conversion-first copy", Body: "Every section is written with headlines, hooks and CTAs optimized for signups."},
		{Title: "Designed for speed", Body: "From idea to published page in under 60 seconds. No Figma, no copywriters."},
		{Title: "Export-ready HTML", Body: "Copy and paste your landing into Webflow, Framer, Vercel or anywhere else."},
		{Title: "Battle-tested sections", Body: "Hero, features, pricing, FAQs and social proof tuned for SaaS and indie projects."},
	}
	samplePricing = []types.PricingTier{
		{Name: "Starter", Price: "$9", Cadence: "one-time", Bullet: "Export one high-converting landing page."},
		{Name: "Indie Hacker", Price: "$29", Cadence: "per month", Bullet: "Unlimited pages, projects and experiments."},
	}
	sampleFAQs = []types.FAQ{
		{Q: "Do I need any design skills?", A: "No. Just describe your product and audience in plain language, we handle the rest."},
		{Q: "Can I edit the copy after?", A: "Yes, you get clean text and HTML you can tweak in your stack of choice."},
	}
)

// ToneOption is one entry of the tone select.
type ToneOption struct {
	Value    string
	Label    string
	Selected bool
}

var toneLabels = map[string]string{
	"bold":    "Bold & punchy (startup launch)",
	"calm":    "Calm & confident (B2B SaaS)",
	"playful": "Playful & fun (creator tools)",
	"minimal": "Minimal & product-focused",
}

// View is everything the studio page template needs, computed under the
// session lock so it is a consistent snapshot.
type View struct {
	SessionID string
	Form      types.ProductBrief
	Tones     []ToneOption
	Phase     Phase
	Mode      PreviewMode
	Busy      bool
	Error     string
	HasResult bool

	HostLabel    string
	Eyebrow      string
	AudiencePill string
	PrimaryCTA   string
	SecondaryCTA string

	HeroTitle    string
	HeroSubtitle string
	Features     []types.Feature
	Pricing      []types.PricingTier
	FAQs         []types.FAQ
	RawHTML      string
}

// RawMode reports whether the preview shows the HTML source.
func (v View) RawMode() bool {
	return v.Mode == ModeRaw
}

// View snapshots the session for rendering.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	form := s.form
	v := View{
		SessionID:    s.ID,
		Form:         form,
		Tones:        toneOptions(form.Tone),
		Phase:        s.phase,
		Mode:         s.mode,
		Busy:         s.phase == Submitting,
		HostLabel:    orDefault(form.ProductName, "your-product") + ".launchpage.ai",
		Eyebrow:      "Indie SaaS · AI-powered",
		AudiencePill: "Built for " + orDefault(form.TargetAudience, "indie hackers and tiny SaaS teams"),
		PrimaryCTA:   form.PrimaryLabel(),
		SecondaryCTA: form.SecondaryLabel(),
		HeroTitle:    sampleHeroTitle,
		HeroSubtitle: sampleHeroSubtitle,
		Features:     sampleFeatures,
		Pricing:      samplePricing,
		FAQs:         sampleFAQs,
		RawHTML:      RawPlaceholder,
	}
	if form.TargetAudience != "" {
		v.Eyebrow = form.TargetAudience + " · AI-powered"
	}

	if s.phase == Failure {
		v.Error = s.errMsg
	}

	if s.phase == Success && s.result != nil {
		page := s.result.Page
		v.HasResult = true
		v.HeroTitle = orDefault(page.HeroTitle, sampleHeroTitle)
		v.HeroSubtitle = orDefault(page.HeroSubtitle, sampleHeroSubtitle)
		if len(page.Features) > 0 {
			v.Features = page.Features
		}
		if len(page.Pricing) > 0 {
			v.Pricing = page.Pricing
		}
		if len(page.FAQs) > 0 {
			v.FAQs = page.FAQs
		}
		v.RawHTML = orDefault(page.RawHTML, RawPlaceholder)
	}

	return v
}

func toneOptions(selected string) []ToneOption {
	if _, ok := toneLabels[selected]; !ok {
		selected = types.DefaultTone
	}
	out := make([]ToneOption, 0, len(types.Tones))
	for _, tone := range types.Tones {
		out = append(out, ToneOption{Value: tone, Label: toneLabels[tone], Selected: tone == selected})
	}
	return out
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
