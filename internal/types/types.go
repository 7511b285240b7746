// Package types holds the request and response documents exchanged with the
// generation endpoints and the studio UI.
package types

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when the brief leaves a field empty.
const (
	DefaultTone         = "bold"
	DefaultPrimaryCTA   = "Get started free"
	DefaultSecondaryCTA = "Watch demo"
)

// Tones accepted by the copy prompt. Anything else is treated as DefaultTone.
var Tones = []string{"bold", "calm", "playful", "minimal"}

// ProductBrief is the user supplied description of the product.
type ProductBrief struct {
	ProductName    string `json:"productName" validate:"required,max=80"`
	OneLiner       string `json:"oneLiner" validate:"required,max=160"`
	Description    string `json:"description" validate:"required,max=800"`
	TargetAudience string `json:"targetAudience" validate:"required,max=120"`
	Tone           string `json:"tone,omitempty"`
	PrimaryCTA     string `json:"primaryCta,omitempty" validate:"max=40"`
	SecondaryCTA   string `json:"secondaryCta,omitempty" validate:"max=40"`
}

// PrimaryLabel returns the primary call-to-action label, defaulted.
func (b ProductBrief) PrimaryLabel() string {
	if b.PrimaryCTA == "" {
		return DefaultPrimaryCTA
	}
	return b.PrimaryCTA
}

// SecondaryLabel returns the secondary call-to-action label, defaulted.
func (b ProductBrief) SecondaryLabel() string {
	if b.SecondaryCTA == "" {
		return DefaultSecondaryCTA
	}
	return b.SecondaryCTA
}

// DefaultBrief is the empty form the studio starts from.
func DefaultBrief() ProductBrief {
	return ProductBrief{
		Tone:         DefaultTone,
		PrimaryCTA:   DefaultPrimaryCTA,
		SecondaryCTA: DefaultSecondaryCTA,
	}
}

// HeroImageRequest is the body of /api/hero-image.
type HeroImageRequest struct {
	ProductName string `json:"productName,omitempty" validate:"required_without=Description,max=80"`
	Description string `json:"description,omitempty" validate:"max=800"`
	StylePreset string `json:"stylePreset,omitempty"`
}

// HeroImage is the body returned by /api/hero-image.
type HeroImage struct {
	URL string `json:"url"`
}

// Feature is one card of the features section.
type Feature struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PricingTier is one card of the pricing section.
type PricingTier struct {
	Name    string `json:"name"`
	Price   string `json:"price"`
	Cadence string `json:"cadence"`
	Bullet  string `json:"bullet"`
}

// FAQ is a single question and answer.
type FAQ struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// LandingPage is the document the model is asked to produce.
type LandingPage struct {
	HeroTitle    string        `json:"heroTitle"`
	HeroSubtitle string        `json:"heroSubtitle"`
	Features     []Feature     `json:"features"`
	Pricing      []PricingTier `json:"pricing"`
	FAQs         []FAQ         `json:"faqs"`
	RawHTML      string        `json:"rawHtml"`
}

// GeneratedCopy pairs the provider's JSON, kept byte for byte, with a best
// effort typed view of it. Page fields are zero when the model left them out
// or gave them an unexpected type.
type GeneratedCopy struct {
	Raw  json.RawMessage
	Page LandingPage
}

// DecodeLandingPage builds a GeneratedCopy from valid JSON text. Each top-level
// field is decoded on its own so one malformed field does not hide the others.
func DecodeLandingPage(raw []byte) (*GeneratedCopy, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	out := &GeneratedCopy{Raw: append(json.RawMessage(nil), raw...)}
	decode := func(key string, dst any) {
		if v, ok := fields[key]; ok {
			_ = json.Unmarshal(v, dst)
		}
	}
	decode("heroTitle", &out.Page.HeroTitle)
	decode("heroSubtitle", &out.Page.HeroSubtitle)
	decode("features", &out.Page.Features)
	decode("pricing", &out.Page.Pricing)
	decode("faqs", &out.Page.FAQs)
	decode("rawHtml", &out.Page.RawHTML)
	return out, nil
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field string // JSON name
	Tag   string // failed rule, e.g. "required" or "max"
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Check validates v against its struct tags and returns the failed fields in
// declaration order. A nil slice means v is valid.
func Check(v any) []FieldError {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "(root)", Tag: "invalid"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag()})
	}
	return out
}
