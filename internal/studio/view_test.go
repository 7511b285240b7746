package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpage_studio/internal/types"
)

func TestView_EmptyFormChrome(t *testing.T) {
	v := NewSession("abc").View()

	assert.Equal(t, "your-product.launchpage.ai", v.HostLabel)
	assert.Equal(t, "Indie SaaS · AI-powered", v.Eyebrow)
	assert.Equal(t, "Built for indie hackers and tiny SaaS teams", v.AudiencePill)
	assert.Equal(t, "Get started free", v.PrimaryCTA)
	assert.Equal(t, "Watch demo", v.SecondaryCTA)
}

func TestView_FormChrome(t *testing.T) {
	s := NewSession("abc")
	b := brief()
	b.PrimaryCTA = "Try it"
	b.SecondaryCTA = ""
	require.NoError(t, s.UpdateForm(b))

	v := s.View()
	assert.Equal(t, "LaunchPage AI.launchpage.ai", v.HostLabel)
	assert.Equal(t, "indie hackers · AI-powered", v.Eyebrow)
	assert.Equal(t, "Built for indie hackers", v.AudiencePill)
	assert.Equal(t, "Try it", v.PrimaryCTA)
	assert.Equal(t, "Watch demo", v.SecondaryCTA)
}

func TestView_SampleCopyWithoutResult(t *testing.T) {
	v := NewSession("abc").View()

	assert.Equal(t, "Your AI-native startup, in one line.", v.HeroTitle)
	assert.Len(t, v.Features, 4)
	assert.Len(t, v.Pricing, 2)
	assert.Len(t, v.FAQs, 2)
	assert.Equal(t, RawPlaceholder, v.RawHTML)
}

func TestView_ResultFieldsFallBackIndividually(t *testing.T) {
	s := NewSession("abc")
	require.NoError(t, submit(s, &fakeGenerator{out: generated(t)}, brief()))

	v := s.View()
	assert.Equal(t, "Ship it", v.HeroTitle)
	assert.Equal(t, "Fast.", v.HeroSubtitle)
	assert.Equal(t, []types.Feature{{Title: "A", Body: "a"}}, v.Features)
	assert.Equal(t, samplePricing, v.Pricing)
	assert.Equal(t, sampleFAQs, v.FAQs)
	assert.Equal(t, "<section></section>", v.RawHTML)
}

func TestView_RawPlaceholderWhenResultHasNoHTML(t *testing.T) {
	out, err := types.DecodeLandingPage([]byte(`{"heroTitle":"Ship it"}`))
	require.NoError(t, err)

	s := NewSession("abc")
	require.NoError(t, submit(s, &fakeGenerator{out: out}, brief()))

	assert.Equal(t, RawPlaceholder, s.View().RawHTML)
}

func TestView_ToneOptions(t *testing.T) {
	s := NewSession("abc")
	b := brief()
	b.Tone = "playful"
	require.NoError(t, s.UpdateForm(b))

	var selected []string
	for _, opt := range s.View().Tones {
		if opt.Selected {
			selected = append(selected, opt.Value)
		}
	}
	assert.Equal(t, []string{"playful"}, selected)

	b.Tone = "shouty"
	require.NoError(t, s.UpdateForm(b))
	for _, opt := range s.View().Tones {
		assert.Equal(t, opt.Value == "bold", opt.Selected, opt.Value)
	}
}
