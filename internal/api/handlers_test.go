package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpage_studio/internal/ai"
	"launchpage_studio/internal/schemas"
)

const validCopy = `{"heroTitle":"Ship your landing page today","heroSubtitle":"One brief in, a page out.",` +
	`"features":[{"title":"A","body":"a"},{"title":"B","body":"b"},{"title":"C","body":"c"},{"title":"D","body":"d"}],` +
	`"pricing":[{"name":"Starter","price":"$9","cadence":"one-time","bullet":"One page."},` +
	`{"name":"Indie","price":"$29","cadence":"per month","bullet":"Unlimited."}],` +
	`"faqs":[{"q":"Can I edit it?","a":"Yes."}],"rawHtml":"<section id=\"hero\"></section>"}`

type stubText struct {
	reply string
	err   error
	calls int
}

func (s *stubText) GenerateText(context.Context, string, string) (string, error) {
	s.calls++
	return s.reply, s.err
}

type stubImage struct {
	url   string
	calls int
}

func (s *stubImage) GenerateImageURL(context.Context, string, string) (string, error) {
	s.calls++
	return s.url, nil
}

type testServer struct {
	router *gin.Engine
	text   *stubText
	image  *stubImage
}

func newTestServer(t *testing.T, env map[string]string, reply string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	validator, err := schemas.NewLandingPageValidator()
	require.NoError(t, err)

	lookup := func(name string) string { return env[name] }
	ts := &testServer{
		text:  &stubText{reply: reply},
		image: &stubImage{url: "https://images.example.com/hero.png"},
	}
	gen := ai.NewGenerator(ai.Options{
		Text:     ts.text,
		TextKey:  ai.Credential{Name: "OPENAI_API_KEY", Lookup: lookup},
		Image:    ts.image,
		ImageKey: ai.Credential{Name: "OPENAI_API_KEY", Lookup: lookup},
		Schema:   validator,
		Timeout:  time.Second,
	})

	ts.router = gin.New()
	RegisterRoutes(ts.router, NewAPIHandler(gen))
	return ts
}

func (ts *testServer) post(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

var withKey = map[string]string{"OPENAI_API_KEY": "sk-test"}

const fullBrief = `{"productName":"LaunchPage AI","oneLiner":"Generate a landing page from one sentence.",` +
	`"description":"Turns a short brief into landing page copy.","targetAudience":"indie hackers","tone":"playful"}`

func TestGenerate_Success(t *testing.T) {
	ts := newTestServer(t, withKey, validCopy)

	w := ts.post("/api/generate", fullBrief)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, validCopy, w.Body.String())

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Len(t, doc, 6)
	for _, key := range []string{"heroTitle", "heroSubtitle", "features", "pricing", "faqs", "rawHtml"} {
		assert.Contains(t, doc, key)
	}
	assert.Equal(t, 1, ts.text.calls)
}

func TestGenerate_MissingRequiredField(t *testing.T) {
	ts := newTestServer(t, withKey, validCopy)

	w := ts.post("/api/generate", `{"productName":"LaunchPage AI","oneLiner":"x","description":"y"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", w.Body.String())
	assert.Zero(t, ts.text.calls)
}

func TestGenerate_FieldTooLong(t *testing.T) {
	ts := newTestServer(t, withKey, validCopy)

	body := strings.Replace(fullBrief, `"LaunchPage AI"`, `"`+strings.Repeat("a", 81)+`"`, 1)
	w := ts.post("/api/generate", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "productName is too long", w.Body.String())
	assert.Zero(t, ts.text.calls)
}

func TestGenerate_MissingCredential(t *testing.T) {
	ts := newTestServer(t, map[string]string{}, validCopy)

	for _, body := range []string{fullBrief, `not json`} {
		w := ts.post("/api/generate", body)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "OPENAI_API_KEY")
	}
	assert.Zero(t, ts.text.calls)
}

func TestGenerate_InvalidBody(t *testing.T) {
	ts := newTestServer(t, withKey, validCopy)

	for _, body := range []string{``, `{"productName": 12}`, `{"productName":`} {
		w := ts.post("/api/generate", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", w.Body.String())
	}
	assert.Zero(t, ts.text.calls)
}

func TestGenerate_UpstreamFailuresAreGeneric(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"not json", "Sure! Here is your landing page: ..."},
		{"fenced json", "```json\n" + validCopy + "\n```"},
		{"schema mismatch", `{"heroTitle":"only a title"}`},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, withKey, tt.reply)
			if tt.reply == "" {
				ts.text.err = ai.ErrNoTextContent
			}

			w := ts.post("/api/generate", fullBrief)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "Failed to generate landing page copy", w.Body.String())
		})
	}
}

func TestHeroImage_Success(t *testing.T) {
	ts := newTestServer(t, withKey, "")

	w := ts.post("/api/hero-image", `{"productName":"LaunchPage AI","stylePreset":"bold"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"https://images.example.com/hero.png"}`, w.Body.String())
	assert.Equal(t, 1, ts.image.calls)
}

func TestHeroImage_MissingProductInfo(t *testing.T) {
	ts := newTestServer(t, withKey, "")

	w := ts.post("/api/hero-image", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing product information", w.Body.String())
	assert.Zero(t, ts.image.calls)
}

func TestHeroImage_MissingCredential(t *testing.T) {
	ts := newTestServer(t, map[string]string{}, "")

	w := ts.post("/api/hero-image", `{"description":"landing pages"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "OPENAI_API_KEY is not set")
	assert.Zero(t, ts.image.calls)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, map[string]string{}, "")

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
