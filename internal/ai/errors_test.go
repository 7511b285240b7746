package ai

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ValidationError{Message: MsgMissingRequired}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("handler: %w", &ValidationError{Message: "x"}), http.StatusBadRequest},
		{"configuration", &ConfigurationError{Variable: "OPENAI_API_KEY"}, http.StatusInternalServerError},
		{"protocol", &UpstreamProtocolError{Message: "no text content returned"}, http.StatusInternalServerError},
		{"format", &UpstreamFormatError{Message: "bad"}, http.StatusInternalServerError},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	const fallback = "Failed to generate landing page copy"

	assert.Equal(t, MsgMissingRequired, PublicMessage(&ValidationError{Message: MsgMissingRequired}, fallback))
	assert.Equal(t,
		"OPENAI_API_KEY is not set. Add it to your environment, .env file or config.yaml.",
		PublicMessage(&ConfigurationError{Variable: "OPENAI_API_KEY"}, fallback))
	assert.Equal(t, fallback, PublicMessage(&UpstreamFormatError{Message: "bad", Raw: "secret raw"}, fallback))
	assert.Equal(t, fallback, PublicMessage(errors.New("api key sk-123 rejected"), fallback))
}

func TestUpstreamFormatError_Unwrap(t *testing.T) {
	cause := errors.New("schema mismatch")
	err := &UpstreamFormatError{Message: "bad", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "bad: schema mismatch", err.Error())
	assert.Equal(t, "bad", (&UpstreamFormatError{Message: "bad"}).Error())
}
