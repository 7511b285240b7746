package ai

import (
	"errors"
	"fmt"
	"net/http"
)

// Messages returned to clients.
const (
	MsgMissingRequired    = "Missing required fields"
	MsgMissingProductInfo = "Missing product information"
	MsgInvalidBody        = "Invalid request body"
	MsgCopyFailed         = "Failed to generate landing page copy"
	MsgImageFailed        = "Failed to generate hero image"
)

// ValidationError is a client error; the request never reaches the provider.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigurationError reports a missing provider credential.
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not set. Add it to your environment, .env file or config.yaml.", e.Variable)
}

// UpstreamProtocolError means the provider answered without the expected
// content (no text block, no image URL).
type UpstreamProtocolError struct {
	Message string
}

func (e *UpstreamProtocolError) Error() string {
	return e.Message
}

// UpstreamFormatError means the provider's text could not be used as a
// landing page document. Raw holds the offending text for server logs.
type UpstreamFormatError struct {
	Message string
	Raw     string
	Cause   error
}

func (e *UpstreamFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *UpstreamFormatError) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the status code an endpoint answers with for err.
func HTTPStatus(err error) int {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the text safe to show a client. Validation and
// configuration errors are shown as is; everything else becomes fallback.
func PublicMessage(err error, fallback string) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var cerr *ConfigurationError
	if errors.As(err, &cerr) {
		return cerr.Error()
	}
	return fallback
}
