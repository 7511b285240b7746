package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// UpstreamStatus returns the HTTP status the provider answered with, or 0
// when err did not come from an HTTP response.
func UpstreamStatus(err error) int {
	if err == nil {
		return 0
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

// DescribeUpstreamError summarises a provider failure for the server log.
// Failures are never retried; this only labels them.
func DescribeUpstreamError(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Sprintf("timed out: %v", err)
	case errors.Is(err, context.Canceled):
		return fmt.Sprintf("canceled by client: %v", err)
	}
	if status := UpstreamStatus(err); status != 0 {
		kind := "provider error"
		switch {
		case status == 401 || status == 403:
			kind = "rejected credential"
		case status == 429:
			kind = "rate limited"
		case status >= 500:
			kind = "provider unavailable"
		}
		return fmt.Sprintf("%s (status %d): %v", kind, status, err)
	}
	return err.Error()
}
