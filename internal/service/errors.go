package service

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when no OpenAI key is configured
	ErrMissingAPIKey = errors.New("OpenAI API key is not configured")
	// ErrNoJSON is returned when the model reply contains no JSON object
	ErrNoJSON = errors.New("model did not return JSON")
	// ErrEmptyResponse is returned when the completion has no choices
	ErrEmptyResponse = errors.New("no response from API")
)

// UpstreamError is a non-2xx reply from the chat completion API. Error
// returns the provider's message unchanged so callers can surface it.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("OpenAI API request failed with status %d", e.StatusCode)
}
