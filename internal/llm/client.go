package llm

import (
	"context"
	"errors"
)

var (
	// ErrDisabled is returned when no provider credentials are configured.
	// It is not transient, so callers fall back immediately.
	ErrDisabled = errors.New("llm provider not configured")
	// ErrEmptyResponse is returned when the provider answers with no choices.
	ErrEmptyResponse = errors.New("llm returned no content")
)

// Request is one completion call: a system instruction, one or more user
// turns and sampling parameters.
type Request struct {
	System           string
	User             []string
	Temperature      float32
	MaxTokens        int
	PresencePenalty  float32
	FrequencyPenalty float32
}

// Client submits a completion request and returns the generated text.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, req Request) (string, error)

func (f ClientFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Disabled is the client used when no API key is set.
type Disabled struct{}

func (Disabled) Complete(context.Context, Request) (string, error) {
	return "", ErrDisabled
}
