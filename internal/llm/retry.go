package llm

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"symptomintake/internal/platform/logger"
)

// transientMarkers are matched case-insensitively against error messages.
var transientMarkers = []string{"500", "rate limit", "timeout", "server error", "internal server error"}

// IsTransient reports whether err is worth retrying: provider 5xx, rate
// limiting or timeouts.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode >= http.StatusInternalServerError || apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return true
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode >= http.StatusInternalServerError || reqErr.HTTPStatusCode == http.StatusTooManyRequests {
			return true
		}
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// RetryPolicy retries transient failures with exponential backoff and jitter.
// Every Do call starts with a fresh budget.
type RetryPolicy struct {
	MaxRetries int           // total attempts
	BaseDelay  time.Duration // delay before the second attempt, doubled after

	// Jitter returns the random component added to each delay. Defaults to
	// U[0,1s).
	Jitter func() time.Duration
	// Wait blocks for d or until ctx is done. Defaults to a timer select.
	Wait func(ctx context.Context, d time.Duration) error

	Log *logger.Logger
}

// DefaultRetryPolicy is three attempts starting at one second.
func DefaultRetryPolicy(log *logger.Logger) *RetryPolicy {
	return &RetryPolicy{MaxRetries: 3, BaseDelay: time.Second, Log: log}
}

// Do runs op until it succeeds, fails with a non-transient error, or the
// attempt budget is spent. The last error is returned unchanged.
func (p *RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempts := p.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = op(ctx); err == nil {
			return nil
		}
		if !IsTransient(err) || attempt == attempts-1 {
			return err
		}

		delay := p.BaseDelay*time.Duration(1<<attempt) + p.jitter()
		if p.Log != nil {
			p.Log.Warn("LLM request retrying",
				"attempt", attempt+1,
				"max_retries", attempts,
				"delay", delay.String(),
				"error", err.Error(),
			)
		}
		if waitErr := p.wait(ctx, delay); waitErr != nil {
			return err
		}
	}
	return err
}

func (p *RetryPolicy) jitter() time.Duration {
	if p.Jitter != nil {
		return p.Jitter()
	}
	return time.Duration(rand.Int63n(int64(time.Second)))
}

func (p *RetryPolicy) wait(ctx context.Context, d time.Duration) error {
	if p.Wait != nil {
		return p.Wait(ctx, d)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetryingClient applies a RetryPolicy to every Complete call.
type RetryingClient struct {
	next   Client
	policy *RetryPolicy
}

// WithRetry wraps next with policy.
func WithRetry(next Client, policy *RetryPolicy) *RetryingClient {
	return &RetryingClient{next: next, policy: policy}
}

func (c *RetryingClient) Complete(ctx context.Context, req Request) (string, error) {
	var out string
	err := c.policy.Do(ctx, func(ctx context.Context) error {
		text, err := c.next.Complete(ctx, req)
		if err != nil {
			return err
		}
		out = text
		return nil
	})
	return out, err
}
