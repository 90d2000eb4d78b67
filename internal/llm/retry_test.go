package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func noWaitPolicy(waits *[]time.Duration) *RetryPolicy {
	return &RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		Jitter:     func() time.Duration { return 250 * time.Millisecond },
		Wait: func(_ context.Context, d time.Duration) error {
			*waits = append(*waits, d)
			return nil
		},
	}
}

func TestIsTransient(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errors.New("Error code: 500 - internal"), true},
		{errors.New("Rate limit reached for requests"), true},
		{errors.New("request TIMEOUT"), true},
		{errors.New("The server had an Internal Server Error"), true},
		{errors.New("invalid api key"), false},
		{errors.New("bad request: missing model"), false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := IsTransient(tc.err); got != tc.want {
			t.Errorf("IsTransient(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestRetryTransientExhaustsBudget(t *testing.T) {
	var waits []time.Duration
	p := noWaitPolicy(&waits)
	injected := errors.New("502 server error")

	calls := 0
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		return injected
	})
	if !errors.Is(err, injected) {
		t.Fatalf("expected injected error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	want := []time.Duration{1250 * time.Millisecond, 2250 * time.Millisecond}
	if len(waits) != len(want) {
		t.Fatalf("expected %d waits, got %v", len(want), waits)
	}
	for i := range want {
		if waits[i] != want[i] {
			t.Errorf("wait %d = %v, want %v", i, waits[i], want[i])
		}
	}
}

func TestRetryNonTransientFailsFast(t *testing.T) {
	var waits []time.Duration
	p := noWaitPolicy(&waits)

	calls := 0
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		return errors.New("invalid api key")
	})
	if err == nil || calls != 1 || len(waits) != 0 {
		t.Fatalf("expected one attempt and no wait, got calls=%d waits=%v err=%v", calls, waits, err)
	}
}

func TestRetryRecovers(t *testing.T) {
	var waits []time.Duration
	p := noWaitPolicy(&waits)

	calls := 0
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 2 {
			return errors.New("rate limit")
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Fatalf("expected success on second attempt, got calls=%d err=%v", calls, err)
	}
}

func TestRetryStopsWhenContextDone(t *testing.T) {
	p := &RetryPolicy{MaxRetries: 3, BaseDelay: time.Hour, Jitter: func() time.Duration { return 0 }}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := p.Do(ctx, func(context.Context) error {
		calls++
		return errors.New("timeout")
	})
	if calls != 1 || err == nil {
		t.Fatalf("expected a single attempt before cancellation, got %d (%v)", calls, err)
	}
}

func TestRetryingClientReturnsText(t *testing.T) {
	var waits []time.Duration
	calls := 0
	inner := ClientFunc(func(context.Context, Request) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("500")
		}
		return "ok", nil
	})
	c := WithRetry(inner, noWaitPolicy(&waits))
	out, err := c.Complete(context.Background(), Request{})
	if err != nil || out != "ok" {
		t.Fatalf("got %q, %v", out, err)
	}
}
