package cache

import (
	"context"
	"testing"
	"time"

	"symptomintake/internal/model"
)

func TestMemorySessionCacheRoundTrip(t *testing.T) {
	c := NewMemorySessionCache(time.Hour)
	ctx := context.Background()

	got, err := c.Get(ctx, "missing")
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil for a missing session, got %v, %v", got, err)
	}

	s := model.NewIntakeSession("abc", time.Now())
	s.Individual.Questions = []model.Question{{Text: "When?", Type: model.QuestionTypeTextarea}}
	s.Individual.Generated = true
	if err := c.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err = c.Get(ctx, "abc")
	if err != nil || got == nil {
		t.Fatalf("Get: %v, %v", got, err)
	}
	if got.Individual.State() != model.FlowReady || got.Individual.Questions[0].Text != "When?" {
		t.Fatalf("unexpected session %+v", got.Individual)
	}

	// Mutating the returned copy must not touch the stored one.
	got.Individual.Cursor = 1
	again, _ := c.Get(ctx, "abc")
	if again.Individual.Cursor != 0 {
		t.Fatal("cache returned a shared session")
	}

	if err := c.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := c.Get(ctx, "abc"); got != nil {
		t.Fatal("expected session to be deleted")
	}
}

func TestMemorySessionCacheExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := newMemorySessionCache(time.Minute, func() time.Time { return now })
	ctx := context.Background()

	if err := c.Save(ctx, model.NewIntakeSession("abc", now)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	now = now.Add(30 * time.Second)
	if got, _ := c.Get(ctx, "abc"); got == nil {
		t.Fatal("session expired too early")
	}
	now = now.Add(2 * time.Minute)
	if got, _ := c.Get(ctx, "abc"); got != nil {
		t.Fatal("expected session to expire")
	}
}
