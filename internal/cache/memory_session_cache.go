package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"symptomintake/internal/model"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

type memorySessionCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemorySessionCache keeps sessions in process. Entries are stored as JSON
// so callers never share a mutable session, and expired entries are swept on
// access.
func NewMemorySessionCache(ttl time.Duration) SessionCache {
	return newMemorySessionCache(ttl, time.Now)
}

func newMemorySessionCache(ttl time.Duration, now func() time.Time) *memorySessionCache {
	return &memorySessionCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (c *memorySessionCache) Get(_ context.Context, id string) (*model.IntakeSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweep()
	e, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	var session model.IntakeSession
	if err := json.Unmarshal(e.data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *memorySessionCache) Save(_ context.Context, session *model.IntakeSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[session.ID] = memoryEntry{data: data, expiresAt: c.now().Add(c.ttl)}
	return nil
}

func (c *memorySessionCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}

// sweep drops expired entries. Callers hold mu.
func (c *memorySessionCache) sweep() {
	if c.ttl <= 0 {
		return
	}
	now := c.now()
	for id, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, id)
		}
	}
}
