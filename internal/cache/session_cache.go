package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"symptomintake/internal/model"
)

// SessionCache stores intake questionnaire state. Get returns nil, nil when
// the session does not exist or has expired.
type SessionCache interface {
	Get(ctx context.Context, id string) (*model.IntakeSession, error)
	Save(ctx context.Context, session *model.IntakeSession) error
	Delete(ctx context.Context, id string) error
}

type redisSessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionCache stores sessions as JSON with a sliding TTL
func NewRedisSessionCache(client *redis.Client, ttl time.Duration) SessionCache {
	return &redisSessionCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *redisSessionCache) key(id string) string {
	return fmt.Sprintf("intake:session:%s", id)
}

func (c *redisSessionCache) Get(ctx context.Context, id string) (*model.IntakeSession, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.IntakeSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *redisSessionCache) Save(ctx context.Context, session *model.IntakeSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(session.ID), data, c.ttl).Err()
}

func (c *redisSessionCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
