package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

type SituacionCacheService interface {
	GetActivas(ctx context.Context) ([]domain.SituacionResumen, error)
	SetActivas(ctx context.Context, situaciones []domain.SituacionResumen, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// SituacionCache holds the active-situation summaries the map view polls.
type SituacionCache struct {
	client *goredis.Client
	key    string
}

func NewSituacionCache(r *Redis) *SituacionCache {
	return &SituacionCache{
		client: r.Client,
		key:    "situaciones:activas",
	}
}

func (c *SituacionCache) GetActivas(ctx context.Context) ([]domain.SituacionResumen, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var situaciones []domain.SituacionResumen
	if err := json.Unmarshal(data, &situaciones); err != nil {
		return nil, err
	}

	return situaciones, nil
}

func (c *SituacionCache) SetActivas(ctx context.Context, situaciones []domain.SituacionResumen, ttl time.Duration) error {
	b, err := json.Marshal(situaciones)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *SituacionCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
