package cache

import (
	"context"
	"encoding/json"
	"sotestenv/internal/model"
	"time"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:questions"

type CatalogCache interface {
	Set(ctx context.Context, catalog *model.QuestionCatalog) error

	// Get returns (nil, nil) on a cache miss.
	Get(ctx context.Context) (*model.QuestionCatalog, error)

	Invalidate(ctx context.Context) error
}

type catalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client) CatalogCache {
	return &catalogCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *catalogCache) Set(ctx context.Context, catalog *model.QuestionCatalog) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogKey, data, c.ttl).Err()
}

func (c *catalogCache) Get(ctx context.Context) (*model.QuestionCatalog, error) {
	data, err := c.client.Get(ctx, catalogKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var catalog model.QuestionCatalog
	err = json.Unmarshal([]byte(data), &catalog)
	return &catalog, err
}

func (c *catalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
