package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/VigilAI/VigilGate/pkg/config"
	"github.com/VigilAI/VigilGate/pkg/domain/record"
)

const (
	recordKeyPattern = "record:%s"
	recordTTL        = 10 * time.Minute
)

// NewRedisClient connects to redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return client, nil
}

// CachedRepository is a read-through cache in front of a record store.
// Individual record lookups hit redis first; listings always go to the
// underlying store. Cache failures degrade to the store, never to an
// error for the caller.
type CachedRepository struct {
	inner  record.Repository
	client *redis.Client
	logger *logrus.Logger
}

func NewCachedRepository(inner record.Repository, client *redis.Client, logger *logrus.Logger) record.Repository {
	return &CachedRepository{
		inner:  inner,
		client: client,
		logger: logger,
	}
}

func (c *CachedRepository) Save(ctx context.Context, rec *record.AnalysisRecord) error {
	if err := c.inner.Save(ctx, rec); err != nil {
		return err
	}
	c.store(ctx, rec)
	return nil
}

func (c *CachedRepository) Get(ctx context.Context, id uuid.UUID) (*record.AnalysisRecord, error) {
	key := fmt.Sprintf(recordKeyPattern, id.String())
	if payload, err := c.client.Get(ctx, key).Result(); err == nil {
		var rec record.AnalysisRecord
		if err := json.Unmarshal([]byte(payload), &rec); err == nil {
			return &rec, nil
		}
		c.logger.WithField("key", key).Warn("discarding undecodable cached record")
	}

	rec, err := c.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, rec)
	return rec, nil
}

func (c *CachedRepository) List(ctx context.Context) ([]record.AnalysisRecord, error) {
	return c.inner.List(ctx)
}

func (c *CachedRepository) store(ctx context.Context, rec *record.AnalysisRecord) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return
	}
	key := fmt.Sprintf(recordKeyPattern, rec.ID.String())
	if err := c.client.Set(ctx, key, payload, recordTTL).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("failed to cache record")
	}
}
