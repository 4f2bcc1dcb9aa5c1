package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/motorcare/vehicle-service-api/internal/models"
)

const (
	catalogKey = "catalog:services:active"
	catalogTTL = 5 * time.Minute
)

// Catalog caches the active service list. A nil *Catalog is a valid
// no-op, so the API runs without redis configured.
type Catalog struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewCatalog(rdb *redis.Client, log zerolog.Logger) *Catalog {
	return &Catalog{
		rdb: rdb,
		log: log.With().Str("component", "catalog_cache").Logger(),
	}
}

func (c *Catalog) Get(ctx context.Context) ([]models.Service, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("cache read failed")
		}
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		c.log.Warn().Err(err).Msg("cache entry corrupt, ignoring")
		return nil, false
	}

	return services, true
}

func (c *Catalog) Set(ctx context.Context, services []models.Service) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(services)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, catalogKey, raw, catalogTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache write failed")
	}
}

func (c *Catalog) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
