package statscache

import (
	"context"
	"encoding/json"
	"time"

	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	getreminderstats "dentalab/internal/core/services/get_reminder_stats"

	"github.com/go-redis/redis/v9"
)

const cacheKey = "recordatorios::estadisticas"

// Redis caches computed reminder statistics with a short TTL. Any cache
// error is logged and treated as a miss so callers always get an answer.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
	ttl         time.Duration
}

func NewRedis(redisClient *redis.Client, log logging.Logger, ttl time.Duration) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Redis{redisClient: redisClient, log: log, ttl: ttl}
}

func (c *Redis) Get(ctx context.Context) (stats getreminderstats.Stats, ok bool) {
	raw, err := c.redisClient.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warning(ctx, "Could not read stats cache.", logging.Entry("err", err))
		}
		return stats, false
	}
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.log.Warning(ctx, "Could not decode cached stats.", logging.Entry("err", err))
		return stats, false
	}
	return stats, true
}

func (c *Redis) Set(ctx context.Context, stats getreminderstats.Stats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		c.log.Warning(ctx, "Could not encode stats for caching.", logging.Entry("err", err))
		return
	}
	if err := c.redisClient.Set(ctx, cacheKey, raw, c.ttl).Err(); err != nil {
		c.log.Warning(ctx, "Could not write stats cache.", logging.Entry("err", err))
	}
}

var _ getreminderstats.Cache = (*Redis)(nil)
