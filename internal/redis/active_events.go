package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/config"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

const activeEventsPrefix = "active_events_"

// ActiveEventsCache keeps the ids of events active during a given minute.
// Entries expire on their own; the cache is best effort and a miss surfaces
// model.ErrNoRecord.
type ActiveEventsCache struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewActiveEventsCache(pool *redis.Pool, logger *zap.SugaredLogger) *ActiveEventsCache {
	return &ActiveEventsCache{
		pool:   pool,
		logger: logger,
	}
}

func (c *ActiveEventsCache) Get(ctx context.Context, at time.Time) ([]int64, error) {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	defer c.closeConn(conn)

	reply, err := redis.Bytes(conn.Do("GET", activeEventsKey(at)))
	if errors.Is(err, redis.ErrNil) {
		return nil, model.ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("GET: %w", err)
	}

	var ids []int64
	if err := json.Unmarshal(reply, &ids); err != nil {
		return nil, fmt.Errorf("unmarshal ids: %w", err)
	}

	return ids, nil
}

func (c *ActiveEventsCache) Set(ctx context.Context, at time.Time, ids []int64) error {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer c.closeConn(conn)

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal ids: %w", err)
	}

	ttl := int(config.ActiveCacheTTL().Seconds())
	if _, err := conn.Do("SETEX", activeEventsKey(at), ttl, data); err != nil {
		return fmt.Errorf("SETEX: %w", err)
	}

	return nil
}

func activeEventsKey(at time.Time) string {
	return fmt.Sprintf("%v%v", activeEventsPrefix, at.UTC().Truncate(time.Minute).Unix())
}

func (c *ActiveEventsCache) closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		c.logger.Errorw("Failed closing redis connection", "err", err)
	}
}
