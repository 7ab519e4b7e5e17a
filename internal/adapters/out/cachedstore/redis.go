package cachedstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"orderdesk/internal/core/ports"
)

const defaultRedisPrefix = "orderdesk"

// RedisCache shares the snapshot between dashboard instances. The table is
// stored as JSON under "<prefix>:snapshot:<table>" and expires on its own;
// the invalidation generation lives under "<prefix>:snapshot:<table>:generation"
// and never expires.
type RedisCache struct {
	client        *redis.Client
	key           string
	generationKey string
}

// NewRedisCache creates a cache for the named table. An empty prefix means
// "orderdesk".
func NewRedisCache(client *redis.Client, prefix, table string) *RedisCache {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	key := fmt.Sprintf("%s:snapshot:%s", prefix, table)
	return &RedisCache{client: client, key: key, generationKey: key + ":generation"}
}

// Get returns the cached table. A missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context) (ports.Table, bool, error) {
	payload, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.Table{}, false, nil
	}
	if err != nil {
		return ports.Table{}, false, err
	}

	var table ports.Table
	if err = json.Unmarshal(payload, &table); err != nil {
		return ports.Table{}, false, fmt.Errorf("decode cached snapshot: %w", err)
	}
	return table, true, nil
}

// Generation reads the shared generation key. A missing key is zero.
func (c *RedisCache) Generation(ctx context.Context) (uint64, error) {
	return parseGeneration(c.client.Get(ctx, c.generationKey))
}

// Put writes the snapshot inside a WATCH on the generation key, so an
// invalidation from any instance between the check and the SET aborts it.
func (c *RedisCache) Put(ctx context.Context, table ports.Table, ttl time.Duration, generation uint64) (bool, error) {
	payload, err := json.Marshal(table)
	if err != nil {
		return false, err
	}

	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := parseGeneration(tx.Get(ctx, c.generationKey))
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key, payload, ttl)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, c.generationKey)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	return stored, err
}

// Invalidate drops the snapshot and advances the generation atomically.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.key)
		pipe.Incr(ctx, c.generationKey)
		return nil
	})
	return err
}

func parseGeneration(cmd *redis.StringCmd) (uint64, error) {
	generation, err := cmd.Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}
