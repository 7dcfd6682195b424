package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/abhishek622/entrystore/pkg/model"
	"github.com/redis/go-redis/v9"
)

const (
	entryGenKey        = "entrystore:entries:gen"
	entryListKeyPrefix = "entrystore:entries:list:"
)

func entryListKey(gen int64) string {
	return entryListKeyPrefix + strconv.FormatInt(gen, 10)
}

// EntryListCache keeps JSON copies of the entry list keyed by generation.
// Every mutation bumps the generation, so a snapshot stored under an older
// generation is never read again and just expires.
type EntryListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEntryListCache stores snapshots with the given TTL.
func NewEntryListCache(client *redis.Client, ttl time.Duration) *EntryListCache {
	return &EntryListCache{client: client, ttl: ttl}
}

// Get returns the current generation and the snapshot stored for it. ok is
// false on a miss; gen is still valid then and must be passed to Set.
func (c *EntryListCache) Get(ctx context.Context) (gen int64, entries []model.Entry, ok bool, err error) {
	gen, err = c.client.Get(ctx, entryGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		gen, err = 0, nil
	}
	if err != nil {
		return 0, nil, false, fmt.Errorf("get entry list generation: %w", err)
	}

	b, err := c.client.Get(ctx, entryListKey(gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return gen, nil, false, nil
	}
	if err != nil {
		return gen, nil, false, fmt.Errorf("get entry list: %w", err)
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		return gen, nil, false, fmt.Errorf("unmarshal entry list: %w", err)
	}
	return gen, entries, true, nil
}

// Set stores entries as the snapshot of generation gen.
func (c *EntryListCache) Set(ctx context.Context, gen int64, entries []model.Entry) error {
	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal entry list: %w", err)
	}
	if err := c.client.Set(ctx, entryListKey(gen), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("set entry list: %w", err)
	}
	return nil
}

// Invalidate moves to a new generation.
func (c *EntryListCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, entryGenKey).Err(); err != nil {
		return fmt.Errorf("invalidate entry list: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (c *EntryListCache) Ping(ctx context.Context) error {
	return Ping(ctx, c.client)
}
