// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// query.go provides a Valkey-backed cache for forum backend responses.
// Page handlers check it before calling the REST client and store decoded
// results on miss; mutation handlers invalidate the owning keys so the next
// page load re-fetches instead of patching cached data in place.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// queryKeyPrefix is the Valkey key prefix for cached backend responses.
	queryKeyPrefix = "query:"

	// DefaultQueryTTL is how long a cached response stays valid without
	// an explicit invalidation.
	DefaultQueryTTL = 1 * time.Minute
)

// QueryCache manages cached backend responses in Valkey. Cache failures
// are never fatal: a miss just means the handler calls the backend.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQueryCache creates a query cache backed by the given Valkey client.
func NewQueryCache(client *redis.Client, ttl time.Duration) *QueryCache {
	if ttl == 0 {
		ttl = DefaultQueryTTL
	}
	return &QueryCache{client: client, ttl: ttl}
}

// Get loads a cached response into out. Returns false on miss or when the
// cached payload cannot be decoded.
func (qc *QueryCache) Get(ctx context.Context, key string, out any) bool {
	payload, err := qc.client.Get(ctx, queryKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		slog.Warn("query cache get error", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		slog.Warn("query cache decode error", "key", key, "error", err)
		return false
	}
	slog.Debug("query cache hit", "key", key)
	return true
}

// Set stores a response under key with the configured TTL.
func (qc *QueryCache) Set(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		slog.Warn("query cache encode error", "key", key, "error", err)
		return
	}
	if err := qc.client.Set(ctx, queryKeyPrefix+key, payload, qc.ttl).Err(); err != nil {
		slog.Warn("query cache set error", "key", key, "error", err)
	}
}

// Invalidate removes cached responses by key.
func (qc *QueryCache) Invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := qc.client.Del(ctx, queryKeyPrefix+key).Err(); err != nil {
			slog.Warn("query cache invalidate error", "key", key, "error", err)
		}
		slog.Debug("query cache invalidated", "key", key)
	}
}

// InvalidatePrefix removes every cached response whose key starts with
// prefix, scanning in batches. Used for families of keys like paged post
// listings where the exact set of cached pages is unknown.
func (qc *QueryCache) InvalidatePrefix(ctx context.Context, prefix string) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := qc.client.Scan(ctx, cursor, queryKeyPrefix+prefix+"*", 100).Result()
		if err != nil {
			slog.Warn("query cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := qc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("query cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("query cache prefix cleared", "prefix", prefix, "deleted", deleted)
	}
}

// SubtopicsKey is the cache key for the full subtopic listing.
func SubtopicsKey() string {
	return "subtopics"
}

// SubtopicKey returns the cache key for a subtopic detail page.
func SubtopicKey(slug string) string {
	return fmt.Sprintf("subtopic:%s", slug)
}

// PostsKey returns the cache key for a post listing.
func PostsKey(subtopicID string, page int) string {
	return fmt.Sprintf("posts:%s:%d", subtopicID, page)
}

// PostKey returns the cache key for a post detail.
func PostKey(id string) string {
	return fmt.Sprintf("post:%s", id)
}

// CommentsKey returns the cache key for a post's comment tree.
func CommentsKey(postID string) string {
	return fmt.Sprintf("comments:post:%s", postID)
}

// AdminStatsKey is the cache key for the admin dashboard stats.
func AdminStatsKey() string {
	return "admin:stats"
}

// AdminSubtopicsKey is the cache key for the admin subtopic listing.
func AdminSubtopicsKey() string {
	return "admin:subtopics"
}
