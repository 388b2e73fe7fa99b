package estimatecache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/latticeplan/syclop/pkg/syclop"
)

// Cache persists decomposition-graph estimate snapshots in Redis, keyed by
// a caller-chosen decomposition signature (e.g. a hash of the
// decomposition's parameters).
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// New constructs a Cache backed by rdb. Entries expire after ttl; a zero
// ttl means entries never expire. keyPrefix namespaces keys, matching the
// teacher's ScopedKeyer convention for multi-tenant isolation.
func New(rdb *redis.Client, ttl time.Duration, keyPrefix string) *Cache {
	return &Cache{rdb: rdb, ttl: ttl, prefix: keyPrefix}
}

func (c *Cache) key(signature string) string {
	return c.prefix + "syclop:estimates:" + signature
}

// Store serializes g's current estimates under signature.
func (c *Cache) Store(ctx context.Context, signature string, g *syclop.DecompositionGraph) error {
	data, err := json.Marshal(SnapshotFromGraph(g))
	if err != nil {
		return syclop.Wrap(syclop.ErrCodeInvalidDecomposition, err, "marshal estimate snapshot")
	}
	if err := c.rdb.Set(ctx, c.key(signature), data, c.ttl).Err(); err != nil {
		return syclop.Wrap(syclop.ErrCodeInvalidDecomposition, err, "store estimate snapshot for %s", signature)
	}
	return nil
}

// Restore loads a previously stored snapshot for signature into g, and
// reports whether one was found. A cache miss is not an error; the caller
// falls back to running setup from scratch.
func (c *Cache) Restore(ctx context.Context, signature string, g *syclop.DecompositionGraph) (bool, error) {
	data, err := c.rdb.Get(ctx, c.key(signature)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, syclop.Wrap(syclop.ErrCodeInvalidDecomposition, err, "load estimate snapshot for %s", signature)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return false, syclop.Wrap(syclop.ErrCodeInvalidDecomposition, err, "unmarshal estimate snapshot for %s", signature)
	}
	ApplySnapshot(g, snap)
	return true, nil
}

// Invalidate removes any stored snapshot for signature.
func (c *Cache) Invalidate(ctx context.Context, signature string) error {
	if err := c.rdb.Del(ctx, c.key(signature)).Err(); err != nil {
		return syclop.Wrap(syclop.ErrCodeInvalidDecomposition, err, "invalidate estimate snapshot for %s", signature)
	}
	return nil
}
