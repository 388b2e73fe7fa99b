// Package httputil provides small retry and caching primitives used by
// syclop's network-facing code.
//
// # Overview
//
//   - [Retry] / [RetryWithBackoff]: automatic retry with exponential backoff,
//     used by internal/cli when dialing Redis and MongoDB so a transient
//     connection failure doesn't abort a solve outright.
//   - [Cache]: file-based JSON caching, used by the visualize command to
//     avoid rebuilding a decomposition graph's DOT/SVG render when it has
//     already been rendered for the same scenario, seed, and format.
//
// # Retry
//
// Wrap a transient failure in [RetryableError] so [Retry] knows to retry it;
// any other error returned by fn is returned immediately:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    if err := rdb.Ping(ctx).Err(); err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    return nil
//	})
//
// # Caching
//
// [Cache] stores entries as JSON files under a directory (~/.cache/syclop/
// by default), keyed by the SHA-256 of the cache key, with an optional TTL:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	var dot string
//	if hit, _ := cache.Get("corridor:1:dot", &dot); !hit {
//	    dot = render()
//	    cache.Set("corridor:1:dot", dot)
//	}
//
// Use [Cache.Namespace] to scope keys for a given consumer without deriving
// a second Cache directory.
package httputil
