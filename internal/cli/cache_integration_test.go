//go:build integration

package cli

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"
)

func TestRunCacheInvalidate_Integration(t *testing.T) {
	addr := os.Getenv("SYCLOP_TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	rdb, err := connectRedis(addr)
	if err != nil {
		t.Skipf("no redis reachable at %s: %v", addr, err)
	}
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	if err := c.runCacheInvalidate(ctx, addr, "cli-test"); err != nil {
		t.Fatalf("runCacheInvalidate() error = %v", err)
	}
}
