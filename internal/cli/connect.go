package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/latticeplan/syclop/pkg/httputil"
	"github.com/latticeplan/syclop/pkg/syclop"
	"github.com/latticeplan/syclop/pkg/syclopviz"
)

// connectRedis dials addr and pings it, retrying transient failures a
// couple of times before failing fast (rather than letting a misconfigured
// cache silently no-op through the rest of a run).
func connectRedis(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := httputil.RetryWithBackoff(ctx, func() error {
		if err := rdb.Ping(ctx).Err(); err != nil {
			return &httputil.RetryableError{Err: err}
		}
		return nil
	})
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// connectMongoCollection dials uri and returns the "runs" collection in the
// "syclop" database, retrying transient connection failures.
func connectMongoCollection(ctx context.Context, uri string) (*mongo.Collection, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client *mongo.Client
	err := httputil.RetryWithBackoff(connectCtx, func() error {
		c, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		if err := c.Ping(connectCtx, nil); err != nil {
			return &httputil.RetryableError{Err: err}
		}
		client = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect mongo at %s: %w", uri, err)
	}
	return client.Database(appName).Collection("runs"), nil
}

// writeDotFile renders g and lead as DOT and writes the result to path.
func writeDotFile(g *syclop.DecompositionGraph, lead syclop.Lead, path string) error {
	dot := syclopviz.ToDOT(g, lead, nil, syclopviz.Options{ShowWeights: true})
	if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("write dot file %s: %w", path, err)
	}
	return nil
}
