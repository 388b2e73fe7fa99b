package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latticeplan/syclop/pkg/estimatecache"
)

// cacheCommand creates the cache management command for the Redis-backed
// region/edge estimate cache.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the decomposition-graph estimate cache",
	}

	cmd.AddCommand(c.cacheInvalidateCommand())

	return cmd
}

// cacheInvalidateCommand creates the "cache invalidate" subcommand.
func (c *CLI) cacheInvalidateCommand() *cobra.Command {
	var redisAddr string

	cmd := &cobra.Command{
		Use:   "invalidate <signature>",
		Short: "Remove a cached region/edge estimate snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCacheInvalidate(cmd.Context(), redisAddr, args[0])
		},
	}

	cmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address backing the estimate cache")

	return cmd
}

func (c *CLI) runCacheInvalidate(ctx context.Context, redisAddr, signature string) error {
	rdb, err := connectRedis(redisAddr)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	cache := estimatecache.New(rdb, 0, appName)
	if err := cache.Invalidate(ctx, signature); err != nil {
		return fmt.Errorf("invalidate %s: %w", signature, err)
	}
	printSuccess("Invalidated cached estimates for %q", signature)
	return nil
}
