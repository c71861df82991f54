package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kunhq/kundocs/internal/config"
	"github.com/kunhq/kundocs/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.conf()
			if cfg.Cache.Backend == config.BackendNone {
				printInfo(cmd.ErrOrStderr(), "Caching is disabled")
				return nil
			}

			store := c.newCache(cmd.Context(), false)
			defer store.Close()
			if _, ok := store.(*cache.NullCache); ok {
				return fmt.Errorf("%s cache is not reachable", cfg.Cache.Backend)
			}
			if err := cache.Clear(cmd.Context(), store); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess(cmd.ErrOrStderr(), "Cleared the %s cache", cfg.Cache.Backend)
			switch cfg.Cache.Backend {
			case config.BackendFile:
				printDetail(cmd.ErrOrStderr(), "Directory: %s", cfg.Cache.Dir)
			case config.BackendRedis:
				printDetail(cmd.ErrOrStderr(), "Redis: %s (prefix %s)", cfg.Redis.Addr, redisPrefix(cfg))
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where artifacts are cached",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.conf()
			switch cfg.Cache.Backend {
			case config.BackendFile:
				fmt.Fprintln(cmd.OutOrStdout(), cfg.Cache.Dir)
			case config.BackendRedis:
				fmt.Fprintf(cmd.OutOrStdout(), "redis://%s/%d %s\n", cfg.Redis.Addr, cfg.Redis.DB, redisPrefix(cfg))
			default:
				printKeyValue(cmd.OutOrStdout(), "backend", cfg.Cache.Backend)
			}
			return nil
		},
	}
}

func redisPrefix(cfg *config.Config) string {
	if cfg.Redis.Prefix == "" {
		return cache.DefaultRedisPrefix
	}
	return cfg.Redis.Prefix
}
