package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kunhq/kundocs/internal/config"
	"github.com/kunhq/kundocs/pkg/buildinfo"
	"github.com/kunhq/kundocs/pkg/cache"
	"github.com/kunhq/kundocs/pkg/observability"
	"github.com/kunhq/kundocs/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "kundocs"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Config is loaded before any subcommand runs.
	Config *config.Config

	cfgFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "kundocs renders the Kun documentation diagrams",
		Long: `kundocs renders structure trees, flow charts, badge grids and step lists
to terminal text, SVG, HTML, Graphviz DOT, JSON, PNG and PDF.

Diagrams come from the built-in catalog or from JSON, TOML and YAML
definition files.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default: ./kundocs.yaml)")
	pf.BoolP("verbose", "v", false, "enable verbose logging")
	pf.String("lang", config.DefaultLang, "language for diagram titles (en, ar)")
	pf.String("cache-backend", config.DefaultBackend, "artifact cache: file, redis, none")
	pf.String("cache-dir", "", "artifact cache directory")
	pf.String("redis-addr", "", "redis address for the redis cache backend")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.sourceCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig resolves the configuration for the command about to run and
// attaches the logger to its context.
func (c *CLI) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	c.Config = cfg
	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	if cfg.File != "" {
		c.Logger.Debug("loaded config", "file", cfg.File)
	}
	if c.Logger.GetLevel() <= LogDebug {
		observability.NewLogHooks(c.Logger).Register()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// conf returns the loaded configuration, or the defaults when a command
// runs without the root pre-run (as in tests).
func (c *CLI) conf() *config.Config {
	if c.Config == nil {
		cfg, err := config.Load(c.cfgFile, nil)
		if err != nil {
			cfg = &config.Config{
				Lang:  config.DefaultLang,
				Cache: config.CacheConfig{Backend: config.BackendNone},
			}
		}
		c.Config = cfg
	}
	return c.Config
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	cfg := c.conf()
	r := pipeline.NewRunner(c.newCache(ctx, noCache), nil, c.Logger)
	r.TTL = cfg.Cache.TTL
	return r
}

// newCache opens the configured backend. An unusable backend is reported
// and replaced by the null cache; rendering never depends on it.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	cfg := c.conf()
	if noCache {
		return cache.NewNullCache()
	}
	switch cfg.Cache.Backend {
	case config.BackendFile:
		fc, err := cache.NewFileCache(cfg.Cache.Dir)
		if err != nil {
			c.Logger.Warn("file cache unavailable", "dir", cfg.Cache.Dir, "err", err)
			return cache.NewNullCache()
		}
		return fc
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable", "addr", cfg.Redis.Addr, "err", err)
			return cache.NewNullCache()
		}
		return rc
	}
	return cache.NewNullCache()
}
