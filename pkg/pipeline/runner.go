package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kunhq/kundocs/pkg/cache"
	"github.com/kunhq/kundocs/pkg/diagram"
	kio "github.com/kunhq/kundocs/pkg/io"
	"github.com/kunhq/kundocs/pkg/observability"
)

// Runner renders documents through an artifact cache.
//
// A Runner holds no per-run state, so the preview server shares one across
// request goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	// TTL is the artifact lifetime; zero means cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer uses
// [cache.DefaultKeyer] and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute validates d, then returns each requested format from cache or by
// rendering it. Cache failures are logged and never fail the run.
func (r *Runner) Execute(ctx context.Context, d diagram.Document, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, d.ID, opts.Formats)

	res, err := r.execute(ctx, d, opts)

	hooks.OnRenderComplete(ctx, d.ID, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	res.Stats.RenderTime = time.Since(start)
	opts.Logger.Info("rendered diagram",
		"id", d.ID,
		"kind", d.Kind,
		"formats", opts.Formats,
		"cached", len(res.CacheHits),
		"duration", res.Stats.RenderTime)
	return res, nil
}

func (r *Runner) execute(ctx context.Context, d diagram.Document, opts Options) (*Result, error) {
	res := &Result{
		ID:        d.ID,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		Warnings:  d.Warnings(),
		Stats:     Stats{Elements: d.Size()},
	}
	for _, w := range res.Warnings {
		opts.Logger.Warn(w, "id", d.ID)
	}

	docData, err := kio.MarshalDocument(d, kio.SyntaxJSON)
	if err != nil {
		return nil, fmt.Errorf("hash document: %w", err)
	}
	res.DocHash = cache.Hash(docData)

	hooks := observability.Cache()
	var missing []string
	for _, format := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(res.DocHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Debug("cache read failed", "format", format, "err", err)
			}
			if hit {
				hooks.OnCacheHit(ctx, format)
				res.Artifacts[format] = data
				res.CacheHits = append(res.CacheHits, format)
				continue
			}
			hooks.OnCacheMiss(ctx, format)
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return res, nil
	}

	sub := opts
	sub.Formats = missing
	rendered, err := Render(ctx, d, sub)
	if err != nil {
		return nil, err
	}
	for format, data := range rendered {
		res.Artifacts[format] = data
		key := r.Keyer.ArtifactKey(res.DocHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
			opts.Logger.Debug("cache write failed", "format", format, "err", err)
			continue
		}
		hooks.OnCacheSet(ctx, format, len(data))
	}
	return res, nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLArtifact
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
