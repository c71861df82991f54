package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug log lines.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

// Register installs h for all hook categories.
func (h *LogHooks) Register() {
	SetRenderHooks(h)
	SetCacheHooks(h)
	SetServerHooks(h)
}

func (h *LogHooks) OnRenderStart(_ context.Context, id string, formats []string) {
	h.logger.Debug("render start", "diagram", id, "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, id string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "diagram", id, "formats", formats, "duration", d, "err", err)
		return
	}
	h.logger.Debug("render done", "diagram", id, "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, format string) {
	h.logger.Debug("cache hit", "format", format)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, format string) {
	h.logger.Debug("cache miss", "format", format)
}

func (h *LogHooks) OnCacheSet(_ context.Context, format string, size int) {
	h.logger.Debug("cache set", "format", format, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}

func (h *LogHooks) OnReload(_ context.Context, n int, errs []error) {
	h.logger.Debug("reloaded definitions", "diagrams", n, "errors", len(errs))
}

var (
	_ RenderHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ ServerHooks = (*LogHooks)(nil)
)
