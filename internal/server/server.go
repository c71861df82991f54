// Package server implements the kundocs preview server.
//
// The server renders catalog diagrams and definition files from a directory
// on demand:
//
//	GET /healthz
//	GET /api/diagrams
//	GET /diagrams/{id}.{format}    svg, html, txt, dot or json; ?lang=ar
//
// With Watch set, definition files are re-read whenever the directory
// changes. Files override catalog entries with the same id.
package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/kunhq/kundocs/pkg/catalog"
	"github.com/kunhq/kundocs/pkg/diagram"
	kio "github.com/kunhq/kundocs/pkg/io"
	"github.com/kunhq/kundocs/pkg/observability"
	"github.com/kunhq/kundocs/pkg/pipeline"
)

const (
	shutdownTimeout = 5 * time.Second
	reloadDebounce  = 100 * time.Millisecond
)

// Source tells where a served document came from.
type Source string

const (
	SourceCatalog Source = "catalog"
	SourceFile    Source = "file"
)

// Config holds configuration for the preview server.
type Config struct {
	Addr string
	// Dir holds definition files; empty serves the catalog only.
	Dir    string
	Watch  bool
	Runner *pipeline.Runner
	Logger *log.Logger
	// Large and NoIcons apply to every render.
	Large   bool
	NoIcons bool
}

// Server serves rendered diagrams over HTTP.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	logger *log.Logger

	mu     sync.RWMutex
	docs   map[string]entry
	order  []string
	loadAt time.Time
}

type entry struct {
	doc    diagram.Document
	source Source
}

// New creates a server and loads the initial document set. Definition files
// that fail to load are logged and skipped.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	runner := cfg.Runner
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	s := &Server{cfg: cfg, runner: runner, logger: logger}
	s.Reload(context.Background())
	return s
}

// Reload rebuilds the document set from the catalog and the definition
// directory. It returns the number of documents and the per-file errors.
func (s *Server) Reload(ctx context.Context) (int, []error) {
	docs := make(map[string]entry)
	var order []string
	add := func(d diagram.Document, src Source) {
		if _, ok := docs[d.ID]; !ok {
			order = append(order, d.ID)
		}
		docs[d.ID] = entry{doc: d, source: src}
	}

	for _, d := range catalog.All() {
		add(d, SourceCatalog)
	}
	var bad []error
	if s.cfg.Dir != "" {
		var files []diagram.Document
		files, bad = kio.LoadDir(s.cfg.Dir)
		for _, d := range files {
			add(d, SourceFile)
		}
	}
	for _, err := range bad {
		s.logger.Warn("skipping definition", "err", err)
	}

	s.mu.Lock()
	s.docs, s.order, s.loadAt = docs, order, time.Now()
	s.mu.Unlock()

	observability.Server().OnReload(ctx, len(order), bad)
	s.logger.Debug("loaded diagrams", "count", len(order), "errors", len(bad))
	return len(order), bad
}

func (s *Server) lookup(id string) (entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.docs[id]
	return e, ok
}

func (s *Server) entries() []entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out
}

// Serve starts the server and blocks until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: s.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("serving diagrams", "addr", "http://"+ln.Addr().String())

	if s.cfg.Watch && s.cfg.Dir != "" {
		eg.Go(func() error {
			return s.watch(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Debug("shutting down preview server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
