package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunhq/kundocs/pkg/cache"
	"github.com/kunhq/kundocs/pkg/catalog"
	errs "github.com/kunhq/kundocs/pkg/errors"
	"github.com/kunhq/kundocs/pkg/pipeline"
)

const stepsYAML = `kind: stepper
title: Deploy
steps:
  - title: Build
  - title: Ship
    detail: make release
`

func newTestServer(t *testing.T, cfg Config) (*Server, *httptest.Server) {
	t.Helper()
	s := New(cfg)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	resp, body := get(t, ts.URL+"/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var h health
	require.NoError(t, json.Unmarshal(body, &h))
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, len(catalog.IDs()), h.Diagrams)
	assert.False(t, h.LoadedAt.IsZero())
}

func TestList(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	resp, body := get(t, ts.URL+"/api/diagrams?lang=ar")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []diagramInfo
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, len(catalog.IDs()))

	byID := map[string]diagramInfo{}
	for _, d := range list {
		byID[d.ID] = d
		assert.Equal(t, SourceCatalog, d.Source)
	}
	assert.Equal(t, catalog.IDs()[0], list[0].ID, "catalog order is kept")
	assert.Contains(t, byID["phase1-flow"].Formats, "dot")
	assert.NotContains(t, byID["structure"].Formats, "dot")
	assert.Equal(t, "المرحلة 1: الإعداد الفردي", byID["phase1-flow"].Title)
}

func TestDiagramFormats(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	tests := []struct {
		path  string
		ctype string
		want  string
	}{
		{"/diagrams/phase1-flow.svg", "image/svg+xml", "<svg"},
		{"/diagrams/phase1-flow.dot", "text/vnd.graphviz; charset=utf-8", "digraph"},
		{"/diagrams/structure.txt", "text/plain; charset=utf-8", "├── "},
		{"/diagrams/building-blocks.json", "application/json", `"kind": "grid"`},
		{"/diagrams/phase1-setup.html?lang=ar", "text/html; charset=utf-8", `dir="rtl"`},
		{"/diagrams/phase1-setup.html", "text/html; charset=utf-8", `<html lang="en" dir="ltr">`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
			assert.Equal(t, tt.ctype, resp.Header.Get("Content-Type"))
			assert.Contains(t, string(body), tt.want)
		})
	}
}

func TestDiagramNodeLinkLayout(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	resp, rows := get(t, ts.URL+"/diagrams/phase1-flow.svg")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, graph := get(t, ts.URL+"/diagrams/phase1-flow.svg?layout=nodelink")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(graph))
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(graph), "<svg")
	assert.NotEqual(t, string(rows), string(graph))
}

func TestDiagramTextIsPlain(t *testing.T) {
	_, ts := newTestServer(t, Config{})
	_, body := get(t, ts.URL+"/diagrams/directory-structure.txt")
	assert.NotContains(t, string(body), "\x1b[")
}

func TestDiagramErrors(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	tests := []struct {
		path   string
		status int
		code   errs.Code
	}{
		{"/diagrams/nope.svg", http.StatusNotFound, errs.ErrCodeDiagramNotFound},
		{"/diagrams/phase1-flow.gif", http.StatusBadRequest, errs.ErrCodeInvalidFormat},
		{"/diagrams/phase1-flow.png", http.StatusBadRequest, errs.ErrCodeInvalidFormat},
		{"/diagrams/structure.dot", http.StatusBadRequest, errs.ErrCodeUnsupported},
		{"/diagrams/structure", http.StatusNotFound, errs.ErrCodeNotFound},
		{"/diagrams/structure.svg?layout=nodelink", http.StatusBadRequest, errs.ErrCodeUnsupported},
		{"/diagrams/phase1-flow.svg?layout=radial", http.StatusBadRequest, errs.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			assert.Equal(t, tt.status, resp.StatusCode)

			var e errorBody
			require.NoError(t, json.Unmarshal(body, &e))
			assert.Equal(t, tt.code, e.Code)
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestArtifactCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	runner := pipeline.NewRunner(c, cache.NewScopedKeyer(nil, "preview:"), nil)
	_, ts := newTestServer(t, Config{Runner: runner})

	resp, _ := get(t, ts.URL+"/diagrams/end-to-end-flow.svg")
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))

	resp, _ = get(t, ts.URL+"/diagrams/end-to-end-flow.svg")
	assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))

	resp, _ = get(t, ts.URL+"/diagrams/end-to-end-flow.svg?lang=ar")
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"), "lang is part of the key")
}

func TestRequestID(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	resp, _ := get(t, ts.URL+"/healthz")
	_, err := uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, id)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, id, resp.Header.Get(RequestIDHeader))

	req.Header.Set(RequestIDHeader, "not-a-uuid")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(RequestIDHeader))
}

func TestDefinitionDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deploy.yaml"), []byte(stepsYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))
	// Overrides the catalog entry with the same id.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "phase1-setup.yaml"), []byte(stepsYAML), 0o644))

	s, ts := newTestServer(t, Config{Dir: dir})

	e, ok := s.lookup("deploy")
	require.True(t, ok)
	assert.Equal(t, SourceFile, e.source)

	e, ok = s.lookup("phase1-setup")
	require.True(t, ok)
	assert.Equal(t, SourceFile, e.source)
	assert.Equal(t, "Deploy", e.doc.Title)

	resp, body := get(t, ts.URL+"/diagrams/deploy.txt")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "make release")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "release.yml"), []byte(stepsYAML), 0o644))
	n, bad := s.Reload(context.Background())
	assert.Equal(t, len(catalog.IDs())+2, n)
	assert.Len(t, bad, 1)
	_, ok = s.lookup("release")
	assert.True(t, ok)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	s := New(Config{Dir: dir, Watch: true})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, ln) }()

	// Give the watcher time to register the directory.
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "deploy.toml"), []byte(`kind = "stepper"
title = "Deploy"

[[steps]]
title = "Build"
`), 0o644))

	assert.Eventually(t, func() bool {
		_, ok := s.lookup("deploy")
		return ok
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
