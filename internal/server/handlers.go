package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kunhq/kundocs/pkg/buildinfo"
	"github.com/kunhq/kundocs/pkg/diagram"
	errs "github.com/kunhq/kundocs/pkg/errors"
	"github.com/kunhq/kundocs/pkg/pipeline"
)

// contentTypes lists the formats the server renders.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatHTML: "text/html; charset=utf-8",
	pipeline.FormatText: "text/plain; charset=utf-8",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatJSON: "application/json",
}

var servedFormats = []string{
	pipeline.FormatSVG, pipeline.FormatHTML, pipeline.FormatText, pipeline.FormatDOT, pipeline.FormatJSON,
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="p-8">
{{.Body}}
</body>
</html>
`))

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestID,
		s.logRequests,
		middleware.Recoverer,
	)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/diagrams", s.handleList)
	r.Get("/diagrams/{file}", s.handleDiagram)
	return r
}

type health struct {
	Status   string    `json:"status"`
	Version  string    `json:"version"`
	Diagrams int       `json:"diagrams"`
	LoadedAt time.Time `json:"loaded_at"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	h := health{Status: "ok", Version: buildinfo.Short(), Diagrams: len(s.order), LoadedAt: s.loadAt}
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, h)
}

// diagramInfo is one entry of GET /api/diagrams.
type diagramInfo struct {
	ID       string       `json:"id"`
	Kind     diagram.Kind `json:"kind"`
	Title    string       `json:"title"`
	Source   Source       `json:"source"`
	Formats  []string     `json:"formats"`
	Warnings []string     `json:"warnings,omitempty"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	entries := s.entries()
	out := make([]diagramInfo, 0, len(entries))
	for _, e := range entries {
		info := diagramInfo{
			ID:       e.doc.ID,
			Kind:     e.doc.Kind,
			Title:    e.doc.LocalizedTitle(lang),
			Source:   e.source,
			Warnings: e.doc.Warnings(),
		}
		for _, f := range servedFormats {
			if f == pipeline.FormatJSON || e.doc.Supports(diagram.Format(f)) {
				info.Formats = append(info.Formats, f)
			}
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	dot := strings.LastIndexByte(file, '.')
	if dot <= 0 {
		writeError(w, errs.New(errs.ErrCodeNotFound, "no format in %q (want <id>.<format>)", file))
		return
	}
	id, format := file[:dot], strings.ToLower(file[dot+1:])

	ctype, ok := contentTypes[format]
	if !ok {
		writeError(w, errs.New(errs.ErrCodeInvalidFormat, "format %q is not served (want one of: %s)",
			format, strings.Join(servedFormats, ", ")))
		return
	}
	e, ok := s.lookup(id)
	if !ok {
		writeError(w, errs.New(errs.ErrCodeDiagramNotFound, "diagram %q not found", id))
		return
	}

	lang := r.URL.Query().Get("lang")
	res, err := s.runner.Execute(r.Context(), e.doc, pipeline.Options{
		Formats: []string{format},
		Large:   s.cfg.Large,
		NoIcons: s.cfg.NoIcons,
		Plain:   true,
		Lang:    lang,
		Layout:  r.URL.Query().Get("layout"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	data := res.Artifacts[format]

	if format == pipeline.FormatHTML {
		var b strings.Builder
		if lang == "" {
			lang = "en"
		}
		err := page.Execute(&b, map[string]any{
			"Lang":  lang,
			"Dir":   diagram.Direction(lang),
			"Title": e.doc.LocalizedTitle(lang),
			"Body":  template.HTML(data),
		})
		if err != nil {
			writeError(w, errs.Wrap(errs.ErrCodeInternal, err, "render page"))
			return
		}
		data = []byte(b.String())
	}

	w.Header().Set("Content-Type", ctype)
	if res.CacheHit() {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	_, _ = w.Write(data)
}

type errorBody struct {
	Error string    `json:"error"`
	Code  errs.Code `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorBody{Error: errs.UserMessage(err), Code: errs.GetCode(err)})
}

func statusFor(err error) int {
	switch {
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsClient(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
