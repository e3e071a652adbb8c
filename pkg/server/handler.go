package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"

	"github.com/graft-dev/graft/pkg/dom"
	"github.com/graft-dev/graft/pkg/hydrate"
	"github.com/graft-dev/graft/pkg/reactive"
)

var tracer = otel.Tracer("github.com/graft-dev/graft/pkg/server")

// handlePage loads the requested document, runs one hydration pass
// over it and writes the transformed markup.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	if name == "" {
		name = "index.html"
	}

	ctx, span := tracer.Start(r.Context(), "server.page")
	defer span.End()
	span.SetAttributes(attribute.String("graft.document", name))

	start := time.Now()

	rc, err := s.config.Source.Open(ctx, name)
	if err != nil {
		s.metrics.passesTotal.WithLabelValues(name, "not_found").Inc()
		span.SetStatus(codes.Error, err.Error())
		s.config.Logger.Warn("document not found", "name", name, "error", err)
		http.NotFound(w, r)
		return
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		s.metrics.passesTotal.WithLabelValues(name, "error").Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "reading document", http.StatusInternalServerError)
		return
	}

	doc, err := dom.ParseDocument(bytes.NewReader(raw))
	if err != nil {
		s.metrics.passesTotal.WithLabelValues(name, "error").Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "parsing document", http.StatusInternalServerError)
		return
	}

	// Each request gets its own ownership scope. Disposal after the
	// response is rendered releases anything the builders registered.
	owner := reactive.NewOwner(nil)
	defer owner.Dispose()

	replaced := 0
	replace := s.countingReplacer(s.config.Rules.Replacer(s.hydrator, owner, s.config.Attr), &replaced)

	s.hydrator.HydrateChildren(owner, doc, replace)

	rendered, err := dom.OuterHTML(doc)
	if err != nil {
		s.metrics.passesTotal.WithLabelValues(name, "error").Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "rendering document", http.StatusInternalServerError)
		return
	}

	s.metrics.passesTotal.WithLabelValues(name, "ok").Inc()
	s.metrics.replacementsTotal.Add(float64(replaced))
	s.metrics.passDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.Int("graft.replacements", replaced))

	s.config.Logger.Info("hydrated document",
		"name", name,
		"replacements", replaced,
		"duration", time.Since(start))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(rendered))
}

// countingReplacer wraps replace so the handler can report how many
// elements a pass actually replaced.
func (s *Server) countingReplacer(replace hydrate.Replacer, count *int) hydrate.Replacer {
	return func(el *html.Node) (hydrate.Builder, bool) {
		build, ok := replace(el)
		if !ok {
			return nil, false
		}
		*count++
		return build, true
	}
}
