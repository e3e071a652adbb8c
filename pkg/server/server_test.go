package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/graft-dev/graft/pkg/hydrate"
	"github.com/graft-dev/graft/pkg/rules"
	"github.com/graft-dev/graft/pkg/source"
	"github.com/graft-dev/graft/pkg/vdom"
)

func writeDoc(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func newTestServer(t *testing.T, dir string, reg *rules.Registry) *Server {
	t.Helper()
	s, err := New(Config{
		Source: source.NewDir(dir),
		Rules:  reg,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	body, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatalf("reading response: %v", err)
	}
	return rec.Code, string(body)
}

func TestServerPages(t *testing.T) {
	t.Run("hydrates marked elements", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, dir, "page.html",
			`<html><body><div data-graft><p>hello</p></div></body></html>`)
		s := newTestServer(t, dir, nil)

		code, body := get(t, s.Handler(), "/page.html")
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if !strings.Contains(body, `<div class="graft-replaced"><p>hello</p></div>`) {
			t.Errorf("body missing wrapped content:\n%s", body)
		}
		if strings.Contains(body, "data-graft") {
			t.Errorf("marked element survived hydration:\n%s", body)
		}
	})

	t.Run("root path serves index.html", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, dir, "index.html",
			`<html><body><span data-graft>x</span></body></html>`)
		s := newTestServer(t, dir, nil)

		code, body := get(t, s.Handler(), "/")
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if !strings.Contains(body, `class="graft-replaced"`) {
			t.Errorf("index not hydrated:\n%s", body)
		}
	})

	t.Run("missing document is 404", func(t *testing.T) {
		s := newTestServer(t, t.TempDir(), nil)

		code, _ := get(t, s.Handler(), "/nope.html")
		if code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", code)
		}
	})

	t.Run("custom rule dispatches by marker value", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, dir, "page.html",
			`<html><body><div data-graft="shout">quiet</div></body></html>`)

		reg := rules.NewRegistry()
		reg.Register("shout", func(ctx *rules.BuildContext, orig *hydrate.OriginalElement) *vdom.VNode {
			return vdom.B(vdom.Text("LOUD"))
		})
		s := newTestServer(t, dir, reg)

		code, body := get(t, s.Handler(), "/page.html")
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if !strings.Contains(body, "<b>LOUD</b>") {
			t.Errorf("custom builder output missing:\n%s", body)
		}
		if strings.Contains(body, "quiet") {
			t.Errorf("original content survived:\n%s", body)
		}
	})

	t.Run("unmarked document passes through", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, dir, "plain.html",
			`<html><head><title>t</title></head><body><p>as is</p></body></html>`)
		s := newTestServer(t, dir, nil)

		code, body := get(t, s.Handler(), "/plain.html")
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if !strings.Contains(body, "<p>as is</p>") {
			t.Errorf("content altered:\n%s", body)
		}
	})
}

func TestServerMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, t.TempDir(), nil)

	code, body := get(t, s.Handler(), "/metrics")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if !strings.Contains(body, "graft_") {
		t.Errorf("metrics output missing graft namespace:\n%.200s", body)
	}
}

func TestServerRequiresSource(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("New accepted a config without a source")
	}
}
