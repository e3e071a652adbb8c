package server

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	gerrors "github.com/graft-dev/graft/internal/errors"
	"github.com/graft-dev/graft/pkg/hydrate"
)

// Server serves hydrated documents over HTTP and pushes reload
// events to connected clients when watched files change.
type Server struct {
	config   Config
	hydrator *hydrate.Hydrator
	hub      *reloadHub
	metrics  *metrics

	httpServer *http.Server
	watcher    *fsnotify.Watcher
}

// New builds a Server from config. The source is required; everything
// else has defaults.
func New(config Config) (*Server, error) {
	config.applyDefaults()
	if config.Source == nil {
		return nil, gerrors.New("G201", gerrors.CategoryServer, "no document source configured")
	}

	s := &Server{
		config:   config,
		hydrator: hydrate.New(),
		hub:      newReloadHub(config.Logger),
		metrics:  serverMetrics(),
	}
	return s, nil
}

// Handler returns the server's HTTP handler. Exposed separately from
// Start so tests can drive it with httptest.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/ws", s.hub.handle)
	r.Get("/*", s.handlePage)

	return r
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Start listens until the context is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	if len(s.config.Watch) > 0 {
		if err := s.startWatcher(); err != nil {
			return err
		}
	}

	s.httpServer = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.config.Logger.Info("preview server listening", "addr", s.Addr())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown()
	case err := <-errCh:
		return gerrors.New("G202", gerrors.CategoryServer, "listener failed").Wrap(err)
	}
}

// Shutdown stops the watcher, disconnects reload clients and drains
// in-flight requests.
func (s *Server) Shutdown() error {
	if s.watcher != nil {
		s.watcher.Close()
	}
	s.hub.closeAll()

	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// startWatcher wires fsnotify events to reload broadcasts.
func (s *Server) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return gerrors.New("G203", gerrors.CategoryServer, "starting file watcher").Wrap(err)
	}
	s.watcher = watcher

	for _, dir := range s.config.Watch {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			s.watcher = nil
			return gerrors.New("G204", gerrors.CategoryServer, "watching %s", dir).Wrap(err)
		}
		s.config.Logger.Info("watching for changes", "dir", dir)
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				s.config.Logger.Debug("file changed", "path", ev.Name, "op", ev.Op.String())
				s.hub.broadcast(reloadEvent{Type: "reload", Path: filepath.Base(ev.Name)})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.config.Logger.Warn("file watcher error", "error", err)
			}
		}
	}()

	return nil
}
