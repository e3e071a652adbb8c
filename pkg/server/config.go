package server

import (
	"log/slog"

	"github.com/graft-dev/graft/pkg/rules"
	"github.com/graft-dev/graft/pkg/source"
)

// Config configures the preview server.
type Config struct {
	// Host and Port form the listen address.
	Host string
	Port int

	// Attr is the marker attribute predicates key off.
	// Default: rules.DefaultAttr.
	Attr string

	// Source yields the documents to hydrate. Required.
	Source source.Source

	// Rules maps marker values to builders.
	// Default: rules.DefaultRegistry().
	Rules *rules.Registry

	// Watch lists directories whose changes trigger reload events.
	Watch []string

	// Logger receives structured logs. Default: slog.Default with a
	// component attribute.
	Logger *slog.Logger
}

// applyDefaults fills unset fields.
func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.Attr == "" {
		c.Attr = rules.DefaultAttr
	}
	if c.Rules == nil {
		c.Rules = rules.DefaultRegistry()
	}
	if c.Logger == nil {
		c.Logger = slog.Default().With("component", "server")
	}
}
