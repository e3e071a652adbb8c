// Package config loads and validates graft.json, the project configuration
// for Graft's CLI and preview server.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/graft-dev/graft/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "graft.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultAttr is the default marker attribute.
	DefaultAttr = "data-graft"
)

// Config represents the complete graft.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Attr is the marker attribute replacement predicates key off.
	Attr string `json:"attr,omitempty"`

	// Server configures the preview server.
	Server ServerConfig `json:"server,omitempty"`

	// Source configures where documents are read from.
	Source SourceConfig `json:"source,omitempty"`

	// Watch lists directories whose changes trigger reload events.
	Watch []string `json:"watch,omitempty"`
}

// ServerConfig configures the preview server endpoint.
type ServerConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`
}

// SourceConfig selects the document source. Dir and S3 are mutually
// exclusive; Dir wins when both are empty-checked equal.
type SourceConfig struct {
	// Dir is a local directory of documents.
	Dir string `json:"dir,omitempty"`

	// S3 reads documents from object storage.
	S3 *S3Config `json:"s3,omitempty"`
}

// S3Config configures an S3 document source.
type S3Config struct {
	Bucket string `json:"bucket"`
	Prefix string `json:"prefix,omitempty"`
	Region string `json:"region,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads graft.json from dir, falling back to defaults if the file does
// not exist. Explicit values override defaults field by field.
func Load(dir string) (*Config, error) {
	cfg := &Config{}

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, errors.New("G101", errors.CategoryConfig, "cannot read %s", path).Wrap(err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("G102", errors.CategoryConfig, "invalid JSON in %s", path).
			WithHint("check for trailing commas or unquoted keys").
			Wrap(err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills fields the file left empty.
func (c *Config) applyDefaults() {
	if c.Attr == "" {
		c.Attr = DefaultAttr
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Source.Dir == "" && c.Source.S3 == nil {
		c.Source.Dir = "."
	}
}

// Validate checks the configuration, returning warnings for suspicious but
// workable values and an error for unusable ones.
func (c *Config) Validate() ([]string, error) {
	var warnings []string

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return warnings, errors.New("G103", errors.CategoryConfig, "server port %d out of range", c.Server.Port).
			WithHint("use a port between 1 and 65535")
	}
	if c.Server.Port > 0 && c.Server.Port < 1024 {
		warnings = append(warnings, "server port below 1024 usually requires elevated privileges")
	}

	if c.Source.Dir != "" && c.Source.S3 != nil {
		return warnings, errors.New("G104", errors.CategoryConfig, "both dir and s3 sources configured").
			WithHint("set exactly one of source.dir or source.s3")
	}
	if c.Source.S3 != nil && c.Source.S3.Bucket == "" {
		return warnings, errors.New("G105", errors.CategoryConfig, "s3 source needs a bucket")
	}

	return warnings, nil
}
