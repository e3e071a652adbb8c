package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/graft-dev/graft/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Attr != DefaultAttr || cfg.Server.Port != DefaultPort || cfg.Server.Host != DefaultHost {
			t.Errorf("defaults not applied: %+v", cfg)
		}
		if cfg.Source.Dir != "." {
			t.Errorf("source dir = %q, want .", cfg.Source.Dir)
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		dir := writeConfig(t, `{"name":"site","attr":"data-live","server":{"port":8080}}`)
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Name != "site" || cfg.Attr != "data-live" || cfg.Server.Port != 8080 {
			t.Errorf("overrides not applied: %+v", cfg)
		}
		if cfg.Server.Host != DefaultHost {
			t.Errorf("host default not applied: %q", cfg.Server.Host)
		}
	})

	t.Run("s3 source leaves dir unset", func(t *testing.T) {
		dir := writeConfig(t, `{"source":{"s3":{"bucket":"b","region":"eu-central-1"}}}`)
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Source.Dir != "" || cfg.Source.S3 == nil || cfg.Source.S3.Bucket != "b" {
			t.Errorf("source = %+v", cfg.Source)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		dir := writeConfig(t, `{"name":`)
		_, err := Load(dir)
		if err == nil {
			t.Fatal("invalid JSON accepted")
		}
		if errors.CodeOf(err) != "G102" {
			t.Errorf("code = %q, want G102", errors.CodeOf(err))
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		warnings, err := Default().Validate()
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if len(warnings) != 0 {
			t.Errorf("warnings = %v", warnings)
		}
	})

	t.Run("port out of range", func(t *testing.T) {
		cfg := Default()
		cfg.Server.Port = 70000
		if _, err := cfg.Validate(); errors.CodeOf(err) != "G103" {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("privileged port warns", func(t *testing.T) {
		cfg := Default()
		cfg.Server.Port = 80
		warnings, err := cfg.Validate()
		if err != nil || len(warnings) != 1 {
			t.Errorf("warnings = %v, err = %v", warnings, err)
		}
	})

	t.Run("conflicting sources", func(t *testing.T) {
		cfg := Default()
		cfg.Source.S3 = &S3Config{Bucket: "b"}
		if _, err := cfg.Validate(); errors.CodeOf(err) != "G104" {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		cfg := Default()
		cfg.Source.Dir = ""
		cfg.Source.S3 = &S3Config{}
		if _, err := cfg.Validate(); errors.CodeOf(err) != "G105" {
			t.Errorf("err = %v", err)
		}
	})
}
