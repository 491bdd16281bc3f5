package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/rashika27/frameview/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = "127.0.0.1:9000"

[cache]
backend = "redis"
redis_url = "redis://localhost:6379/1"
ttl = "2h"

[scene]
member_radius = 0.2
projection = "xz"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Server.Addr = "127.0.0.1:9000"
	want.Cache.Backend = "redis"
	want.Cache.RedisURL = "redis://localhost:6379/1"
	want.Cache.TTL = 2 * time.Hour
	want.Scene.MemberRadius = 0.2
	want.Scene.Projection = "xz"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("missing default file should give defaults (-want +got):\n%s", diff)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("an explicit missing file should fail")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[server\naddr = 1"},
		{"unknown key", "[server]\nport = 80"},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"redis without url", "[cache]\nbackend = \"redis\""},
		{"bad projection", "[scene]\nprojection = \"zx\""},
		{"zero upload cap", "[server]\nmax_upload_mb = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Load() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "frameview", "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestSceneOptions(t *testing.T) {
	s := Default().Scene
	s.MemberRadius = 0
	if got := s.Options().MemberRadius; got != 0.05 {
		t.Errorf("zero radius should take the default, got %v", got)
	}
}

func TestMaxUploadBytes(t *testing.T) {
	if got := (ServerConfig{MaxUploadMB: 2}).MaxUploadBytes(); got != 2<<20 {
		t.Errorf("MaxUploadBytes() = %d", got)
	}
}
