// Package config loads frameview's TOML configuration.
//
// The file lives at $XDG_CONFIG_HOME/frameview/config.toml (falling back to
// ~/.config/frameview/config.toml) unless --config names another path. A
// missing default file is not an error; every setting has a default and
// command-line flags override whatever the file says.
//
//	[server]
//	addr = ":8080"
//	max_upload_mb = 32
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//	ttl = "24h"
//
//	[scene]
//	member_radius = 0.05
//	projection = "xz"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/rashika27/frameview/pkg/cache"
	"github.com/rashika27/frameview/pkg/errors"
	"github.com/rashika27/frameview/pkg/render/nodelink"
	"github.com/rashika27/frameview/pkg/scene"
)

const appName = "frameview"

// Defaults.
const (
	DefaultAddr        = ":8080"
	DefaultMaxUploadMB = 32
	DefaultKeyPrefix   = appName + ":"
)

// Config is the parsed configuration file.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Scene  SceneConfig  `toml:"scene"`
}

// ServerConfig configures `frameview serve`.
type ServerConfig struct {
	Addr        string `toml:"addr"`
	MaxUploadMB int64  `toml:"max_upload_mb"`
}

// MaxUploadBytes is the upload cap in bytes.
func (s ServerConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend  string        `toml:"backend"` // file, redis or none
	Dir      string        `toml:"dir"`
	RedisURL string        `toml:"redis_url"`
	Prefix   string        `toml:"prefix"`
	TTL      time.Duration `toml:"ttl"` // zero keeps the per-stage defaults
}

// SceneConfig sets primitive dimensions, colors and the topology projection.
type SceneConfig struct {
	MemberRadius   float64 `toml:"member_radius"`
	NodeSize       float64 `toml:"node_size"`
	EndpointRadius float64 `toml:"endpoint_radius"`
	MemberColor    string  `toml:"member_color"`
	NodeColor      string  `toml:"node_color"`
	EndpointColor  string  `toml:"endpoint_color"`
	Projection     string  `toml:"projection"`
}

// Options returns the composition options.
func (s SceneConfig) Options() scene.Options {
	return scene.Options{
		MemberRadius:   s.MemberRadius,
		NodeSize:       s.NodeSize,
		EndpointRadius: s.EndpointRadius,
		MemberColor:    s.MemberColor,
		NodeColor:      s.NodeColor,
		EndpointColor:  s.EndpointColor,
	}.WithDefaults()
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	opts := scene.Options{}.WithDefaults()
	return &Config{
		Server: ServerConfig{
			Addr:        DefaultAddr,
			MaxUploadMB: DefaultMaxUploadMB,
		},
		Cache: CacheConfig{
			Backend: cache.BackendFile,
			Prefix:  DefaultKeyPrefix,
		},
		Scene: SceneConfig{
			MemberRadius:   opts.MemberRadius,
			NodeSize:       opts.NodeSize,
			EndpointRadius: opts.EndpointRadius,
			MemberColor:    opts.MemberColor,
			NodeColor:      opts.NodeColor,
			EndpointColor:  opts.EndpointColor,
			Projection:     string(nodelink.ProjectXY),
		},
	}
}

// Load reads the configuration at path on top of the defaults. An empty path
// means DefaultPath, which may be absent.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case cache.BackendFile, cache.BackendRedis, cache.BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "cache.backend: %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	if c.Cache.Backend == cache.BackendRedis && c.Cache.RedisURL == "" {
		return errors.New(errors.ErrCodeInvalidInput, "cache.redis_url is required for the redis backend")
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	if c.Server.MaxUploadMB <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.max_upload_mb must be positive")
	}
	if _, err := nodelink.ParseProjection(c.Scene.Projection); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "scene.projection")
	}
	return nil
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
