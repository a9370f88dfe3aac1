// Package config loads uithings settings from TOML.
//
// Settings are looked up in order: an explicit path (the --config flag),
// $XDG_CONFIG_HOME/uithings/config.toml, then ~/.config/uithings/config.toml.
// A missing file is not an error; every field has a default.
//
//	[canvas]
//	width = 400
//	height = 860
//
//	[annotate]
//	offset = 8
//
//	[cache]
//	backend = "redis"   # file | redis | mongo | none
//	ttl = "168h"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
package config

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/cache"
	"github.com/matzehuels/uithings/pkg/errors"
	"github.com/matzehuels/uithings/pkg/scene"
)

const appName = "uithings"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Backends lists the accepted [CacheConfig.Backend] values.
var Backends = []string{BackendFile, BackendRedis, BackendMongo, BackendNone}

// Config is the full settings file.
type Config struct {
	Canvas   CanvasConfig   `toml:"canvas"`
	Annotate AnnotateConfig `toml:"annotate"`
	Cache    CacheConfig    `toml:"cache"`
	Server   ServerConfig   `toml:"server"`

	path string
}

type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type AnnotateConfig struct {
	Offset float64 `toml:"offset"`
}

type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"` // file backend; empty means the user cache dir
	TTL     Duration    `toml:"ttl"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Duration is a time.Duration written as a Go duration string ("90s").
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas:   CanvasConfig{Width: scene.DefaultCanvas.W, Height: scene.DefaultCanvas.H},
		Annotate: AnnotateConfig{Offset: annotate.DefaultOffset},
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     Duration{cache.TTLArtifact},
			Mongo:   MongoConfig{Database: appName, Collection: "cache"},
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  Duration{15 * time.Second},
			WriteTimeout: Duration{60 * time.Second},
		},
	}
}

// Path returns the file the config was read from, or "" for defaults.
func (c Config) Path() string { return c.path }

// SearchPaths returns the implicit config locations in lookup order.
func SearchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, appName, "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".config", appName, "config.toml")
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

// Load reads path, or the first existing search path when path is empty.
// An explicit path must exist.
func Load(path string) (Config, error) {
	if path != "" {
		return loadFile(path)
	}
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return loadFile(p)
		}
	}
	return Default(), nil
}

func loadFile(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config file %s not found", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Annotate.Offset < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "annotate.offset must be >= 0, got %v", c.Annotate.Offset)
	}
	if !slices.Contains(Backends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be one of %s, got %q",
			strings.Join(Backends, ", "), c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must be >= 0")
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	return nil
}

// Open builds the configured cache backend. fallbackDir is used by the file
// backend when Dir is empty.
func (c CacheConfig) Open(ctx context.Context, fallbackDir string) (cache.Cache, error) {
	switch c.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	case BackendMongo:
		mc, err := cache.NewMongoCache(ctx, cache.MongoConfig{
			URI:        c.Mongo.URI,
			Database:   c.Mongo.Database,
			Collection: c.Mongo.Collection,
		})
		if err != nil {
			return nil, err
		}
		return mc, nil
	case BackendFile, "":
		dir := c.Dir
		if dir == "" {
			dir = fallbackDir
		}
		if dir == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "file cache needs a directory")
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Backend)
}
