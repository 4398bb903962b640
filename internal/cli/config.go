package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/kolamstudio/kolam/internal/server"
	"github.com/kolamstudio/kolam/pkg/cache"
	kerrors "github.com/kolamstudio/kolam/pkg/errors"
	"github.com/kolamstudio/kolam/pkg/pipeline"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Environment overrides, applied after the config file.
const (
	envConfig    = "KOLAM_CONFIG"
	envCache     = "KOLAM_CACHE"
	envRedisAddr = "KOLAM_REDIS_ADDR"
	envRedisDB   = "KOLAM_REDIS_DB"
	envAddr      = "KOLAM_ADDR"
)

// Config is the optional config.toml.
//
//	[cache]
//	backend = "redis"
//
//	[cache.redis]
//	addr   = "localhost:6379"
//	prefix = "kolam:"
//
//	[render]
//	grid_size = 11
//	style     = "simple"
type Config struct {
	Cache  CacheConfig    `toml:"cache"`
	Server ServerConfig   `toml:"server"`
	Render RenderDefaults `toml:"render"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"` // file (default), redis, none
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig mirrors cache.RedisConfig.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

func (r RedisConfig) redisConfig() cache.RedisConfig {
	return cache.RedisConfig{Addr: r.Addr, Password: r.Password, DB: r.DB, Prefix: r.Prefix}
}

// ServerConfig configures "kolam serve".
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// RenderDefaults replace the built-in defaults for generate, prompt and render.
type RenderDefaults struct {
	GridSize int      `toml:"grid_size"`
	Style    string   `toml:"style"`
	VizType  string   `toml:"viz"`
	Formats  []string `toml:"formats"`
	Lattice  bool     `toml:"lattice"`
	Labels   bool     `toml:"labels"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379", Prefix: appName + ":"},
		},
		Server: ServerConfig{Addr: server.DefaultAddr},
	}
}

// configPath returns the default config file location.
func configPath() (string, error) {
	if p := os.Getenv(envConfig); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads path, or the default location when path is empty, and
// applies environment overrides. A missing default file is not an error; a
// missing explicit file is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, applyEnv(&cfg)
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, applyEnv(&cfg)
		}
		return cfg, kerrors.Wrap(kerrors.ErrCodeFileNotFound, err, "config file %s not found", path)
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, kerrors.Wrap(kerrors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, kerrors.New(kerrors.ErrCodeInvalidInput, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, applyEnv(&cfg)
}

// applyEnv applies KOLAM_* overrides. Setting KOLAM_REDIS_ADDR alone
// selects the redis backend.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(envRedisAddr); v != "" {
		cfg.Cache.Redis.Addr = v
		cfg.Cache.Backend = BackendRedis
	}
	if v := os.Getenv(envRedisDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return kerrors.New(kerrors.ErrCodeInvalidInput, "%s must be an integer, got %q", envRedisDB, v)
		}
		cfg.Cache.Redis.DB = db
	}
	if v := os.Getenv(envCache); v != "" {
		cfg.Cache.Backend = strings.ToLower(v)
	}
	if v := os.Getenv(envAddr); v != "" {
		cfg.Server.Addr = v
	}
	return cfg.validate()
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return kerrors.New(kerrors.ErrCodeInvalidInput, "unknown cache backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if c.Render.GridSize != 0 {
		if err := kerrors.ValidateGridSize(c.Render.GridSize); err != nil {
			return err
		}
	}
	if c.Render.VizType != "" {
		if err := pipeline.ValidateVizType(c.Render.VizType); err != nil {
			return err
		}
	}
	return pipeline.ValidateFormats(c.Render.Formats)
}

// baseOptions returns pipeline options seeded from the render defaults.
func (c Config) baseOptions() pipeline.Options {
	opts := pipeline.Options{
		GridSize: c.Render.GridSize,
		Style:    c.Render.Style,
		VizType:  c.Render.VizType,
		Lattice:  c.Render.Lattice,
		Labels:   c.Render.Labels,
	}
	if len(c.Render.Formats) > 0 {
		opts.Formats = append([]string(nil), c.Render.Formats...)
	}
	return opts
}
