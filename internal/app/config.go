package app

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"vertexfx/internal/services/sampler"
)

// Config holds runtime wiring options for building the CLI.
type Config struct {
	Home      string       // data directory, e.g. $HOME/.vertexfx
	Remote    string       // vertexfxd base URL; empty samples in process
	LogLevel  string       // debug, info, warn or error
	CacheSize int          // sampler cache entries; 0 disables the cache
	HTTP      *http.Client // optional; defaults to http.DefaultClient
}

// ServerConfig holds the vertexfxd settings.
type ServerConfig struct {
	Addr              string
	LogLevel          string
	CacheSize         int
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

const (
	defaultCLILogLevel       = "warn"
	defaultServerLogLevel    = "info"
	defaultAddr              = ":8080"
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

// Load reads the CLI configuration from the environment. Flags override the
// returned values in the caller.
func Load() (Config, error) {
	cfg := Config{
		Home:      os.Getenv("VERTEXFX_HOME"),
		Remote:    os.Getenv("VERTEXFX_REMOTE"),
		LogLevel:  getEnv("VERTEXFX_LOG_LEVEL", defaultCLILogLevel),
		CacheSize: getInt("VERTEXFX_CACHE_SIZE", sampler.DefaultCacheSize),
	}
	if cfg.Home == "" {
		home, err := DefaultHome()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = home
	}
	if cfg.CacheSize < 0 {
		return Config{}, errors.Errorf("VERTEXFX_CACHE_SIZE must not be negative, got %d", cfg.CacheSize)
	}
	return cfg, nil
}

// LoadServer reads the vertexfxd configuration from the environment.
func LoadServer() (ServerConfig, error) {
	cfg := ServerConfig{
		Addr:              getEnv("VERTEXFXD_ADDR", defaultAddr),
		LogLevel:          getEnv("VERTEXFX_LOG_LEVEL", defaultServerLogLevel),
		CacheSize:         getInt("VERTEXFX_CACHE_SIZE", sampler.DefaultCacheSize),
		ShutdownTimeout:   getDuration("VERTEXFXD_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		ReadHeaderTimeout: getDuration("VERTEXFXD_READ_HEADER_TIMEOUT", defaultReadHeaderTimeout),
	}
	if cfg.CacheSize < 0 {
		return ServerConfig{}, errors.Errorf("VERTEXFX_CACHE_SIZE must not be negative, got %d", cfg.CacheSize)
	}
	return cfg, nil
}

// DefaultHome is $HOME/.vertexfx.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home directory")
	}
	return filepath.Join(dir, ".vertexfx"), nil
}

func getEnv(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
