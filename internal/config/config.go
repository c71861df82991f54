// Package config loads kundocs settings from defaults, a YAML file,
// KUNDOCS_* environment variables and command-line flags, in that order of
// increasing precedence.
package config

import "time"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Defaults.
const (
	DefaultLang       = "en"
	DefaultBackend    = BackendFile
	DefaultTTL        = 7 * 24 * time.Hour
	DefaultRedisAddr  = "localhost:6379"
	DefaultServerAddr = "127.0.0.1:7070"
)

// FileNames are the config file names looked up in the working directory.
var FileNames = []string{"kundocs.yaml", "kundocs.yml"}

// Config is the resolved configuration.
type Config struct {
	// Lang selects localized diagram titles ("en", "ar", ...).
	Lang    string       `koanf:"lang"`
	Verbose bool         `koanf:"verbose"`
	Cache   CacheConfig  `koanf:"cache"`
	Redis   RedisConfig  `koanf:"redis"`
	Server  ServerConfig `koanf:"server"`
	Render  RenderConfig `koanf:"render"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

type CacheConfig struct {
	Backend string        `koanf:"backend"`
	Dir     string        `koanf:"dir"`
	TTL     time.Duration `koanf:"ttl"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	Prefix   string `koanf:"prefix"`
}

type ServerConfig struct {
	Addr string `koanf:"addr"`
	// Dir holds definition files served next to the catalog.
	Dir   string `koanf:"dir"`
	Watch bool   `koanf:"watch"`
}

type RenderConfig struct {
	Large     bool `koanf:"large"`
	ShowIcons bool `koanf:"show_icons"`
}
