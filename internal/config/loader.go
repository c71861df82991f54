package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/kunhq/kundocs/pkg/cache"
)

const envPrefix = "KUNDOCS_"

// sections are the nested config tables; env names under them map
// KUNDOCS_<SECTION>_<KEY> to "<section>.<key>".
var sections = []string{"cache", "redis", "server", "render"}

// flagKeys maps flag names to config keys. Flags missing here are not
// configuration.
var flagKeys = map[string]string{
	"lang":          "lang",
	"verbose":       "verbose",
	"cache-backend": "cache.backend",
	"cache-dir":     "cache.dir",
	"redis-addr":    "redis.addr",
	"addr":          "server.addr",
	"dir":           "server.dir",
	"watch":         "server.watch",
	"large":         "render.large",
}

func defaults() map[string]any {
	return map[string]any{
		"lang":              DefaultLang,
		"verbose":           false,
		"cache.backend":     DefaultBackend,
		"cache.dir":         cache.DefaultDir(),
		"cache.ttl":         DefaultTTL.String(),
		"redis.addr":        DefaultRedisAddr,
		"redis.db":          0,
		"redis.prefix":      cache.DefaultRedisPrefix,
		"server.addr":       DefaultServerAddr,
		"server.dir":        "",
		"server.watch":      false,
		"render.large":      false,
		"render.show_icons": true,
	}
}

// Load resolves the configuration. cfgFile may be empty, in which case
// kundocs.yaml or kundocs.yml in the working directory is used if present,
// then the per-user config file. Only flags the user actually set override
// lower layers; flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	path := findFile(cfgFile)
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			if f.Name == "no-icons" {
				v, _ := flags.GetBool("no-icons")
				return "render.show_icons", !v
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey turns KUNDOCS_RENDER_SHOW_ICONS into render.show_icons and
// KUNDOCS_LANG into lang.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, sec := range sections {
		if rest, ok := strings.CutPrefix(key, sec+"_"); ok {
			return sec + "." + rest
		}
	}
	return key
}

func findFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range FileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "kundocs", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
