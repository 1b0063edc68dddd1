// Package config loads menutree settings.
//
// Sources are layered with koanf. Precedence (highest to lowest):
// flags > MENUTREE_* env vars > menutree.yaml > defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment overrides, e.g. MENUTREE_HTTP_ADDR.
const EnvPrefix = "MENUTREE_"

// Sink kinds for published exports.
const (
	SinkMemory = "memory"
	SinkFile   = "file"
	SinkRedis  = "redis"
)

// Config is the full set of settings.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	HTTP    HTTPConfig    `koanf:"http"`
	Input   InputConfig   `koanf:"input"`
	Export  ExportConfig  `koanf:"export"`
	Redis   RedisConfig   `koanf:"redis"`
	MCP     MCPConfig     `koanf:"mcp"`
	Session SessionConfig `koanf:"session"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type HTTPConfig struct {
	Addr     string `koanf:"addr"`
	Validate bool   `koanf:"validate"`
}

type InputConfig struct {
	MaxSize int `koanf:"max_size"`
}

// ExportConfig selects where published documents go.
type ExportConfig struct {
	Sink string `koanf:"sink"`
	Dir  string `koanf:"dir"`
}

type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	Prefix   string        `koanf:"prefix"`
	TTL      time.Duration `koanf:"ttl"`
}

type MCPConfig struct {
	Transport string `koanf:"transport"`
	Port      int    `koanf:"port"`
}

// SessionConfig controls idle session pruning. Zero Idle disables it.
type SessionConfig struct {
	Idle time.Duration `koanf:"idle"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"log.level":      "info",
		"log.format":     "text",
		"http.addr":      ":8080",
		"http.validate":  true,
		"input.max_size": 4096,
		"export.sink":    SinkFile,
		"export.dir":     ".menutree/exports",
		"redis.addr":     "localhost:6379",
		"redis.password": "",
		"redis.db":       0,
		"redis.prefix":   "menutree:export:",
		"redis.ttl":      "0s",
		"mcp.transport":  "stdio",
		"mcp.port":       8081,
		"session.idle":   "2h",
	}
}

// findConfigFile resolves the config file to use.
// Priority: explicit path > menutree.yaml > menutree.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"menutree.yaml", "menutree.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads configuration from defaults, file, env and flags.
// flags may be nil; only flags that were explicitly set and name a known key take part.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: MENUTREE_REDIS_ADDR -> redis.addr, MENUTREE_INPUT_MAX_SIZE -> input.max_size
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags: --redis-addr -> redis.addr. Flags without a config key (--config, --out) are skipped.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key := flagKey(f.Name)
			if !f.Changed || !k.Exists(key) {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps the first underscore to the section separator.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// flagKey maps the first dash to the section separator and the rest to underscores.
func flagKey(name string) string {
	key := strings.Replace(name, "-", ".", 1)
	return strings.ReplaceAll(key, "-", "_")
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}
	switch c.Export.Sink {
	case SinkMemory, SinkFile, SinkRedis:
	default:
		return fmt.Errorf("invalid export.sink %q: must be memory, file or redis", c.Export.Sink)
	}
	switch c.MCP.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("invalid mcp.transport %q: must be stdio or sse", c.MCP.Transport)
	}
	if c.Input.MaxSize < 0 {
		return fmt.Errorf("invalid input.max_size %d", c.Input.MaxSize)
	}
	return nil
}
