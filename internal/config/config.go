// Package config loads DrivePick settings from defaults, an optional YAML
// file and DRIVEPICK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides: DRIVEPICK_SERVER_PORT sets
// server.port.
const EnvPrefix = "DRIVEPICK"

// Settings is the typed view of a loaded configuration.
type Settings struct {
	Server    ServerSettings    `mapstructure:"server"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Selection SelectionSettings `mapstructure:"selection"`
	RateLimit RateLimitSettings `mapstructure:"ratelimit"`
	Discovery DiscoverySettings `mapstructure:"discovery"`
	Log       LogSettings       `mapstructure:"log"`
}

type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// Docs serves the Swagger UI at /swagger/.
	Docs bool `mapstructure:"docs"`
}

// Addr returns host:port for net/http.
func (s ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseSettings struct {
	Path string `mapstructure:"path"`
}

type SelectionSettings struct {
	// Manufacturers are the default fragments for source selections.
	Manufacturers []string `mapstructure:"manufacturers"`
}

type RateLimitSettings struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type DiscoverySettings struct {
	Root string `mapstructure:"root"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.docs", true)
	v.SetDefault("database.path", "drivepick.db")
	v.SetDefault("selection.manufacturers", []string{"Intel", "Samsung", "WD"})
	v.SetDefault("ratelimit.rps", 50)
	v.SetDefault("ratelimit.burst", 100)
	v.SetDefault("discovery.root", "/")
	v.SetDefault("log.level", "info")
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment. A named file that cannot be read is
// an error.
func Load(path string) (*ViperConfig, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}
	return New(v), nil
}

// ViperConfig wraps a *viper.Viper. Getters on a nil wrapper or a nil
// Viper return zero values.
type ViperConfig struct {
	v *viper.Viper
}

// New wraps v. v may be nil.
func New(v *viper.Viper) *ViperConfig {
	return &ViperConfig{v: v}
}

func (c *ViperConfig) ok() bool {
	return c != nil && c.v != nil
}

func (c *ViperConfig) GetString(key string) string {
	if !c.ok() {
		return ""
	}
	return c.v.GetString(key)
}

func (c *ViperConfig) GetInt(key string) int {
	if !c.ok() {
		return 0
	}
	return c.v.GetInt(key)
}

func (c *ViperConfig) GetBool(key string) bool {
	if !c.ok() {
		return false
	}
	return c.v.GetBool(key)
}

func (c *ViperConfig) GetDuration(key string) time.Duration {
	if !c.ok() {
		return 0
	}
	return c.v.GetDuration(key)
}

func (c *ViperConfig) GetStringSlice(key string) []string {
	if !c.ok() {
		return nil
	}
	return c.v.GetStringSlice(key)
}

func (c *ViperConfig) IsSet(key string) bool {
	if !c.ok() {
		return false
	}
	return c.v.IsSet(key)
}

// Sub returns the subtree at key. A missing key yields an empty config,
// never nil.
func (c *ViperConfig) Sub(key string) *ViperConfig {
	if !c.ok() {
		return New(nil)
	}
	sub := c.v.Sub(key)
	if sub == nil {
		return New(viper.New())
	}
	return New(sub)
}

// Unmarshal decodes the whole config into target using mapstructure tags.
func (c *ViperConfig) Unmarshal(target any) error {
	if !c.ok() {
		return errors.New("config: no backing viper instance")
	}
	return c.v.Unmarshal(target)
}

// Settings decodes the typed view.
func (c *ViperConfig) Settings() (Settings, error) {
	var s Settings
	if err := c.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}
