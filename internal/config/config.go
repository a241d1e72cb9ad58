// Package config loads the lifo command settings from defaults, an optional
// config file, LIFO_* environment variables and command line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tedmax100/lifo/internal/render"
	"github.com/tedmax100/lifo/stack"
)

const EnvPrefix = "LIFO"

// Keys understood by Load.
const (
	KeyCapacity    = "capacity"
	KeyScaleFactor = "scale_factor"
	KeyMaxSize     = "max_size"
	KeyFormat      = "format"
	KeyLogLevel    = "log.level"
	KeyLogJSON     = "log.json"
)

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"capacity":     KeyCapacity,
	"scale-factor": KeyScaleFactor,
	"max-size":     KeyMaxSize,
	"format":       KeyFormat,
	"log-level":    KeyLogLevel,
	"log-json":     KeyLogJSON,
}

var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

type Config struct {
	Capacity    int
	ScaleFactor float64
	MaxSize     int
	Format      render.Format
	Log         Log
}

type Log struct {
	Level string
	JSON  bool
}

// New returns a viper instance with defaults and environment bindings set.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	v.SetDefault(KeyCapacity, stack.DefaultInitialCapacity)
	v.SetDefault(KeyScaleFactor, stack.DefaultScaleFactor)
	v.SetDefault(KeyMaxSize, stack.DefaultMaxSize)
	v.SetDefault(KeyFormat, string(render.Text))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogJSON, false)
	return v
}

// BindFlags binds every flag in fs that has a config key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// ReadFile merges the config file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		Capacity:    v.GetInt(KeyCapacity),
		ScaleFactor: v.GetFloat64(KeyScaleFactor),
		MaxSize:     v.GetInt(KeyMaxSize),
		Format:      render.Format(strings.ToLower(v.GetString(KeyFormat))),
		Log: Log{
			Level: v.GetString(KeyLogLevel),
			JSON:  v.GetBool(KeyLogJSON),
		},
	}

	if !lo.Contains(render.Formats, c.Format) {
		return Config{}, fmt.Errorf("config: unknown format %q, want one of %v", c.Format, render.Formats)
	}
	if _, err := stack.New[string](c.Options()...); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Options converts the stack settings into options for stack.New.
func (c Config) Options() []stack.Option {
	return []stack.Option{
		stack.WithInitialCapacity(c.Capacity),
		stack.WithScaleFactor(c.ScaleFactor),
		stack.WithMaxSize(c.MaxSize),
	}
}
