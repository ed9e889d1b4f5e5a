// Package config loads the viewer host configuration from an optional file,
// an optional .env file and MULTISTREAM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Its-donkey/multistream/internal/ui/forms"
	"github.com/Its-donkey/multistream/internal/ui/layout"
	"github.com/Its-donkey/multistream/internal/ui/model"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. MULTISTREAM_GRID_COLUMNS.
	EnvPrefix = "MULTISTREAM"

	defaultName   = "multistream"
	defaultListen = "127.0.0.1:4173"
	defaultAssets = "ui"
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Listen string `mapstructure:"listen" validate:"required,hostname_port"`
	Assets string `mapstructure:"assets" validate:"required"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn warning error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json text"`
}

// GridConfig holds the initial layout.
type GridConfig struct {
	Columns int `mapstructure:"columns" validate:"min=1,max=10"`
}

// EmbedConfig controls player construction and messaging.
type EmbedConfig struct {
	Parents               []string `mapstructure:"parents" validate:"dive,required,hostname_rfc1123"`
	RestrictMessageOrigin bool     `mapstructure:"restrict_message_origin"`
}

// SecurityConfig extends the default content security policy.
type SecurityConfig struct {
	ExtraScriptSrc  []string `mapstructure:"extra_script_src"`
	ExtraFrameSrc   []string `mapstructure:"extra_frame_src"`
	ExtraConnectSrc []string `mapstructure:"extra_connect_src"`
}

// Config is the complete runtime configuration.
type Config struct {
	Site     string         `mapstructure:"site" validate:"required"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Grid     GridConfig     `mapstructure:"grid"`
	Embed    EmbedConfig    `mapstructure:"embed"`
	Security SecurityConfig `mapstructure:"security"`
	Streams  []string       `mapstructure:"streams"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Site:    defaultName,
		Server:  ServerConfig{Listen: defaultListen, Assets: defaultAssets},
		Log:     LogConfig{Level: "info", Format: "json"},
		Grid:    GridConfig{Columns: layout.DefaultColumns},
		Embed:   EmbedConfig{Parents: append([]string(nil), model.DefaultParents...)},
		Streams: append([]string(nil), model.DefaultRoster...),
	}
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error; variables already set win.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load reads the configuration. An explicit path must exist; without one a
// multistream.{yaml,json,toml} in the working directory is used if present.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName(defaultName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and that every configured stream parses.
func (c Config) Validate() error {
	var result *multierror.Error
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				result = multierror.Append(result, fmt.Errorf("config %s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
		} else {
			result = multierror.Append(result, err)
		}
	}
	for i, raw := range c.Streams {
		if _, err := forms.ParseStreamURL(raw); err != nil {
			result = multierror.Append(result, fmt.Errorf("config streams[%d]: %w", i, err))
		}
	}
	return result.ErrorOrNil()
}

func (c *Config) normalize() {
	c.Site = strings.TrimSpace(c.Site)
	c.Server.Listen = strings.TrimSpace(c.Server.Listen)
	c.Server.Assets = strings.TrimSpace(c.Server.Assets)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Embed.Parents = trimAll(c.Embed.Parents)
	c.Security.ExtraScriptSrc = trimAll(c.Security.ExtraScriptSrc)
	c.Security.ExtraFrameSrc = trimAll(c.Security.ExtraFrameSrc)
	c.Security.ExtraConnectSrc = trimAll(c.Security.ExtraConnectSrc)
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("site", d.Site)
	v.SetDefault("server.listen", d.Server.Listen)
	v.SetDefault("server.assets", d.Server.Assets)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("grid.columns", d.Grid.Columns)
	v.SetDefault("embed.parents", d.Embed.Parents)
	v.SetDefault("embed.restrict_message_origin", d.Embed.RestrictMessageOrigin)
	v.SetDefault("security.extra_script_src", []string{})
	v.SetDefault("security.extra_frame_src", []string{})
	v.SetDefault("security.extra_connect_src", []string{})
	v.SetDefault("streams", d.Streams)
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
