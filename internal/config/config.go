package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Paths    PathsConfig  `mapstructure:"paths"`
	Gag      GagConfig    `mapstructure:"gag"`
	Server   ServerConfig `mapstructure:"server"`
}

type PathsConfig struct {
	// DictionaryPath points at a CMU-format pronunciation table. Empty
	// selects the embedded table.
	DictionaryPath string `mapstructure:"dictionary_path"`
}

type GagConfig struct {
	Style    string  `mapstructure:"style"`
	Severity float64 `mapstructure:"severity"`
	// Seed makes randomized styles reproducible. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	Workers         int    `mapstructure:"workers"`
	MaxTextBytes    int    `mapstructure:"max_text_bytes"`
	RequestTimeout  int    `mapstructure:"request_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
	CacheSize       int    `mapstructure:"cache_size"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":          "log_level",
	"dictionary":         "paths.dictionary_path",
	"style":              "gag.style",
	"severity":           "gag.severity",
	"seed":               "gag.seed",
	"server-listen-addr": "server.listen_addr",
	"workers":            "server.workers",
	"max-text-bytes":     "server.max_text_bytes",
	"request-timeout":    "server.request_timeout",
	"shutdown-timeout":   "server.shutdown_timeout",
	"cache-size":         "server.cache_size",
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Paths: PathsConfig{
			DictionaryPath: "",
		},
		Gag: GagConfig{
			Style:    DefaultStyle,
			Severity: 1.0,
			Seed:     0,
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			Workers:         4,
			MaxTextBytes:    4096,
			RequestTimeout:  10,
			ShutdownTimeout: 30,
			CacheSize:       4096,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("dictionary", defaults.Paths.DictionaryPath, "Path to a CMU-format pronunciation table (empty uses the built-in table)")
	fs.String("style", defaults.Gag.Style, "Gag style")
	fs.Float64("severity", defaults.Gag.Severity, "Fraction of words to transform, 0 to 1")
	fs.Uint64("seed", defaults.Gag.Seed, "Random seed for randomized styles (0 picks one)")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("workers", defaults.Server.Workers, "Max concurrent requests processed by the HTTP server")
	fs.Int("max-text-bytes", defaults.Server.MaxTextBytes, "Max request text size in bytes")
	fs.Int("request-timeout", defaults.Server.RequestTimeout, "Per-request timeout in seconds")
	fs.Int("shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown timeout in seconds")
	fs.Int("cache-size", defaults.Server.CacheSize, "Processed-text cache entries (0 disables)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("GAGSPEECH")
	replacer := strings.NewReplacer("-", "_", ".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("gagspeech")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	style, err := NormalizeStyle(cfg.Gag.Style)
	if err != nil {
		return Config{}, err
	}
	cfg.Gag.Style = style

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Gag.Severity < 0 || c.Gag.Severity > 1:
		return fmt.Errorf("gag.severity must be between 0 and 1, got %v", c.Gag.Severity)
	case c.Server.Workers < 1:
		return fmt.Errorf("server.workers must be at least 1, got %d", c.Server.Workers)
	case c.Server.MaxTextBytes < 1:
		return fmt.Errorf("server.max_text_bytes must be positive, got %d", c.Server.MaxTextBytes)
	case c.Server.RequestTimeout < 0:
		return fmt.Errorf("server.request_timeout must not be negative, got %d", c.Server.RequestTimeout)
	case c.Server.ShutdownTimeout < 0:
		return fmt.Errorf("server.shutdown_timeout must not be negative, got %d", c.Server.ShutdownTimeout)
	case c.Server.CacheSize < 0:
		return fmt.Errorf("server.cache_size must not be negative, got %d", c.Server.CacheSize)
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("paths.dictionary_path", c.Paths.DictionaryPath)
	v.SetDefault("gag.style", c.Gag.Style)
	v.SetDefault("gag.severity", c.Gag.Severity)
	v.SetDefault("gag.seed", c.Gag.Seed)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.workers", c.Server.Workers)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.request_timeout", c.Server.RequestTimeout)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	v.SetDefault("server.cache_size", c.Server.CacheSize)
}

// bindFlags binds every registered config flag to its nested key so that
// flags, env vars and config files all address the same setting.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
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
