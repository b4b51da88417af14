package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigName is the file name, without extension, looked up in the home dir.
const ConfigName = "config"

// EnvPrefix prefixes environment overrides, e.g. CALCKIT_HISTORY_LIMIT.
const EnvPrefix = "CALCKIT"

// MemoryPath as history.path keeps history in process memory.
const MemoryPath = ":memory:"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string        `mapstructure:"-"` // config directory, e.g. $HOME/.calckit
	Listen  string        `mapstructure:"listen"`
	BaseURL string        `mapstructure:"base_url"`
	Remote  string        `mapstructure:"remote"` // calcweb URL; empty runs locally
	History HistoryConfig `mapstructure:"history"`
	Web     WebConfig     `mapstructure:"web"`
	Log     LogConfig     `mapstructure:"log"`

	HTTP *http.Client `mapstructure:"-"` // optional; defaults to http.DefaultClient
}

type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Limit   int    `mapstructure:"limit"`
}

type WebConfig struct {
	Pretty   bool `mapstructure:"pretty"`
	Compress bool `mapstructure:"compress"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultHome is ~/.calckit, or .calckit in the working directory when the
// user home cannot be resolved.
func DefaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".calckit"
	}
	return filepath.Join(dir, ".calckit")
}

func setDefaults(v *viper.Viper, home string) {
	v.SetDefault("listen", ":8080")
	v.SetDefault("base_url", "")
	v.SetDefault("remote", "")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(home, "history.db"))
	v.SetDefault("history.limit", 50)
	v.SetDefault("web.pretty", false)
	v.SetDefault("web.compress", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadConfig reads config.yaml from home, creating home and writing the
// defaults on first run. file, when set, replaces home/config.yaml.
// Environment variables prefixed CALCKIT_ override the file.
func LoadConfig(home, file string) (Config, error) {
	if home == "" {
		home = DefaultHome()
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return Config{}, fmt.Errorf("creating config dir %s: %w", home, err)
	}

	v := viper.New()
	setDefaults(v, home)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			if err := v.SafeWriteConfigAs(file); err != nil {
				return Config{}, fmt.Errorf("writing config file : %w", err)
			}
		}
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file : %w", err)
		}
		// First run.
		if err := v.SafeWriteConfig(); err != nil {
			return Config{}, fmt.Errorf("writing config file : %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config to struct : %w", err)
	}
	cfg.Home = home
	if cfg.History.Path != MemoryPath && !filepath.IsAbs(cfg.History.Path) {
		cfg.History.Path = filepath.Join(home, cfg.History.Path)
	}
	return cfg, nil
}
