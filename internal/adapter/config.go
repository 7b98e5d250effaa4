package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Store   StoreConfig   `mapstructure:"store"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds movie catalog API configuration
type CatalogConfig struct {
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds catalog response cache configuration
type CacheConfig struct {
	SearchSize int           `mapstructure:"search_size"` // Max cached queries
	SearchTTL  time.Duration `mapstructure:"search_ttl"`
	DetailTTL  time.Duration `mapstructure:"detail_ttl"`
}

// StoreConfig holds watch-list persistence configuration
type StoreConfig struct {
	Path string `mapstructure:"path"` // Empty = memory only
	Key  string `mapstructure:"key"`  // Slot name
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultTitle string `mapstructure:"default_title"`
	MinQuery     int    `mapstructure:"min_query"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			URL:     "http://www.omdbapi.com/",
			Timeout: 15 * time.Second,
		},
		Cache: CacheConfig{
			SearchSize: 128,
			SearchTTL:  10 * time.Minute,
			DetailTTL:  30 * time.Minute,
		},
		Store: StoreConfig{
			Path: filepath.Join(defaultDataPath(), "popcorn.db"),
			Key:  "watched",
		},
		UI: UIConfig{
			DefaultTitle: "usePopcorn",
			MinQuery:     3,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "popcorn.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "popcorn")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "popcorn")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "popcorn")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "popcorn")
	}
}

var envKeyReplacer = strings.NewReplacer(".", "_")

// LoadConfig loads configuration from file and environment.
// An explicit configFile overrides the search path.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides (POPCORN_CATALOG_API_KEY, ...)
	v.SetEnvPrefix("POPCORN")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	bindEnvKeys(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	storePath, err := expandHome(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	cfg.Store.Path = storePath

	return cfg, nil
}

// bindEnvKeys registers every config key so AutomaticEnv applies to Unmarshal
// even when the key is absent from the config file.
func bindEnvKeys(v *viper.Viper) {
	for _, key := range []string{
		"catalog.url", "catalog.api_key", "catalog.timeout",
		"cache.search_size", "cache.search_ttl", "cache.detail_ttl",
		"store.path", "store.key",
		"ui.default_title", "ui.min_query",
		"logging.file", "logging.level",
	} {
		_ = v.BindEnv(key)
	}
}

// Validate reports configuration that would prevent the app from working
func (c *Config) Validate() error {
	if c.Catalog.APIKey == "" {
		return errors.New("catalog api key is not set (catalog.api_key or POPCORN_CATALOG_API_KEY)")
	}
	if c.Catalog.URL == "" {
		return errors.New("catalog url is not set")
	}
	if c.Store.Key == "" {
		return errors.New("store key must not be empty")
	}
	if c.UI.MinQuery < 1 {
		return fmt.Errorf("ui.min_query must be at least 1, got %d", c.UI.MinQuery)
	}
	return nil
}
