package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// LoadFromDir loads configuration for a project rooted at rootDir with the
// following priority (highest to lowest):
//  1. Environment variables (RUSTMAP_*)
//  2. Config file (.rustmap/config.yml or .rustmap/config.yaml)
//  3. Default values
func LoadFromDir(rootDir string) (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(rootDir, ".rustmap")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("RUSTMAP")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g. RUSTMAP_PARSE_INCLUDE_PRIVATE)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("parse.include_private")
	v.BindEnv("storage.cache_location")
	v.BindEnv("storage.cache_capacity")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine - defaults plus env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers the Default() values with viper so partial config
// files inherit the rest.
func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("parse.include_private", def.Parse.IncludePrivate)
	v.SetDefault("paths.code", def.Paths.Code)
	v.SetDefault("paths.ignore", def.Paths.Ignore)
	v.SetDefault("storage.cache_location", def.Storage.CacheLocation)
	v.SetDefault("storage.cache_capacity", def.Storage.CacheCapacity)
}

// CachePath resolves the on-disk outline cache location for a project.
func (c *Config) CachePath(rootDir string) string {
	if c.Storage.CacheLocation != "" {
		return c.Storage.CacheLocation
	}
	return filepath.Join(rootDir, ".rustmap", "outline.db")
}
