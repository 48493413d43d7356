package config

// Config represents the complete rustmap configuration.
// It can be loaded from .rustmap/config.yml with environment variable
// overrides.
type Config struct {
	Parse   ParseConfig   `yaml:"parse" mapstructure:"parse"`
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`
}

// ParseConfig controls the extraction policy.
type ParseConfig struct {
	IncludePrivate bool `yaml:"include_private" mapstructure:"include_private"` // include items without a pub modifier
}

// PathsConfig defines which files a scan visits.
type PathsConfig struct {
	Code   []string `yaml:"code" mapstructure:"code"`     // glob patterns for Rust sources
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to skip
}

// StorageConfig defines where scan results are cached.
type StorageConfig struct {
	CacheLocation string `yaml:"cache_location" mapstructure:"cache_location"` // override default .rustmap/outline.db
	CacheCapacity int    `yaml:"cache_capacity" mapstructure:"cache_capacity"` // in-memory result cache entries
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Parse: ParseConfig{
			IncludePrivate: false,
		},
		Paths: PathsConfig{
			Code: []string{"**/*.rs"},
			Ignore: []string{
				"target/**",
				"**/target/**",
				".git/**",
			},
		},
		Storage: StorageConfig{
			CacheLocation: "",
			CacheCapacity: 256,
		},
	}
}
