package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultPort            = 8080
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMinLength       = 12
	DefaultMaxLength       = 128
)

// Duration wraps time.Duration so YAML values like "15s" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the top-level configuration for the passgate server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Denylist DenylistConfig `yaml:"denylist"`
	Policy   PolicyConfig   `yaml:"policy"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string   `yaml:"host"`
	Port            int      `yaml:"port"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// StorageConfig selects and configures the storage backend.
type StorageConfig struct {
	// Type is "memory" or "redis". Defaults to "memory".
	Type string `yaml:"type"`

	// Redis connection settings, used when Type == "redis".
	RedisURL          string `yaml:"redis_url"`
	RedisPoolSize     int    `yaml:"redis_pool_size"`
	RedisMinIdleConns int    `yaml:"redis_min_idle_conns"`
}

// DenylistConfig points at optional list files overriding the built-in
// defaults.
type DenylistConfig struct {
	// PasswordsFile holds extra common passwords, one per line.
	PasswordsFile string `yaml:"passwords_file"`

	// WalksFile holds keyboard-walk patterns, one per line.
	WalksFile string `yaml:"walks_file"`

	// Watch enables hot reload of PasswordsFile on change.
	Watch bool `yaml:"watch"`
}

// PolicyConfig holds the tunable evaluation limits.
type PolicyConfig struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the YAML config at path, applying defaults for
// absent fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = Duration(DefaultReadTimeout)
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = Duration(DefaultWriteTimeout)
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = Duration(DefaultShutdownTimeout)
	}
	if c.Storage.Type == "" {
		c.Storage.Type = "memory"
	}
	if c.Policy.MinLength == 0 {
		c.Policy.MinLength = DefaultMinLength
	}
	if c.Policy.MaxLength == 0 {
		c.Policy.MaxLength = DefaultMaxLength
	}
}
