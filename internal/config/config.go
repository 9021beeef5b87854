// Package config loads process settings from a YAML file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreNone   = "none"
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreFile   = "file"
)

// Config holds every tunable of the enfa binary.
type Config struct {
	LogLevel string      `yaml:"log_level"`
	HTTPAddr string      `yaml:"http_addr"`
	Store    string      `yaml:"store"`
	Workers  int         `yaml:"workers"`
	FileDir  string      `yaml:"file_dir"`
	Redis    RedisConfig `yaml:"redis"`

	// MaxLineLength caps one interactive answer, in characters.
	MaxLineLength int `yaml:"max_line_length"`
}

// RedisConfig configures the redis conversion store.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:      "info",
		HTTPAddr:      ":8080",
		Store:         StoreMemory,
		Workers:       1,
		FileDir:       ".enfa/conversions",
		MaxLineLength: 4096,
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
	}
}

// Load reads path (optional) over the defaults, then applies ENFA_* environment variables.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = n
		return nil
	}

	str("ENFA_LOG_LEVEL", &c.LogLevel)
	str("ENFA_HTTP_ADDR", &c.HTTPAddr)
	str("ENFA_STORE", &c.Store)
	str("ENFA_FILE_DIR", &c.FileDir)
	str("ENFA_REDIS_ADDR", &c.Redis.Addr)
	str("ENFA_REDIS_PASSWORD", &c.Redis.Password)
	str("ENFA_REDIS_PREFIX", &c.Redis.Prefix)
	if err := num("ENFA_REDIS_DB", &c.Redis.DB); err != nil {
		return err
	}
	if err := num("ENFA_WORKERS", &c.Workers); err != nil {
		return err
	}
	if err := num("ENFA_MAX_LINE_LENGTH", &c.MaxLineLength); err != nil {
		return err
	}
	if v, ok := lookup("ENFA_REDIS_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid ENFA_REDIS_TTL: %w", err)
		}
		c.Redis.TTL = d
	}
	return nil
}

// Validate rejects settings that cannot be acted on.
func (c Config) Validate() error {
	switch c.Store {
	case StoreNone, StoreMemory, StoreRedis:
	case StoreFile:
		if c.FileDir == "" {
			return errors.New("file store requires file_dir")
		}
	default:
		return fmt.Errorf("unknown store %q (want %s, %s, %s or %s)", c.Store, StoreNone, StoreMemory, StoreFile, StoreRedis)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.MaxLineLength <= 0 {
		return fmt.Errorf("max_line_length must be positive, got %d", c.MaxLineLength)
	}
	if c.Redis.TTL < 0 {
		return fmt.Errorf("redis ttl must not be negative, got %s", c.Redis.TTL)
	}
	return nil
}
