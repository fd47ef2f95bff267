package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the viewer backend service
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Index   IndexConfig   `yaml:"index"`
}

// ServerConfig holds API server configuration
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StorageConfig holds document storage configuration
type StorageConfig struct {
	DataDir string `yaml:"data_dir"`
}

// IndexConfig tunes record scanning and ranking. The defaults match
// the gas volume statement template; scoring weights themselves are
// not configurable.
type IndexConfig struct {
	Marker     string `yaml:"marker"`
	MaxMatches int    `yaml:"max_matches"`
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: GetStringEnv("SERVER_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			DataDir: GetStringEnv("STORAGE_DATA_DIR", "./data"),
		},
		Index: IndexConfig{
			Marker:     GetStringEnv("INDEX_MARKER", "Name:"),
			MaxMatches: GetIntEnv("INDEX_MAX_MATCHES", 20),
		},
	}
}

// LoadFile overlays cfg with values from a YAML file. File values win
// over environment values.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
