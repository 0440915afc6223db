// config.go
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Web         WebConfig    `yaml:"web"`
	Upload      UploadConfig `yaml:"upload"`
	PreviewRows int          `yaml:"preview_rows"`
}

// WebConfig defines the web server settings.
type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type UploadConfig struct {
	MaxFileSize int64 `yaml:"max_file_size"`
}

// Defaults returns a Config with sane defaults.
func Defaults() *Config {
	return &Config{
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Upload: UploadConfig{
			MaxFileSize: 10 << 20, // 10MB
		},
		PreviewRows: 5,
	}
}

// LoadConfig reads a YAML config file. If the file doesn't exist, defaults are used.
func LoadConfig(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Upload.MaxFileSize <= 0 {
		return nil, fmt.Errorf("upload.max_file_size must be positive, got %d", cfg.Upload.MaxFileSize)
	}
	if cfg.PreviewRows < 0 {
		return nil, fmt.Errorf("preview_rows must not be negative, got %d", cfg.PreviewRows)
	}
	return cfg, nil
}

// Addr is the listen address for the web server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Web.Host, c.Web.Port)
}
