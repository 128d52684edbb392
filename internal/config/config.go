// Package config loads server configuration from environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Transport TransportConfig
	Logging   LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host  string `envconfig:"HOST" default:"0.0.0.0"`
	Port  string `envconfig:"PORT" default:"8080"`
	Token string `envconfig:"MCP_TOKEN"`
}

// TransportConfig selects how tool calls reach the server. "auto" picks
// stdio when stdin is a pipe (the MCP client case) and HTTP otherwise.
type TransportConfig struct {
	Mode string `envconfig:"TRANSPORT" default:"auto"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in defaults, used when the environment cannot be
// processed.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Host: "0.0.0.0", Port: "8080"},
		Transport: TransportConfig{Mode: "auto"},
		Logging:   LogConfig{Level: "info", Development: false},
	}
}
