// Package config loads the daemon configuration from a TOML file with
// FOXBRIDGE_* environment overrides.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config is the application configuration
type Config struct {
	Player PlayerConfig `toml:"player"`
	Bridge BridgeConfig `toml:"bridge"`
	Log    LogConfig    `toml:"log"`
}

// PlayerConfig locates the go-musicfox HTTP API
type PlayerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ConnectTimeoutS int    `toml:"connect_timeout_s"`
	ReconnectDelayS int    `toml:"reconnect_delay_s"`
}

// BridgeConfig configures the downstream fan-out server
type BridgeConfig struct {
	Listen string `toml:"listen"`
}

// LogConfig configures logging
type LogConfig struct {
	Level string `toml:"level"`
}

// BaseURL returns the API root, e.g. "http://localhost:23333/api/v1"
func (p PlayerConfig) BaseURL() string {
	return fmt.Sprintf("http://%s:%d/api/v1", p.Host, p.Port)
}

// EventsURL returns the SSE endpoint of the player
func (p PlayerConfig) EventsURL() string {
	return p.BaseURL() + "/events"
}

// ConnectTimeout returns the connect timeout as a duration
func (p PlayerConfig) ConnectTimeout() time.Duration {
	return time.Duration(p.ConnectTimeoutS) * time.Second
}

// ReconnectDelay returns the retry delay as a duration
func (p PlayerConfig) ReconnectDelay() time.Duration {
	return time.Duration(p.ReconnectDelayS) * time.Second
}

// Default returns a Config built from the embedded example file
func Default() *Config {
	var cfg Config
	if err := toml.Unmarshal(exampleConf, &cfg); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &cfg
}

// Load reads a TOML configuration file and applies environment overrides.
// A missing file is not an error; defaults are used instead, so the daemon
// runs with zero setup against a local player.
func Load(path string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyEnv(cfg)

	if cfg.Player.Port <= 0 || cfg.Player.Port > 65535 {
		return nil, fmt.Errorf("invalid player port %d", cfg.Player.Port)
	}
	if cfg.Player.ConnectTimeoutS <= 0 {
		return nil, fmt.Errorf("invalid connect timeout %ds", cfg.Player.ConnectTimeoutS)
	}
	if cfg.Player.ReconnectDelayS <= 0 {
		return nil, fmt.Errorf("invalid reconnect delay %ds", cfg.Player.ReconnectDelayS)
	}
	return cfg, nil
}

// WriteExample creates a config file at path from the embedded example
func WriteExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if host := os.Getenv("FOXBRIDGE_PLAYER_HOST"); host != "" {
		cfg.Player.Host = host
	}
	if port := os.Getenv("FOXBRIDGE_PLAYER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Player.Port = p
		}
	}
	if listen := os.Getenv("FOXBRIDGE_BRIDGE_LISTEN"); listen != "" {
		cfg.Bridge.Listen = listen
	}
	if level := os.Getenv("FOXBRIDGE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
}
