package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Player.Host != "localhost" {
		t.Errorf("expected localhost, got %s", cfg.Player.Host)
	}
	if cfg.Player.Port != 23333 {
		t.Errorf("expected port 23333, got %d", cfg.Player.Port)
	}
	if cfg.Player.ConnectTimeout() != 5*time.Second {
		t.Errorf("expected 5s connect timeout, got %v", cfg.Player.ConnectTimeout())
	}
	if cfg.Player.ReconnectDelay() != 5*time.Second {
		t.Errorf("expected 5s reconnect delay, got %v", cfg.Player.ReconnectDelay())
	}
	if cfg.Player.BaseURL() != "http://localhost:23333/api/v1" {
		t.Errorf("unexpected base URL %s", cfg.Player.BaseURL())
	}
	if cfg.Player.EventsURL() != "http://localhost:23333/api/v1/events" {
		t.Errorf("unexpected events URL %s", cfg.Player.EventsURL())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Player.Port != 23333 {
		t.Errorf("expected default port, got %d", cfg.Player.Port)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[player]\nhost = \"hifi.lan\"\nport = 9999\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Player.Host != "hifi.lan" || cfg.Player.Port != 9999 {
		t.Errorf("file values not applied: %+v", cfg.Player)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Player.ReconnectDelayS != 5 {
		t.Errorf("expected default reconnect delay, got %d", cfg.Player.ReconnectDelayS)
	}
	if cfg.Bridge.Listen != ":8900" {
		t.Errorf("expected default bridge listen, got %s", cfg.Bridge.Listen)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FOXBRIDGE_PLAYER_HOST", "deck.local")
	t.Setenv("FOXBRIDGE_PLAYER_PORT", "4242")
	t.Setenv("FOXBRIDGE_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Player.Host != "deck.local" {
		t.Errorf("env host not applied, got %s", cfg.Player.Host)
	}
	if cfg.Player.Port != 4242 {
		t.Errorf("env port not applied, got %d", cfg.Player.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("env log level not applied, got %s", cfg.Log.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Bad Port", "[player]\nport = -1\n"},
		{"Bad Timeout", "[player]\nconnect_timeout_s = 0\n"},
		{"Bad Delay", "[player]\nreconnect_delay_s = -3\n"},
		{"Bad TOML", "[player\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestWriteExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteExample(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := WriteExample(path); err == nil {
		t.Error("expected error when file exists")
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("example config must load: %v", err)
	}
	if cfg.Player.Port != 23333 {
		t.Errorf("unexpected port %d", cfg.Player.Port)
	}
}
