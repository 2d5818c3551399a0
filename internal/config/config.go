// Package config loads relay configuration from TOML files and the
// environment.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// PlaceholderToken is sent upstream when no credential is configured.
// Upstream rejects it; the process warns about it at startup.
const PlaceholderToken = "YOUR-TOKEN"

// Config is the full relay configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	GitHub GitHubConfig `toml:"github"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// GitHubConfig controls outbound authentication. Token auth is the
// default; setting the three App fields switches to GitHub App auth.
type GitHubConfig struct {
	Token          string `toml:"token"`
	BaseURL        string `toml:"base_url"`
	AppID          int64  `toml:"app_id"`
	InstallationID int64  `toml:"installation_id"`
	PrivateKeyPath string `toml:"private_key_path"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":8000",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// UsesAppAuth reports whether GitHub App credentials are configured.
func (c GitHubConfig) UsesAppAuth() bool {
	return c.AppID != 0 || c.InstallationID != 0 || c.PrivateKeyPath != ""
}

// Validate checks the config for contradictions.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	gh := c.GitHub
	if gh.UsesAppAuth() {
		if gh.AppID == 0 || gh.InstallationID == 0 || gh.PrivateKeyPath == "" {
			return errors.New("github app auth requires app_id, installation_id, and private_key_path together")
		}
	}

	return nil
}
