// Package config provides YAML-based configuration loading for hexchess.
package config

import (
	"fmt"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Layout  LayoutConfig  `yaml:"layout"`
	View    ViewConfig    `yaml:"view"`
	SSH     SSHConfig     `yaml:"ssh"`
	Web     WebConfig     `yaml:"web"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig selects the starting position.
type BoardConfig struct {
	Setup     string `yaml:"setup"`      // setup ID, "standard" by default
	SetupsDir string `yaml:"setups_dir"` // extra directory of setup files
}

// LayoutConfig positions hexes for pixel renderers (the web snapshot).
type LayoutConfig struct {
	Size    float64 `yaml:"size"`
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
}

// ViewConfig controls board orientation and decorations.
type ViewConfig struct {
	AutoFlip   bool `yaml:"auto_flip"`   // flip the board after every completed move
	ShowCoords bool `yaml:"show_coords"` // print the cursor coordinate in the status line
}

// SSHConfig configures the wish server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the configured idle timeout.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// WebConfig configures the HTTP adapter.
type WebConfig struct {
	Address            string `yaml:"address"`
	SessionIdleMinutes int    `yaml:"session_idle_minutes"`
}

// SessionIdle returns how long an untouched web table is kept.
func (c WebConfig) SessionIdle() time.Duration {
	return time.Duration(c.SessionIdleMinutes) * time.Minute
}

// StorageConfig locates the game history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Board.Setup == "" {
		return fmt.Errorf("config: board.setup must not be empty")
	}
	if c.Layout.Size <= 0 {
		return fmt.Errorf("config: layout.size must be positive, got %v", c.Layout.Size)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: ssh.idle_timeout_minutes must not be negative")
	}
	if c.Web.SessionIdleMinutes <= 0 {
		return fmt.Errorf("config: web.session_idle_minutes must be positive")
	}
	return nil
}
