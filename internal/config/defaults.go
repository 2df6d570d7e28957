package config

import (
	_ "embed"
)

//go:embed defaults/hexchess.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when the embedded file
// cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Setup: "standard",
		},
		Layout: LayoutConfig{
			Size:    30,
			CenterX: 400,
			CenterY: 400,
		},
		View: ViewConfig{
			AutoFlip:   true,
			ShowCoords: true,
		},
		SSH: SSHConfig{
			Address:            ":2323",
			HostKey:            ".ssh/hexchess_ed25519",
			IdleTimeoutMinutes: 30,
		},
		Web: WebConfig{
			Address:            ":8080",
			SessionIdleMinutes: 60,
		},
		Storage: StorageConfig{
			DBPath: "~/.hexchess/games.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
