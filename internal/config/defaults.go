package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Prefix: "snake",
		},
		Theme: ThemeConfig{
			Empty:  "240",
			Snake:  "10",
			Cherry: "9",
		},
	}
}
