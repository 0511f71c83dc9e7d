// Package config provides YAML-based configuration loading for the snake
// CLI. Only presentation settings live here; the grid and the game rules
// are fixed.
package config

// Config contains all user-tunable settings.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Theme ThemeConfig `yaml:"theme"`
}

// LogConfig defines diagnostic logging written to stderr.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Prefix string `yaml:"prefix"` // Shown before every log line
}

// ThemeConfig defines the colours of the interactive (--tui) frontend.
// Values are lipgloss colours: ANSI codes ("2", "245") or hex ("#ff0000").
type ThemeConfig struct {
	Empty  string `yaml:"empty"`
	Snake  string `yaml:"snake"`
	Cherry string `yaml:"cherry"`
}
