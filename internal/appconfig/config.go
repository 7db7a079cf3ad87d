package appconfig

import (
	"os"
	"path/filepath"

	"pkt.systems/scratchdock/schema"
)

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int            `mapstructure:"config_version" yaml:"config_version"`
	StateDir      string         `mapstructure:"state_dir" yaml:"state_dir"`
	Workspace     string         `mapstructure:"workspace" yaml:"workspace"`
	Theme         string         `mapstructure:"theme" yaml:"theme"`
	Terminal      TerminalConfig `mapstructure:"terminal" yaml:"terminal"`
	Share         ShareConfig    `mapstructure:"share" yaml:"share"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// TerminalConfig controls the terminal panel drag geometry, in screen units.
type TerminalConfig struct {
	CloseThreshold     float64 `mapstructure:"close_threshold" yaml:"close_threshold"`
	DragCloseThreshold float64 `mapstructure:"drag_close_threshold" yaml:"drag_close_threshold"`
	HandleThreshold    float64 `mapstructure:"handle_threshold" yaml:"handle_threshold"`
	OpenDragDelta      float64 `mapstructure:"open_drag_delta" yaml:"open_drag_delta"`
}

// ShareConfig configures gist sharing.
type ShareConfig struct {
	APIURL      string `mapstructure:"api_url" yaml:"api_url"`
	AccessToken string `mapstructure:"access_token" yaml:"access_token"`
}

// DefaultGistAPIURL is the endpoint gists are created against.
const DefaultGistAPIURL = "https://api.github.com/gists"

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		ConfigVersion: CurrentConfigVersion,
		StateDir:      filepath.Join(home, ".scratchdock", "state"),
		Workspace:     "default",
		Theme:         string(schema.DefaultTheme),
		Terminal: TerminalConfig{
			CloseThreshold:     schema.DefaultCloseThreshold,
			DragCloseThreshold: schema.DefaultDragCloseThreshold,
			HandleThreshold:    schema.DefaultHandleThreshold,
			OpenDragDelta:      schema.DefaultOpenDragDelta,
		},
		Share: ShareConfig{
			APIURL:      DefaultGistAPIURL,
			AccessToken: "",
		},
	}, nil
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".scratchdock", "config.yaml"), nil
}

// DockConfig maps the loaded configuration onto the session config.
func (c Config) DockConfig() schema.DockConfig {
	theme, ok := schema.NormalizeThemeName(c.Theme)
	if !ok {
		theme = schema.DefaultTheme
	}
	return schema.DockConfig{
		Theme: theme,
		Terminal: schema.TerminalConfig{
			CloseThreshold:     c.Terminal.CloseThreshold,
			DragCloseThreshold: c.Terminal.DragCloseThreshold,
			HandleThreshold:    c.Terminal.HandleThreshold,
			OpenDragDelta:      c.Terminal.OpenDragDelta,
		},
	}
}
