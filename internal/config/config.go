// Package config holds the compositor's static configuration using Viper.
//
// The values are compiled in. Viper is used to register them as defaults and
// unmarshal them into typed structs; no configuration file is ever read.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the compositor configuration
type Config struct {
	Keyboard     KeyboardConfig     `mapstructure:"keyboard"`
	Commands     CommandsConfig     `mapstructure:"commands"`
	Behaviour    BehaviourConfig    `mapstructure:"behaviour"`
	Cursor       CursorConfig       `mapstructure:"cursor"`
	Notification NotificationConfig `mapstructure:"notification"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// KeyboardConfig controls keymap compilation and key repeat
type KeyboardConfig struct {
	Layout      string `mapstructure:"layout"`       // This is the most important thing to change
	RepeatRate  int32  `mapstructure:"repeat_rate"`  // Keys per second
	RepeatDelay int32  `mapstructure:"repeat_delay"` // Milliseconds before repeat starts
}

// CommandsConfig contains the external programs bound to keys
type CommandsConfig struct {
	Terminal    string `mapstructure:"terminal"`     // alt + return
	Browser     string `mapstructure:"browser"`      // alt + b
	FileManager string `mapstructure:"file_manager"` // alt + e
	Suspend     string `mapstructure:"suspend"`      // alt + x
	Help        string `mapstructure:"help"`         // alt + h
}

// BehaviourConfig contains window management toggles
type BehaviourConfig struct {
	// Whether the client picker wraps from beginning to end or vice versa
	WrapClientPicker bool `mapstructure:"wrap_client_picker"`
	// Makes gtk windows stop rounding corners and letting you resize them
	MakeWindowsTile bool `mapstructure:"make_windows_tile"`
	// Makes other windows such as alacritty stop drawing titlebars and borders
	DisableClientSideDecorations bool `mapstructure:"disable_client_side_decorations"`
	// Step used by the keyboard move and resize bindings
	PixelsToMoveWindows int `mapstructure:"pixels_to_move_windows"`
}

// CursorConfig contains xcursor settings
type CursorConfig struct {
	Theme string `mapstructure:"theme"`
	Size  int    `mapstructure:"size"`
}

// RGBA is a colour with float components in [0, 1]
type RGBA [4]float64

// NotificationConfig contains the popup message visual settings
type NotificationConfig struct {
	// A monospace font is recommended because several menus rely on
	// characters being the same width
	Font              string `mapstructure:"font"`
	HorizontalPadding int    `mapstructure:"horizontal_padding"`
	VerticalPadding   int    `mapstructure:"vertical_padding"`
	RoundingRadius    int    `mapstructure:"rounding_radius"`
	Background        RGBA   `mapstructure:"background"`
	Foreground        RGBA   `mapstructure:"foreground"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"` // Overrides LOG_LEVEL when set
	File  string `mapstructure:"file"`  // Log destination while the terminal backend owns the screen
}

var (
	// DefaultConfig is the compiled-in configuration
	DefaultConfig = Config{
		Keyboard: KeyboardConfig{
			Layout:      "gb",
			RepeatRate:  25,
			RepeatDelay: 600,
		},
		Commands: CommandsConfig{
			Terminal:    "alacritty",
			Browser:     "qutebrowser",
			FileManager: "nautilus",
			Suspend:     "systemctl suspend",
			Help:        "xdg-open https://github.com/godalming123/tinytile/blob/0.16.x/readme.md#usage",
		},
		Behaviour: BehaviourConfig{
			WrapClientPicker:             false,
			MakeWindowsTile:              true,
			DisableClientSideDecorations: true,
			PixelsToMoveWindows:          20,
		},
		Cursor: CursorConfig{
			Theme: "",
			Size:  24,
		},
		Notification: NotificationConfig{
			Font:              "Mono 12",
			HorizontalPadding: 8,
			VerticalPadding:   3,
			RoundingRadius:    15,
			Background:        RGBA{0.156, 0.172, 0.203, 0.9},
			Foreground:        RGBA{1.0, 1.0, 1.0, 1.0},
		},
		Logging: LoggingConfig{
			Level: "",
			File:  "",
		},
	}

	// Global config instance
	cfg *Config
)

// Init registers the compiled-in values with viper and unmarshals them
func Init() error {
	viper.SetDefault("keyboard.layout", DefaultConfig.Keyboard.Layout)
	viper.SetDefault("keyboard.repeat_rate", DefaultConfig.Keyboard.RepeatRate)
	viper.SetDefault("keyboard.repeat_delay", DefaultConfig.Keyboard.RepeatDelay)

	viper.SetDefault("commands.terminal", DefaultConfig.Commands.Terminal)
	viper.SetDefault("commands.browser", DefaultConfig.Commands.Browser)
	viper.SetDefault("commands.file_manager", DefaultConfig.Commands.FileManager)
	viper.SetDefault("commands.suspend", DefaultConfig.Commands.Suspend)
	viper.SetDefault("commands.help", DefaultConfig.Commands.Help)

	viper.SetDefault("behaviour.wrap_client_picker", DefaultConfig.Behaviour.WrapClientPicker)
	viper.SetDefault("behaviour.make_windows_tile", DefaultConfig.Behaviour.MakeWindowsTile)
	viper.SetDefault("behaviour.disable_client_side_decorations", DefaultConfig.Behaviour.DisableClientSideDecorations)
	viper.SetDefault("behaviour.pixels_to_move_windows", DefaultConfig.Behaviour.PixelsToMoveWindows)

	viper.SetDefault("cursor.theme", DefaultConfig.Cursor.Theme)
	viper.SetDefault("cursor.size", DefaultConfig.Cursor.Size)

	viper.SetDefault("notification.font", DefaultConfig.Notification.Font)
	viper.SetDefault("notification.horizontal_padding", DefaultConfig.Notification.HorizontalPadding)
	viper.SetDefault("notification.vertical_padding", DefaultConfig.Notification.VerticalPadding)
	viper.SetDefault("notification.rounding_radius", DefaultConfig.Notification.RoundingRadius)
	viper.SetDefault("notification.background", DefaultConfig.Notification.Background)
	viper.SetDefault("notification.foreground", DefaultConfig.Notification.Foreground)

	viper.SetDefault("logging.level", DefaultConfig.Logging.Level)
	viper.SetDefault("logging.file", DefaultConfig.Logging.File)

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	return nil
}

// Validate rejects values the compositor cannot run with
func (c *Config) Validate() error {
	if c.Keyboard.Layout == "" {
		return fmt.Errorf("keyboard.layout must not be empty")
	}
	if c.Behaviour.PixelsToMoveWindows <= 0 {
		return fmt.Errorf("behaviour.pixels_to_move_windows must be positive, got %d", c.Behaviour.PixelsToMoveWindows)
	}
	if c.Notification.HorizontalPadding < 0 || c.Notification.VerticalPadding < 0 {
		return fmt.Errorf("notification padding must not be negative")
	}
	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}
