package tui

import (
	"io"

	"github.com/Veraticus/snacker/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme           themes.Theme
	Input           io.Reader
	Output          io.Writer
	InitialUsername string
	Width           int
	Height          int
	// SkipIntro starts at the username step for users who finished the
	// intro but never chose a name.
	SkipIntro bool
	AltScreen bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Width:     80,
		Height:    24,
		AltScreen: true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithSkipIntro jumps straight to the username step.
func WithSkipIntro(skip bool) Option {
	return func(c *Config) {
		c.SkipIntro = skip
	}
}

// WithInitialUsername pre-fills the username input.
func WithInitialUsername(name string) Option {
	return func(c *Config) {
		c.InitialUsername = name
	}
}

// WithIO replaces the terminal and disables the alternate screen.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *Config) {
		c.Input = in
		c.Output = out
		c.AltScreen = false
	}
}
