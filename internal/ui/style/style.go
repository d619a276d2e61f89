// Package style holds the palette and glyphs shared by log output and command
// results.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

var (
	Slate  = lipgloss.Color("#667085")
	Mist   = lipgloss.Color("#98A2B3")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"

	// Up and Down mark engine version changes in watch mode.
	Up   = "↑"
	Down = "↓"
)

// ForLevel returns the glyph prefix and color for a log level. Info records
// have no prefix.
func ForLevel(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return Cross, Red
	case level >= slog.LevelWarn:
		return Warning, Yellow
	case level < slog.LevelInfo:
		return Tilde, Mist
	default:
		return "", Slate
	}
}
