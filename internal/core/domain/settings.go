package domain

import "time"

// Log formats accepted by the configuration.
const (
	LogFormatAuto   = "auto"
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// DefaultRestoreTimeout bounds a single project restore.
const DefaultRestoreTimeout = 5 * time.Minute

// Settings is the resolved tool configuration.
type Settings struct {
	// Path is the config file the settings came from, empty for defaults.
	Path string

	Restore RestoreSettings
	Log     LogSettings
}

// RestoreSettings configures the on-demand dependency restore.
type RestoreSettings struct {
	Enabled bool
	Command string
	Args    []string
	Timeout time.Duration
}

// LogSettings configures log output.
type LogSettings struct {
	Format string
}

// DefaultSettings returns the settings used when no config file exists.
// command is the platform specific restore executable.
func DefaultSettings(command string) *Settings {
	return &Settings{
		Restore: RestoreSettings{
			Enabled: true,
			Command: command,
			Args:    []string{"restore"},
			Timeout: DefaultRestoreTimeout,
		},
		Log: LogSettings{
			Format: LogFormatAuto,
		},
	}
}
