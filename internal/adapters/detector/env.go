// Package detector provides environment detection for log output selection.
package detector

import (
	"os"

	"go.trai.ch/slnver/internal/core/domain"
	"golang.org/x/term"
)

// OutputMode represents how log records are rendered.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModePretty renders colored records for an interactive terminal.
	ModePretty
	// ModeLinear renders records for CI logs and redirected output.
	ModeLinear
	// ModeJSON renders one JSON object per record.
	ModeJSON
)

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stderr is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModeLinear
	}
	return ModePretty
}

// ResolveMode applies the configured log format and the --json flag to
// auto-detection. The flag wins over the configuration.
func ResolveMode(autoDetected OutputMode, format string, jsonFlag bool) OutputMode {
	if jsonFlag {
		return ModeJSON
	}

	switch format {
	case domain.LogFormatJSON:
		return ModeJSON
	case domain.LogFormatPretty:
		return ModePretty
	default:
		return autoDetected
	}
}
