// Package platform reports the platform the tool runs on.
//
// Detection happens once per process; the result is immutable.
package platform

import (
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// Type identifies an operating system family.
type Type string

// Known platform types.
const (
	Windows Type = "Windows"
	Linux   Type = "Linux"
	MacOS   Type = "macOS"
	Android Type = "Android"
	IOS     Type = "iOS"
)

// Info describes the running platform.
type Info struct {
	// Type is the running platform. Unknown systems report Windows.
	Type Type

	// WindowsDesktop is true when Type is Windows.
	WindowsDesktop bool

	// DebugBuild is true when the binary was compiled with optimizations disabled.
	DebugBuild bool
}

// detectOnce must not panic: sync.OnceValue re-panics on every call.
var detectOnce = sync.OnceValue(func() Info {
	var settings []debug.BuildSetting
	if bi, ok := debug.ReadBuildInfo(); ok {
		settings = bi.Settings
	}
	return detectFrom(runtime.GOOS, settings)
})

// Detect returns the running platform.
func Detect() Info {
	return detectOnce()
}

// RestoreCommand returns the name of the dotnet executable on this platform.
func RestoreCommand() string {
	return Detect().RestoreCommand()
}

// RestoreCommand returns the name of the dotnet executable for i.
func (i Info) RestoreCommand() string {
	if i.WindowsDesktop {
		return "dotnet.exe"
	}
	return "dotnet"
}

func detectFrom(goos string, settings []debug.BuildSetting) Info {
	t := typeFor(goos)
	return Info{
		Type:           t,
		WindowsDesktop: t == Windows,
		DebugBuild:     optimizationsDisabled(settings),
	}
}

func typeFor(goos string) Type {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	case "android":
		return Android
	case "ios":
		return IOS
	default:
		return Windows
	}
}

// optimizationsDisabled reports whether -gcflags carried -N.
func optimizationsDisabled(settings []debug.BuildSetting) bool {
	for _, s := range settings {
		if s.Key != "-gcflags" {
			continue
		}
		for _, field := range strings.Fields(s.Value) {
			// Package patterns: "all=-N -l" or "-N".
			if _, flag, ok := strings.Cut(field, "="); ok {
				field = flag
			}
			if field == "-N" {
				return true
			}
		}
	}
	return false
}
