// Package platform classifies the host operating system for the installer.
//
// Exactly three platform tags exist. macOS and Linux share the unix install
// strategy and differ only in their display label; Windows gets its own
// strategy. Any GOOS other than "windows" or "darwin" is treated as Linux.
package platform

import (
	"fmt"
	"strings"

	"github.com/johnolven/asis-coder/pkg/errors"
)

// Platform is the closed set of platform tags the installer knows about.
type Platform string

const (
	Windows Platform = "windows"
	MacOS   Platform = "macos"
	Linux   Platform = "linux"
)

// Strategy selects how the package gets installed.
type Strategy string

const (
	StrategyUnix    Strategy = "unix"
	StrategyWindows Strategy = "windows"
)

// Classify maps a GOOS value onto a platform tag.
func Classify(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	default:
		return Linux
	}
}

// Parse accepts a platform tag or a GOOS name, case-insensitively.
func Parse(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows", "win32":
		return Windows, nil
	case "macos", "darwin":
		return MacOS, nil
	case "linux":
		return Linux, nil
	}
	return "", errors.Newf(errors.ErrPlatformInvalid, "unknown platform %q", s)
}

// Strategy returns the install strategy for the platform.
func (p Platform) Strategy() Strategy {
	if p == Windows {
		return StrategyWindows
	}
	return StrategyUnix
}

// Label is the human readable platform name used in console output.
func (p Platform) Label() string {
	switch p {
	case Windows:
		return "Windows"
	case MacOS:
		return "macOS"
	default:
		return "Linux"
	}
}

// IsWindows returns true for the Windows tag.
func (p Platform) IsWindows() bool {
	return p == Windows
}

func (p Platform) String() string {
	return string(p)
}

// Info is the result of platform detection.
type Info struct {
	Platform Platform
	GOOS     string
	Arch     string

	// Linux only, empty when the distribution could not be read.
	Distro        string
	DistroFamily  string
	DistroVersion string
}

// Describe renders the detection result for diagnostics.
func (i *Info) Describe() string {
	if i.Distro == "" {
		return fmt.Sprintf("%s/%s", i.Platform.Label(), i.Arch)
	}
	return fmt.Sprintf("%s/%s (%s %s)", i.Platform.Label(), i.Arch, i.Distro, i.DistroVersion)
}
