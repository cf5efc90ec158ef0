package platform

import (
	"context"
	"runtime"
	"strings"

	"github.com/johnolven/asis-coder/pkg/logging"
	"github.com/shirou/gopsutil/v4/host"
)

// Detector identifies the platform the installer runs on.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}

type platformInfoFunc func(ctx context.Context) (platform, family, version string, err error)

// RealDetector uses runtime.GOOS and gopsutil.
type RealDetector struct {
	goos         string
	platformInfo platformInfoFunc
}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{
		goos:         runtime.GOOS,
		platformInfo: host.PlatformInformationWithContext,
	}
}

// Detect classifies runtime.GOOS. On Linux it also reads distribution
// details through gopsutil; failing to read them is not an error.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		Platform: Classify(d.goos),
		GOOS:     d.goos,
		Arch:     runtime.GOARCH,
	}

	if d.goos != "linux" || d.platformInfo == nil {
		return info, nil
	}

	distro, family, version, err := d.platformInfo(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger := logging.GetLogger("platform")
		logger.Debug().Err(err).Msg("Distribution detection failed")
		return info, nil
	}

	info.Distro = strings.ToLower(strings.TrimSpace(distro))
	info.DistroFamily = strings.ToLower(strings.TrimSpace(family))
	info.DistroVersion = strings.TrimSpace(version)
	return info, nil
}

// StaticDetector always reports the same platform. Used for --platform
// overrides and in tests.
type StaticDetector struct {
	Platform Platform
}

// Detect returns the configured platform with the host architecture.
func (d StaticDetector) Detect(context.Context) (*Info, error) {
	return &Info{
		Platform: d.Platform,
		GOOS:     runtime.GOOS,
		Arch:     runtime.GOARCH,
	}, nil
}
