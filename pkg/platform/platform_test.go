package platform

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/johnolven/asis-coder/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		goos     string
		want     Platform
		strategy Strategy
		label    string
	}{
		{"windows", Windows, StrategyWindows, "Windows"},
		{"darwin", MacOS, StrategyUnix, "macOS"},
		{"linux", Linux, StrategyUnix, "Linux"},
		{"freebsd", Linux, StrategyUnix, "Linux"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got := Classify(tt.goos)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.strategy, got.Strategy())
			assert.Equal(t, tt.label, got.Label())
		})
	}
}

func TestParse(t *testing.T) {
	for in, want := range map[string]Platform{
		"windows": Windows,
		"win32":   Windows,
		"Darwin":  MacOS,
		"macos":   MacOS,
		" linux ": Linux,
	} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("plan9")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlatformInvalid))
}

func TestRealDetector(t *testing.T) {
	info, err := NewDetector().Detect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Classify(runtime.GOOS), info.Platform)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.NotEmpty(t, info.Describe())
}

func TestRealDetectorDistribution(t *testing.T) {
	t.Run("linux details are normalized", func(t *testing.T) {
		d := &RealDetector{
			goos: "linux",
			platformInfo: func(context.Context) (string, string, string, error) {
				return " Ubuntu ", "Debian", " 24.04 ", nil
			},
		}

		info, err := d.Detect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Linux, info.Platform)
		assert.Equal(t, "ubuntu", info.Distro)
		assert.Equal(t, "debian", info.DistroFamily)
		assert.Equal(t, "24.04", info.DistroVersion)
	})

	t.Run("lookup failure is not an error", func(t *testing.T) {
		d := &RealDetector{
			goos: "linux",
			platformInfo: func(context.Context) (string, string, string, error) {
				return "", "", "", fmt.Errorf("no os-release")
			},
		}

		info, err := d.Detect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Linux, info.Platform)
		assert.Empty(t, info.Distro)
	})

	t.Run("cancelled context fails", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		d := &RealDetector{
			goos: "linux",
			platformInfo: func(ctx context.Context) (string, string, string, error) {
				return "", "", "", ctx.Err()
			},
		}

		_, err := d.Detect(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("lookup skipped off linux", func(t *testing.T) {
		d := &RealDetector{
			goos: "darwin",
			platformInfo: func(context.Context) (string, string, string, error) {
				t.Fatal("distribution lookup on darwin")
				return "", "", "", nil
			},
		}

		info, err := d.Detect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, MacOS, info.Platform)
		assert.Equal(t, "darwin", info.GOOS)
	})
}

func TestStaticDetector(t *testing.T) {
	info, err := StaticDetector{Platform: Windows}.Detect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Windows, info.Platform)
	assert.True(t, info.Platform.IsWindows())
	assert.Equal(t, "Windows/"+runtime.GOARCH, info.Describe())
}
