// Package installer implements the post-install bootstrap.
//
// A run classifies the platform, checks that the main script exists and
// then dispatches to one of two strategies: on macOS and Linux the
// package's install.sh is made executable and run; on Windows a batch shim
// that forwards to bash is written next to the main script. Every failure
// ends the run; there is no retry and no rollback of completed steps.
package installer

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/johnolven/asis-coder/pkg/config"
	"github.com/johnolven/asis-coder/pkg/errors"
	"github.com/johnolven/asis-coder/pkg/filesystem"
	"github.com/johnolven/asis-coder/pkg/logging"
	"github.com/johnolven/asis-coder/pkg/platform"
	"github.com/johnolven/asis-coder/pkg/runner"
	"github.com/johnolven/asis-coder/pkg/ui"
	"github.com/rs/zerolog"
)

// Exit codes returned by Execute.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Options configure a Bootstrap. Root and Config are required; the other
// collaborators default to the real implementations.
type Options struct {
	Root     string
	Config   *config.Config
	Detector platform.Detector
	FS       filesystem.FS
	Runner   runner.Runner
	Console  *ui.Console
	// DryRun checks preconditions and reports the planned actions
	// without touching the filesystem or spawning the setup script.
	DryRun bool
}

// Result describes what a run did.
type Result struct {
	Platform    platform.Platform
	Strategy    platform.Strategy
	Layout      Layout
	SetupRan    bool
	ShimWritten bool
	DryRun      bool
}

// Bootstrap runs the installation once.
type Bootstrap struct {
	root     string
	cfg      *config.Config
	detector platform.Detector
	fs       filesystem.FS
	runner   runner.Runner
	console  *ui.Console
	dryRun   bool
	logger   zerolog.Logger
}

type strategyFunc func(b *Bootstrap, ctx context.Context, l Layout, res *Result) error

var strategies = map[platform.Strategy]strategyFunc{
	platform.StrategyUnix:    (*Bootstrap).installUnix,
	platform.StrategyWindows: (*Bootstrap).installWindows,
}

// New creates a Bootstrap.
func New(opts Options) (*Bootstrap, error) {
	if opts.Config == nil {
		return nil, errors.New(errors.ErrInvalidInput, "installer requires a configuration")
	}
	b := &Bootstrap{
		root:     opts.Root,
		cfg:      opts.Config,
		detector: opts.Detector,
		fs:       opts.FS,
		runner:   opts.Runner,
		console:  opts.Console,
		dryRun:   opts.DryRun,
		logger:   logging.GetLogger("installer"),
	}
	if b.detector == nil {
		b.detector = platform.NewDetector()
	}
	if b.fs == nil {
		b.fs = filesystem.NewOS()
	}
	if b.runner == nil {
		b.runner = runner.NewExecRunner(opts.Config.Setup.Timeout)
	}
	if b.console == nil {
		b.console = ui.Stdio()
	}
	return b, nil
}

// Execute runs the installation, reports the outcome on the console and
// returns the process exit code.
func (b *Bootstrap) Execute(ctx context.Context) int {
	res, err := b.Run(ctx)
	if err == nil {
		b.reportSuccess(res)
		return ExitSuccess
	}

	p := res.Platform
	if p == "" {
		p = b.fallbackPlatform(ctx)
	}
	b.reportFailure(p, err)
	return ExitFailure
}

// Abort reports an error raised before a Bootstrap could run, such as an
// unresolvable package root or a broken configuration, with the same start
// banner and failure report as Execute. A nil Config falls back to the
// embedded defaults.
func Abort(ctx context.Context, opts Options, cause error) int {
	if opts.Config == nil {
		cfg, err := config.Default()
		if err != nil {
			cfg = &config.Config{}
		}
		opts.Config = cfg
	}
	b, err := New(opts)
	if err != nil {
		return ExitFailure
	}

	b.console.Printf("Header", MsgStart, b.cfg.Package.Name)
	b.reportFailure(b.fallbackPlatform(ctx), cause)
	return ExitFailure
}

// fallbackPlatform picks the platform for a failure report when the run
// ended before detection.
func (b *Bootstrap) fallbackPlatform(ctx context.Context) platform.Platform {
	if info, err := b.detector.Detect(ctx); err == nil {
		return info.Platform
	}
	return platform.Classify(runtime.GOOS)
}

// Run performs the installation without printing the final outcome. The
// returned Result is never nil and holds whatever was determined before a
// failure.
func (b *Bootstrap) Run(ctx context.Context) (*Result, error) {
	res := &Result{DryRun: b.dryRun}
	b.console.Printf("Header", MsgStart, b.cfg.Package.Name)

	info, err := b.detector.Detect(ctx)
	if err != nil {
		return res, errors.Wrap(err, errors.ErrPlatformInvalid, "platform detection failed")
	}
	res.Platform = info.Platform
	res.Strategy = info.Platform.Strategy()
	b.logger.Debug().
		Str("platform", info.Describe()).
		Str("strategy", string(res.Strategy)).
		Msg("Platform detected")

	layout, err := NewLayout(b.root, b.cfg.Scripts)
	if err != nil {
		return res, err
	}
	res.Layout = layout

	if !filesystem.Exists(b.fs, layout.MainScript) {
		return res, missingFile(errors.ErrMainScriptNotFound, layout.MainScript)
	}

	if info.Platform.IsWindows() {
		b.console.Println("Info", MsgWindowsFound)
	} else {
		b.console.Printf("Info", MsgUnixFound, info.Platform.Label())
	}

	install, ok := strategies[res.Strategy]
	if !ok {
		return res, errors.Newf(errors.ErrPlatformInvalid, "no install strategy for %s", info.Platform)
	}

	done := logging.LogOperationStart(b.logger, string(res.Strategy)+"-dispatch")
	defer done()
	if err := install(b, ctx, layout, res); err != nil {
		return res, err
	}
	return res, nil
}

func missingFile(code errors.ErrorCode, path string) error {
	return errors.Newf(code, "%s not found", path).
		WithDetail("file", filepath.Base(path))
}
