// Package runner executes the delegated setup script.
//
// The child inherits the parent's standard streams so interactive prompts
// from the script reach the user, and the call blocks until the child
// exits. A non-zero exit is reported as *ExitError.
package runner

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/johnolven/asis-coder/pkg/errors"
	"github.com/johnolven/asis-coder/pkg/logging"
	"github.com/rs/zerolog"
)

// Shell interprets scripts the kernel refuses to exec, such as scripts
// without a shebang line.
const Shell = "/bin/sh"

// Command describes one child process invocation.
type Command struct {
	Path string
	Args []string
	// Dir is the working directory of the child.
	Dir string
	// Env is appended to the parent's environment.
	Env map[string]string
}

// Runner runs a command to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExitError reports a setup script that exited with a non-zero status.
type ExitError struct {
	Path     string
	ExitCode int
	Err      error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command failed: %s (exit status %d)", e.Path, e.ExitCode)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Timeout bounds the child's run time. Zero means no limit.
	Timeout time.Duration

	logger zerolog.Logger
}

// NewExecRunner creates a runner wired to the process's own stdio.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Timeout: timeout,
		logger:  logging.GetLogger("runner"),
	}
}

// Run starts cmd and waits for it.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	if cmd.Path == "" {
		return errors.New(errors.ErrInvalidInput, "command requires a path")
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	logging.LogCommand(cmd.Path, cmd.Args)
	r.logger.Info().
		Str("command", cmd.Path).
		Str("workingDir", cmd.Dir).
		Dur("timeout", r.Timeout).
		Msg("Running setup script")

	start := time.Now()
	err := r.command(ctx, cmd, cmd.Path, cmd.Args).Run()
	if err != nil && stderrors.Is(err, syscall.ENOEXEC) {
		r.logger.Debug().
			Str("command", cmd.Path).
			Str("shell", Shell).
			Msg("Script is not directly executable, running it with the shell")
		err = r.command(ctx, cmd, Shell, append([]string{cmd.Path}, cmd.Args...)).Run()
	}
	elapsed := time.Since(start)

	if err == nil {
		r.logger.Info().Str("command", cmd.Path).Dur("duration", elapsed).Msg("Setup script finished")
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if stderrors.Is(ctxErr, context.DeadlineExceeded) && r.Timeout > 0 {
			return errors.Wrapf(ctxErr, errors.ErrSetupTimeout,
				"%s did not finish within %s", cmd.Path, r.Timeout).
				WithDetail("timeout", r.Timeout.String())
		}
		return errors.Wrapf(ctxErr, errors.ErrSetupFailed, "%s was interrupted", cmd.Path)
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		r.logger.Error().
			Str("command", cmd.Path).
			Int("exitCode", exitErr.ExitCode()).
			Dur("duration", elapsed).
			Msg("Setup script failed")
		return errors.Wrap(&ExitError{Path: cmd.Path, ExitCode: exitErr.ExitCode(), Err: err},
			errors.ErrSetupFailed, "setup script failed").
			WithDetail("exitCode", exitErr.ExitCode())
	}

	return errors.Wrapf(err, errors.ErrSetupFailed, "failed to start %s", cmd.Path)
}

func (r *ExecRunner) command(ctx context.Context, cmd Command, path string, args []string) *exec.Cmd {
	c := exec.CommandContext(ctx, path, args...)
	c.Dir = cmd.Dir
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	c.Env = os.Environ()
	for key, value := range cmd.Env {
		c.Env = append(c.Env, fmt.Sprintf("%s=%s", key, value))
	}
	return c
}
