// Package shell provides an os/exec based executor for running external tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/darkstorage/install/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec and, for interactive
// sessions, a pseudo-terminal.
type Executor struct {
	interactive bool
	stdin       io.Reader
}

// NewExecutor creates a new Executor. When interactive is true, streamed
// commands run attached to a PTY so tools keep their terminal formatting.
// Commands marked Interactive never use the PTY.
func NewExecutor(interactive bool) *Executor {
	return &Executor{
		interactive: interactive,
		stdin:       os.Stdin,
	}
}

// WithStdin overrides the input handed to interactive commands.
func (e *Executor) WithStdin(r io.Reader) *Executor {
	e.stdin = r
	return e
}

// Execute runs the command and streams its output.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	if cmd.Name == "" {
		return domain.ErrEmptyCommand
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	var err error
	switch {
	case cmd.Interactive:
		err = runAttached(command(ctx, cmd), e.stdin, stdout, stderr)
	case e.interactive:
		err = runPTY(command(ctx, cmd), stdout)
		if errors.Is(err, errPTYUnsupported) {
			err = runPiped(command(ctx, cmd), stdout, stderr)
		}
	default:
		err = runPiped(command(ctx, cmd), stdout, stderr)
	}

	if err != nil {
		return commandError(err, cmd)
	}
	return nil
}

// Output runs the command and captures its output.
func (e *Executor) Output(ctx context.Context, cmd domain.Command) domain.CommandResult {
	if cmd.Name == "" {
		return domain.CommandResult{ExitCode: -1}
	}

	var stdout, stderr bytes.Buffer
	c := command(ctx, cmd)
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()

	return domain.CommandResult{
		Success:  err == nil,
		Stdout:   strings.TrimSpace(stdout.String()),
		Stderr:   strings.TrimSpace(stderr.String()),
		ExitCode: exitCode(err),
	}
}

func command(ctx context.Context, cmd domain.Command) *exec.Cmd {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // commands are built by the installer
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	return c
}

// runAttached keeps the child in the installer's session so prompts that
// open /dev/tty (sudo, ssh, credential helpers) reach the user.
func runAttached(c *exec.Cmd, stdin io.Reader, stdout, stderr io.Writer) error {
	c.Stdin = stdin
	return runPiped(c, stdout, stderr)
}

func runPiped(c *exec.Cmd, stdout, stderr io.Writer) error {
	c.Stdout = stdout
	c.Stderr = stderr
	return c.Run()
}

// exitCode extracts the process exit status. It returns -1 when the process
// never ran or was killed by a signal.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func commandError(err error, cmd domain.Command) error {
	return zerr.With(
		zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "exit_code", exitCode(err)),
		"command", cmd.String(),
	)
}
