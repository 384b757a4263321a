// Package escalate runs commands through sudo.
package escalate

import (
	"context"
	"io"

	"github.com/darkstorage/install/internal/core/domain"
	"github.com/darkstorage/install/internal/core/ports"
)

// Helper is the escalation program name.
const Helper = "sudo"

var _ ports.Escalator = (*Sudo)(nil)

// Sudo implements ports.Escalator by prefixing commands with sudo.
type Sudo struct {
	executor ports.Executor
	finder   ports.PathFinder
	stdout   io.Writer
	stderr   io.Writer
}

// NewSudo creates a new Sudo escalator. Escalated commands are interactive
// so the password prompt reaches the user's terminal.
func NewSudo(executor ports.Executor, finder ports.PathFinder, stdout, stderr io.Writer) *Sudo {
	return &Sudo{
		executor: executor,
		finder:   finder,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Available reports whether sudo is on the search path.
func (s *Sudo) Available() bool {
	_, err := s.finder.LookPath(Helper)
	return err == nil
}

// Run executes cmd as "sudo <name> <args...>".
func (s *Sudo) Run(ctx context.Context, cmd domain.Command) error {
	if cmd.Name == "" {
		return domain.ErrEmptyCommand
	}

	args := make([]string, 0, len(cmd.Args)+1)
	args = append(args, cmd.Name)
	args = append(args, cmd.Args...)

	escalated := domain.NewCommand(Helper, args...)
	escalated.Dir = cmd.Dir
	escalated.Interactive = true
	return s.executor.Execute(ctx, escalated, s.stdout, s.stderr)
}
