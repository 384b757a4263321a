package domain

import "strings"

// Command describes one external process invocation.
type Command struct {
	// Name is the program to run, resolved through the search path when not absolute.
	Name string
	// Args are passed to the program verbatim, without shell interpretation.
	Args []string
	// Dir is the working directory. Empty means the installer's working directory.
	Dir string
	// Interactive commands may prompt the user. They inherit the installer's
	// stdin and controlling terminal instead of running on a private pty.
	Interactive bool
}

// NewCommand builds a Command from a program name and its arguments.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// String renders the command line for logs and error metadata.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// CommandResult is the outcome of a captured external process.
type CommandResult struct {
	// Success is true when the process started and exited with status zero.
	Success bool
	// Stdout is the trimmed standard output.
	Stdout string
	// Stderr is the trimmed standard error.
	Stderr string
	// ExitCode is the process exit status, or -1 when the process never ran.
	ExitCode int
}
