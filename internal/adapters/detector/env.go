// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how subprocess output is presented.
type OutputMode int

const (
	// ModePlain streams subprocess output through pipes.
	ModePlain OutputMode = iota
	// ModeInteractive attaches subprocesses to a pseudo-terminal.
	ModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "plain"
}

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	return Resolve(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

// Resolve picks the mode for a terminal state and CI variable value.
func Resolve(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModePlain
	}
	return ModeInteractive
}
