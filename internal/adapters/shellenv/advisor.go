// Package shellenv suggests PATH changes for the user's login shell.
package shellenv

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/darkstorage/install/internal/core/ports"
)

// Shell is a supported login shell.
type Shell string

// Supported shells.
const (
	ShellBash    Shell = "bash"
	ShellZsh     Shell = "zsh"
	ShellFish    Shell = "fish"
	ShellUnknown Shell = ""
)

var _ ports.PathAdvisor = (*Advisor)(nil)

// Advisor implements ports.PathAdvisor using $SHELL.
type Advisor struct {
	getenv func(string) string
}

// NewAdvisor creates an Advisor reading the environment through getenv.
func NewAdvisor(getenv func(string) string) *Advisor {
	return &Advisor{getenv: getenv}
}

// Detect returns the shell named by $SHELL.
func (a *Advisor) Detect() Shell {
	return ParseShell(a.getenv("SHELL"))
}

// Hint returns a command adding dir to PATH for the detected shell.
func (a *Advisor) Hint(dir string) string {
	switch a.Detect() {
	case ShellBash:
		return rcAppend(dir, "~/.bashrc")
	case ShellZsh:
		return rcAppend(dir, "~/.zshrc")
	case ShellFish:
		return "fish_add_path " + dir
	default:
		return exportLine(dir)
	}
}

// ParseShell extracts the shell from a binary path such as /usr/bin/zsh.
func ParseShell(path string) Shell {
	if path == "" {
		return ShellUnknown
	}
	switch name := strings.ToLower(filepath.Base(path)); name {
	case "bash", "zsh", "fish":
		return Shell(name)
	default:
		return ShellUnknown
	}
}

func exportLine(dir string) string {
	return fmt.Sprintf(`export PATH="%s:$PATH"`, dir)
}

func rcAppend(dir, rcFile string) string {
	return fmt.Sprintf(`echo '%s' >> %s`, exportLine(dir), rcFile)
}
