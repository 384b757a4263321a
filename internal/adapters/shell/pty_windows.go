//go:build windows

package shell

import (
	"errors"
	"io"
	"os/exec"
)

var errPTYUnsupported = errors.New("pty not supported")

func runPTY(_ *exec.Cmd, _ io.Writer) error {
	return errPTYUnsupported
}
