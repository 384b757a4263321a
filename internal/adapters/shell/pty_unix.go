//go:build !windows

package shell

import (
	"errors"
	"io"
	"os/exec"

	"github.com/creack/pty"
)

var errPTYUnsupported = errors.New("pty not supported")

// runPTY starts c attached to a pseudo-terminal and copies the merged
// stdout/stderr stream to out until the process exits.
func runPTY(c *exec.Cmd, out io.Writer) error {
	ptmx, err := pty.Start(c)
	if err != nil {
		if errors.Is(err, pty.ErrUnsupported) {
			return errPTYUnsupported
		}
		return err
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master returns EIO once the child has exited.
		_, _ = io.Copy(out, ptmx)
	}()

	err = c.Wait()
	<-ioDone
	_ = ptmx.Close()

	return err
}
