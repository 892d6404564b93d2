//go:build unix

package shim

import (
	"os/exec"
	"syscall"
)

// exitCode reports a child killed by a signal the way shells do, as
// 128 plus the signal number, rather than ExitCode's -1.
func exitCode(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return err.ExitCode()
}
