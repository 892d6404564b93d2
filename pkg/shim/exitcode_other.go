//go:build !unix && !windows

package shim

import "os/exec"

func exitCode(err *exec.ExitError) int {
	return err.ExitCode()
}
