//go:build !windows

package shim

import (
	"errors"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

type processLauncher struct{}

func NewLauncher() Launcher {
	return processLauncher{}
}

// CommandLine rebuilds the process command line from os.Args. Outside
// Windows there is no single command line string to recover.
func CommandLine() string {
	return shellquote.Join(os.Args...)
}

func (processLauncher) Launch(cmdline string) (int, error) {
	argv, err := shellquote.Split(cmdline)
	if err != nil {
		return 0, err
	}
	if len(argv) == 0 {
		return 0, errors.New("empty command line")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCode(exitErr), nil
	}
	if err != nil {
		return 0, err
	}
	return 0, nil
}
