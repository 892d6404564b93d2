package shim

// Launcher starts a command line as a child process, waits for it with
// no timeout, and returns its exit code. An error means the child could
// not be run at all.
type Launcher interface {
	Launch(cmdline string) (int, error)
}
