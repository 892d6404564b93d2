//go:build windows

package shim

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

type processLauncher struct{}

func NewLauncher() Launcher {
	return processLauncher{}
}

// CommandLine returns the command line the process was started with,
// exactly as the parent passed it.
func CommandLine() string {
	return windows.UTF16PtrToString(windows.GetCommandLine())
}

func (processLauncher) Launch(cmdline string) (int, error) {
	cmd, err := windows.UTF16PtrFromString(cmdline)
	if err != nil {
		return 0, err
	}

	si := &windows.StartupInfo{Flags: windows.STARTF_USESTDHANDLES}
	si.Cb = uint32(unsafe.Sizeof(*si))
	si.StdInput, _ = windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	si.StdOutput, _ = windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	si.StdErr, _ = windows.GetStdHandle(windows.STD_ERROR_HANDLE)

	var pi windows.ProcessInformation
	if err := windows.CreateProcess(nil, cmd, nil, nil, true, 0, nil, nil, si, &pi); err != nil {
		// windows.Errno formats itself with FormatMessage.
		return 0, err
	}
	defer windows.CloseHandle(pi.Thread)
	defer windows.CloseHandle(pi.Process)

	if _, err := windows.WaitForSingleObject(pi.Process, windows.INFINITE); err != nil {
		return 0, err
	}
	var code uint32
	if err := windows.GetExitCodeProcess(pi.Process, &code); err != nil {
		return 0, err
	}
	return int(code), nil
}
