package main

import (
	"os"
	"runtime"

	"github.com/ksco/supalink/pkg/shim"
	"github.com/ksco/supalink/pkg/utils"
)

// supalink stands in for the linker. Input command line is assumed to be
// of the form:
//
//	link.exe @C:\src\out\Debug\obj\chrome_dll\RSP00003045884740.rsp /NOLOGO /ERRORREPORT:PROMPT
//
// The response file is rewritten with one argument per line, then the
// real linker, renamed to link.exe.supalink_orig.exe, is run with the
// same command line.
func main() {
	ctx := shim.NewContext()
	shim.ParseEnv(ctx, runtime.GOOS, os.Environ())

	o := shim.Prepare(ctx, os.Args)
	if o.Kind != shim.Fatal {
		o = shim.Relaunch(ctx, shim.CommandLine(), o.Reason)
	}
	exit(o)
}

func exit(o shim.Outcome) {
	if o.Kind == shim.Fatal {
		utils.Fatal(o.Reason)
	}
	utils.Stdout.Flush()
	os.Exit(o.ExitCode)
}
