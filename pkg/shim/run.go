package shim

import (
	"errors"
	"fmt"
)

// Prepare rewrites the response file named in args so that each quoted
// argument sits on its own line, and saves a copy next to it. It returns
// a Fallback outcome when the rewrite cannot be done, leaving the build to
// run with the file as it was.
func Prepare(ctx *Context, args []string) Outcome {
	path, err := FindResponseFile(args)
	if err != nil {
		return fallback(err.Error())
	}

	rsp, err := ReadResponseFile(path)
	if err != nil {
		return fallback("couldn't read file")
	}
	rsp.Units = Transform(rsp.Units)

	data := rsp.Encode()
	if o := dump(ctx.Writer, path, data); o.Kind != Success {
		return o
	}
	if ctx.Arg.Backup {
		return dump(ctx.Writer, path+".copy", data)
	}
	return Outcome{}
}

func dump(w FileWriter, path string, data []byte) Outcome {
	err := w.WriteFile(path, data)
	switch {
	case err == nil:
		return Outcome{}
	case errors.Is(err, ErrCreate):
		return fallback("couldn't write file")
	default:
		return fatal("failed during response rewrite")
	}
}

// Relaunch runs the renamed real tool with invocation rewritten to name
// it, and reports the tool's exit code. A non-empty reason is the
// fallback that led here and is reported first.
func Relaunch(ctx *Context, invocation, reason string) Outcome {
	out := ctx.Out
	if reason != "" {
		out.Printf("supalink failed (%s), trying to fallback to standard %s.\n", reason, ctx.Arg.Tools[0])
		out.Printf("Original command line: %s\n", invocation)
		out.Flush()
	}

	cmd, ok := Rewrite(invocation, ctx.Patterns())
	if !ok {
		out.Printf("Original run '%s'\n", invocation)
		return fatal(fmt.Sprintf("Couldn't find %s (or similar) in command line", ctx.ToolName()))
	}

	out.Printf("supalink running '%s'\n", cmd)
	out.Flush()
	code, err := ctx.Launcher.Launch(cmd)
	if err != nil {
		return fatal(err.Error())
	}
	return Outcome{Kind: Success, ExitCode: code}
}
