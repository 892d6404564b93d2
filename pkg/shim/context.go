package shim

import (
	"strings"

	"github.com/ksco/supalink/pkg/utils"
)

const (
	DefaultTool   = "link"
	DefaultExt    = ".exe"
	DefaultSuffix = ".supalink_orig.exe"
)

type ContextArg struct {
	// Tools are the intercepted tool names, highest priority first.
	Tools  []string
	Ext    string
	Suffix string
	Backup bool
}

type Context struct {
	Arg ContextArg

	Out      *utils.Printer
	Launcher Launcher
	Writer   FileWriter

	patterns []Pattern
}

func NewContext() *Context {
	return &Context{
		Arg: ContextArg{
			Tools:  []string{DefaultTool},
			Ext:    DefaultExt,
			Suffix: DefaultSuffix,
			Backup: true,
		},
		Out:      utils.Stdout,
		Launcher: NewLauncher(),
		Writer:   osWriter{},
	}
}

// ParseEnv applies SUPALINK_* overrides from env. Every argv token
// belongs to the real tool, so the environment is the only place the
// shim can be configured.
func ParseEnv(ctx *Context, goos string, env []string) {
	if v := utils.Getenv(goos, env, "SUPALINK_TOOLS"); v != "" {
		tools := utils.NewMapSet[string]()
		for _, name := range strings.Split(v, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name != "" {
				tools.Add(name)
			}
		}
		if tools.Len() > 0 {
			ctx.Arg.Tools = tools.Keys()
		}
	}
	if v, ok := utils.Lookup(goos, env, "SUPALINK_EXT"); ok {
		ctx.Arg.Ext = v
	}
	if v := utils.Getenv(goos, env, "SUPALINK_SUFFIX"); v != "" {
		ctx.Arg.Suffix = v
	}
	if utils.IsTrue(utils.Getenv(goos, env, "SUPALINK_NO_BACKUP")) {
		ctx.Arg.Backup = false
	}
	ctx.patterns = nil
}

// Patterns returns the tool-name table for the current arguments.
func (ctx *Context) Patterns() []Pattern {
	if ctx.patterns == nil {
		ctx.patterns = BuildPatterns(ctx.Arg.Tools, ctx.Arg.Ext, ctx.Arg.Suffix)
	}
	return ctx.patterns
}

// ToolName is the primary tool's executable name, used in diagnostics.
func (ctx *Context) ToolName() string {
	return ctx.Arg.Tools[0] + ctx.Arg.Ext
}
