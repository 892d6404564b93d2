package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Printer buffers diagnostics until Flush. Build systems keep large
// buffers on stderr, so the shim reports everything on stdout and
// flushes before it spawns or exits.
type Printer struct {
	w *bufio.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: bufio.NewWriter(w)}
}

func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) Flush() {
	p.w.Flush()
}

var Stdout = NewPrinter(os.Stdout)

func Fatal(v any) {
	Stdout.Printf("supalink fatal error: %s\n", v)
	Stdout.Flush()
	os.Exit(1)
}

func RemovePrefix(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		s = strings.TrimPrefix(s, prefix)
		return s, true
	}
	return s, false
}

// IsTrue reports whether an environment value enables a switch.
func IsTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	}
	return false
}
