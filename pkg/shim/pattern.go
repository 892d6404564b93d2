package shim

import "github.com/ksco/supalink/pkg/utils"

// Pattern is one entry of the tool-name table: a lower-case literal that
// ends in the delimiter following the tool's token on a command line.
type Pattern struct {
	Match  string
	Quoted bool
	Target string
}

// Replacement is what stands in for a matched span.
func (p Pattern) Replacement() string {
	if p.Quoted {
		return p.Target + `" `
	}
	return p.Target + " "
}

// BuildPatterns returns the tool-name table in priority order. Quoted
// forms come first so a bare name inside a longer quoted path is not
// picked over the tool itself, and forms with ext precede extensionless
// ones. Each tool is replaced by its executable name plus suffix.
func BuildPatterns(tools []string, ext, suffix string) []Pattern {
	var quoted, bare []Pattern
	seen := utils.NewMapSet[string]()
	for _, tool := range tools {
		target := tool + ext + suffix
		for _, name := range []string{tool + ext, tool} {
			if !seen.Add(name) {
				continue
			}
			quoted = append(quoted, Pattern{Match: toLower(name) + `" `, Quoted: true, Target: target})
			bare = append(bare, Pattern{Match: toLower(name) + " ", Target: target})
		}
	}
	return append(quoted, bare...)
}

// Rewrite replaces the first occurrence, ignoring case, of the first
// pattern that occurs anywhere in cmdline. Later patterns and later
// occurrences are left alone.
func Rewrite(cmdline string, patterns []Pattern) (string, bool) {
	for _, p := range patterns {
		at := indexFold(cmdline, p.Match)
		if at < 0 {
			continue
		}
		return cmdline[:at] + p.Replacement() + cmdline[at+len(p.Match):], true
	}
	return "", false
}

// indexFold is strings.Index with ASCII case folding. lower must already
// be lower case.
func indexFold(s, lower string) int {
	n := len(lower)
	for i := 0; i+n <= len(s); i++ {
		if equalFoldASCII(s[i:i+n], lower) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(s, lower string) bool {
	for i := 0; i < len(lower); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lower[i] {
			return false
		}
	}
	return true
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
