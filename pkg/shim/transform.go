package shim

const (
	quote = '"'
	space = ' '
)

// lineBreak is what replaces the space between two quoted arguments.
var lineBreak = []uint16{'\r', '\n'}

// Transform puts every quoted argument of a response file on its own line
// by turning each `" "` boundary into a quote, a line break and a quote.
// s is a sequence of UTF-16 code units; everything other than the
// boundaries is copied unit for unit, ill-formed surrogates included.
//
// Response files for large links hold tens of thousands of arguments, so
// this is a single left-to-right pass over s.
func Transform(s []uint16) []uint16 {
	out := make([]uint16, 0, 2*len(s))
	for i := 0; i < len(s); {
		if i+2 < len(s) && s[i] == quote && s[i+1] == space && s[i+2] == quote {
			out = append(out, quote)
			out = append(out, lineBreak...)
			out = append(out, quote)
			i += 3
			continue
		}
		out = append(out, s[i])
		i++
	}
	return out
}
