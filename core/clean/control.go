package clean

import (
	"fmt"
	"strings"
)

// controlScan is the per-call scan state for EscapeControlChars. Only the
// double-quote region is tracked: this pass runs before quote conversion, so
// single quotes are still opaque content at this stage.
type controlScan struct {
	inString bool
	escaped  bool
}

// EscapeControlChars replaces raw control bytes found inside double-quoted
// string literals with their JSON escape sequences. Control characters
// outside string regions pass through unmodified.
//
// This pass must run before comment stripping: a raw newline inside a string
// would otherwise terminate a line comment match in the (string-unaware)
// pattern passes and corrupt the document.
func EscapeControlChars(s string) string {
	var st controlScan
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if st.escaped {
			st.escaped = false
			b.WriteByte(c)
			continue
		}
		switch {
		case c == '\\':
			st.escaped = true
			b.WriteByte(c)
		case c == '"':
			st.inString = !st.inString
			b.WriteByte(c)
		case st.inString && c < 0x20:
			b.WriteString(escapeControl(c))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// escapeControl maps a control byte to its two-character escape where JSON
// defines one, and to a \u escape otherwise.
func escapeControl(c byte) string {
	switch c {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	default:
		return fmt.Sprintf(`\u%04x`, c)
	}
}
