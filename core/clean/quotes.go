package clean

import "strings"

// quoteScan is the per-call scan state for NormalizeQuotes. A fresh zero
// value is used on every call; state never survives a pass.
type quoteScan struct {
	inDouble bool
	inSingle bool
	escaped  bool
}

// NormalizeQuotes converts single-quoted string delimiters to double quotes
// in a single forward scan, leaving string content untouched.
//
// The two quote regions are mutually exclusive: while a double-quoted string
// is open, single quotes are plain content and are copied verbatim; while a
// single-quoted string is open, double quotes are plain content. The active
// region always suppresses the other delimiter.
//
// Known limitation, kept intentionally: a single-quoted string containing a
// literal double quote cannot be converted correctly, because switching the
// delimiters changes where the string logically ends. Callers that need
// mixed-quote content must quote it properly at the source.
func NormalizeQuotes(s string) string {
	var st quoteScan
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if st.escaped {
			st.escaped = false
			b.WriteByte(c)
			continue
		}
		switch c {
		case '\\':
			st.escaped = true
			b.WriteByte(c)
		case '"':
			if !st.inSingle {
				st.inDouble = !st.inDouble
			}
			b.WriteByte(c)
		case '\'':
			if st.inDouble {
				b.WriteByte(c)
				break
			}
			st.inSingle = !st.inSingle
			b.WriteByte('"')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
