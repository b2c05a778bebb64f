package extract

import "strings"

// First returns the first balanced {...} region in s, falling back to the
// first balanced [...] region. Object search always runs before array search,
// even when a [ appears earlier in the text — the preference is fixed, not
// textual.
//
// The scan treats " as a string-region toggle and backslash as a
// one-character escape. Single quotes are not recognized here: extraction
// runs against the original, unrepaired text and always uses the
// double-quote convention.
func First(s string) (string, bool) {
	if candidate, ok := balanced(s, '{', '}'); ok {
		return candidate, true
	}
	return balanced(s, '[', ']')
}

// bracketScan is the per-call scan state for balanced.
type bracketScan struct {
	inString bool
	escaped  bool
}

// balanced runs a depth-counting scan from the first occurrence of open and
// returns the inclusive substring where the depth first returns to zero.
func balanced(s string, open, closer byte) (string, bool) {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return "", false
	}

	var st bracketScan
	depth := 0
	for i := start; i < len(s); i++ {
		c := s[i]
		if st.escaped {
			st.escaped = false
			continue
		}
		if c == '\\' {
			st.escaped = true
			continue
		}
		if st.inString {
			if c == '"' {
				st.inString = false
			}
			continue
		}
		switch c {
		case '"':
			st.inString = true
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
