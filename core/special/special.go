package special

import (
	"math"
	"regexp"
)

// Sentinel strings substituted for non-finite tokens so they survive a
// conformant decode pass.
const (
	NaNSentinel    = "NaN"
	PosInfSentinel = "Infinity"
	NegInfSentinel = "-Infinity"
)

// The tokens are only rewritten in object-value position: immediately after a
// colon and optional whitespace. -Infinity must be handled before Infinity or
// the sign would be stranded outside the quotes.
var (
	nanTokenRE    = regexp.MustCompile(`(:\s*)NaN\b`)
	negInfTokenRE = regexp.MustCompile(`(:\s*)-Infinity\b`)
	posInfTokenRE = regexp.MustCompile(`(:\s*)Infinity\b`)
)

// Encode replaces bare NaN and Infinity tokens in value position with quoted
// sentinel strings. allowNaN gates NaN; allowInf gates both signed Infinity
// forms.
func Encode(s string, allowNaN, allowInf bool) string {
	if allowNaN {
		s = nanTokenRE.ReplaceAllString(s, `$1"`+NaNSentinel+`"`)
	}
	if allowInf {
		s = negInfTokenRE.ReplaceAllString(s, `$1"`+NegInfSentinel+`"`)
		s = posInfTokenRE.ReplaceAllString(s, `$1"`+PosInfSentinel+`"`)
	}
	return s
}

// Decode walks a decoded value tree and replaces every string exactly equal
// to an enabled sentinel with the corresponding float64 special value. Maps
// and slices are rebuilt rather than mutated in place, so the input tree is
// left intact. Decoder output is acyclic, so plain recursion is safe.
func Decode(v any, allowNaN, allowInf bool) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Decode(val, allowNaN, allowInf)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Decode(val, allowNaN, allowInf)
		}
		return out
	case string:
		switch {
		case allowNaN && t == NaNSentinel:
			return math.NaN()
		case allowInf && t == PosInfSentinel:
			return math.Inf(1)
		case allowInf && t == NegInfSentinel:
			return math.Inf(-1)
		}
		return t
	default:
		return v
	}
}
