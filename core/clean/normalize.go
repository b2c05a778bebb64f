package clean

import (
	"regexp"
	"strings"
)

var (
	blockCommentRE  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRE   = regexp.MustCompile(`//[^\r\n]*`)
	trailingCommaRE = regexp.MustCompile(`,(\s*[}\]])`)
	bareKeyRE       = regexp.MustCompile(`([{,]\s*)([A-Za-z_$][A-Za-z0-9_$]*)\s*:`)
)

// StripComments removes // line comments and /* block */ comments. Block
// comments are matched non-greedily and may span multiple lines.
//
// Not string-boundary-aware: a // or /* sequence inside a string literal is
// stripped as if it were a comment. Run EscapeControlChars first so raw line
// breaks inside strings cannot interact with line comment matching.
func StripComments(s string) string {
	s = blockCommentRE.ReplaceAllString(s, "")
	return lineCommentRE.ReplaceAllString(s, "")
}

// StripTrailingCommas deletes a comma that directly precedes (optional
// whitespace and) a closing } or ], keeping the whitespace. Like
// StripComments this is a pattern rewrite with no string awareness.
func StripTrailingCommas(s string) string {
	return trailingCommaRE.ReplaceAllString(s, "$1")
}

// QuoteBareKeys wraps bare JS-style identifier keys in double quotes. A key
// qualifies when it matches [A-Za-z_$][A-Za-z0-9_$]*, sits immediately before
// a colon, and is preceded by { or , — identifiers in value position are
// left alone.
func QuoteBareKeys(s string) string {
	return bareKeyRE.ReplaceAllString(s, `$1"$2":`)
}

// StripBOM removes a leading byte order mark, if present.
func StripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
