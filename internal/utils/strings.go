package utils

import (
	"fmt"

	"github.com/renholt/jsonmend/internal/jsonx"
)

// DefaultMaxStringLength is the default cap for truncated strings.
const DefaultMaxStringLength = 500

// JSONToString serialises object to its JSON representation and returns it
// as a string. When the optional indent argument is true the output is
// pretty-printed with two-space indentation. On marshalling failure it
// returns a JSON-formatted error string rather than an error, so the result
// is always safe to drop into log output.
func JSONToString(object any, indent ...bool) string {
	var encoded []byte
	var err error
	if len(indent) > 0 && indent[0] {
		encoded, err = jsonx.MarshalIndent(object, "", "  ")
	} else {
		encoded, err = jsonx.Marshal(object)
	}
	if err != nil {
		return "{\"error\": \"failed to marshal to JSON: " + err.Error() + "\"}"
	}
	return string(encoded)
}

// TruncateString shortens s to at most maxLen characters, appending a suffix
// that records the original total length so callers know data was omitted.
// If maxLen is zero or negative, [DefaultMaxStringLength] is used instead.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:maxLen], len(s))
}
