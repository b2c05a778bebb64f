package jsonmend

import (
	"fmt"
	"strings"

	"github.com/renholt/jsonmend/core/clean"
	"github.com/renholt/jsonmend/core/extract"
	"github.com/renholt/jsonmend/core/special"
	"github.com/renholt/jsonmend/internal/jsonx"
	"github.com/renholt/jsonmend/internal/utils"
)

// Parse decodes content into the generic JSON value tree (map[string]any,
// []any, string, float64, bool, nil), applying a fixed fallback strategy:
//
//  1. decode the raw input as-is;
//  2. run the cleanup pipeline (BOM strip, whitespace trim, control-character
//     escaping, comment and trailing-comma removal, quote normalization,
//     special-value encoding, bare-key quoting — in that order, each step
//     gated by its toggle) and decode the result;
//  3. extract the first balanced {...} or [...] region from the original
//     input and decode it directly.
//
// The step order is part of the contract: control characters are escaped
// before the string-unaware comment stripper runs, and quotes are normalized
// before value tokens are rewritten. On exhaustion the returned error embeds
// both the cleaned-decode failure and the original direct-decode failure.
func Parse(content string, opts ...Option) (any, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return parse(content, o)
}

// Result is the outcome of [TryParse]: either Success with Data set, or the
// failure captured as a plain message in Error.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TryParse is the non-failing variant of [Parse]. It never returns an error;
// an exhausted parse comes back as a Result with Success false and the
// composed failure message in Error.
func TryParse(content string, opts ...Option) Result {
	v, err := Parse(content, opts...)
	if err != nil {
		return Result{Error: err.Error()}
	}
	return Result{Success: true, Data: v}
}

// parse runs the three strategies in order, terminal on first success.
func parse(content string, o Options) (any, error) {
	// S0: the fast path. Well-formed input never pays for cleanup.
	direct, directErr := jsonx.Decode(content)
	if directErr == nil {
		return direct, nil
	}

	// S1: cleanup pipeline, then decode, then restore special values.
	v, cleanedErr := jsonx.Decode(cleanText(content, o))
	if cleanedErr == nil {
		return special.Decode(v, o.AllowNaN, o.AllowInfinity), nil
	}

	// S2: extraction runs against the original input, not the cleaned text,
	// and its candidate is decoded without any further cleanup.
	if candidate, ok := extract.First(content); ok {
		if v, err := jsonx.Decode(candidate); err == nil {
			return v, nil
		}
	}

	return nil, fmt.Errorf("unable to parse %q as JSON: %w (original error: %v)",
		utils.TruncateString(content, errContextLen), cleanedErr, directErr)
}

// errContextLen caps how much of the offending input is quoted in the
// terminal error message.
const errContextLen = 80

// cleanText applies the enabled repair passes in their fixed order and
// returns the text handed to the cleaned-decode attempt.
func cleanText(content string, o Options) string {
	s := content
	if o.StripBOM {
		s = clean.StripBOM(s)
	}
	s = strings.TrimSpace(s)
	s = clean.EscapeControlChars(s)
	if o.AllowComments {
		s = clean.StripComments(s)
	}
	if o.AllowTrailingCommas {
		s = clean.StripTrailingCommas(s)
	}
	if o.AllowSingleQuotes {
		s = clean.NormalizeQuotes(s)
	}
	if o.AllowNaN || o.AllowInfinity {
		s = special.Encode(s, o.AllowNaN, o.AllowInfinity)
	}
	if o.AllowUnquotedKeys {
		s = clean.QuoteBareKeys(s)
	}
	return s
}
