// Package clean provides the text-level repair passes that turn almost-JSON
// (JS-style literals, commented config files, LLM output) into text a
// conformant decoder will accept.
//
// The passes come in two families with deliberately different guarantees:
//
//   - Character-scanning passes ([NormalizeQuotes], [EscapeControlChars])
//     walk the text once with a small throwaway scan state and know whether
//     they are inside a string literal, so they never touch string content.
//   - Pattern passes ([StripComments], [StripTrailingCommas], [QuoteBareKeys])
//     are plain regular-expression rewrites with no string awareness. A
//     comment-looking or trailing-comma-looking sequence inside a string
//     literal will be rewritten incorrectly. This is a known, documented
//     limitation kept for compatibility; see the package tests.
//
// Every pass is a pure string → string function. Scan state is created fresh
// on each call and discarded, so concurrent use needs no locking.
package clean
