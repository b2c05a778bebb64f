// Package utils provides shared low-level string helpers used throughout the
// jsonmend internals: [TruncateString] keeps offending input readable when it
// is embedded in error messages, and [JSONToString] renders values as JSON
// safely for log output.
package utils
