// Package jsonmend is a forgiving front-end to a conformant JSON decoder.
// Because language models, config files, and JS-flavored tooling routinely
// produce almost-JSON — single quotes, comments, trailing commas, bare keys,
// NaN/Infinity literals, JSON buried in narrative prose — this package
// applies a fixed, ordered fallback strategy before giving up: direct decode,
// then a cleanup pipeline, then balanced-bracket extraction from the original
// text.
//
// The main entry points are [Parse], which returns the generic value tree,
// [TryParse], which never returns an error, and the generic [ParseAs], which
// decodes into a concrete type.
//
// jsonmend is not a validator and not a full JSON5 implementation: it accepts
// anything it can coerce into valid JSON, and only the specific leniencies
// listed on [Options] are supported.
package jsonmend
