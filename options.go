package jsonmend

// Options is the bag of leniency toggles for a single parse call. The zero
// value disables everything; use [DefaultOptions] for the usual defaults.
// Options are read-only for the duration of a call — nothing is cached or
// shared between calls.
type Options struct {
	// AllowTrailingCommas removes a comma directly before a closing } or ].
	AllowTrailingCommas bool
	// AllowComments strips // line comments and /* block */ comments.
	AllowComments bool
	// AllowSingleQuotes converts single-quoted strings to double-quoted.
	AllowSingleQuotes bool
	// AllowUnquotedKeys wraps bare identifier keys in double quotes.
	AllowUnquotedKeys bool
	// AllowNaN accepts a bare NaN token in value position.
	AllowNaN bool
	// AllowInfinity accepts bare Infinity and -Infinity tokens in value
	// position. One toggle governs both signed forms.
	AllowInfinity bool
	// StripBOM removes a leading byte order mark before cleanup.
	StripBOM bool
}

// DefaultOptions returns the default toggle set: every leniency enabled
// except unquoted keys.
func DefaultOptions() Options {
	return Options{
		AllowTrailingCommas: true,
		AllowComments:       true,
		AllowSingleQuotes:   true,
		AllowUnquotedKeys:   false,
		AllowNaN:            true,
		AllowInfinity:       true,
		StripBOM:            true,
	}
}

// Option mutates the Options for one call.
type Option func(*Options)

// WithOptions replaces the whole toggle set at once. Later options still
// apply on top.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithoutTrailingCommas disables trailing comma removal.
func WithoutTrailingCommas() Option {
	return func(o *Options) { o.AllowTrailingCommas = false }
}

// WithoutComments disables comment stripping.
func WithoutComments() Option {
	return func(o *Options) { o.AllowComments = false }
}

// WithoutSingleQuotes disables single-quote conversion.
func WithoutSingleQuotes() Option {
	return func(o *Options) { o.AllowSingleQuotes = false }
}

// WithUnquotedKeys enables quoting of bare identifier keys.
func WithUnquotedKeys() Option {
	return func(o *Options) { o.AllowUnquotedKeys = true }
}

// WithoutNaN disables NaN handling; a bare NaN token stays a decode error
// and a "NaN" string stays a string.
func WithoutNaN() Option {
	return func(o *Options) { o.AllowNaN = false }
}

// WithoutInfinity disables Infinity handling for both signed forms.
func WithoutInfinity() Option {
	return func(o *Options) { o.AllowInfinity = false }
}

// WithBOMKept disables BOM stripping. A BOM-prefixed document then fails the
// direct and cleaned decodes, though extraction may still recover it.
func WithBOMKept() Option {
	return func(o *Options) { o.StripBOM = false }
}
