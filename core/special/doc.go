// Package special carries non-finite number tokens (NaN, Infinity,
// -Infinity) across a conformant JSON decode, which would otherwise reject
// them. [Encode] rewrites the bare tokens into quoted sentinel strings before
// decoding; [Decode] walks the decoded value tree afterwards and restores the
// sentinels to their IEEE 754 values.
//
// The two halves are gated by the same toggles, so a disabled token survives
// the round trip as a plain string rather than being restored.
package special
