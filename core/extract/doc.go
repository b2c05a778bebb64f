// Package extract locates the first balanced JSON object or array embedded
// in arbitrary surrounding text, such as an LLM answer that wraps its JSON in
// narrative prose or markdown fences. It performs no repair: the candidate is
// returned exactly as it appears in the source.
package extract
