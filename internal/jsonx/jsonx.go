// Package jsonx pins the delegate JSON decoder behind a single import so the
// rest of the module never depends on a concrete implementation directly. The
// repair passes only prepare text; everything that touches actual JSON grammar
// goes through this package.
package jsonx

import "github.com/goccy/go-json"

var (
	Marshal       = json.Marshal
	MarshalIndent = json.MarshalIndent
	Unmarshal     = json.Unmarshal
)

// Decode parses s as a standalone JSON document into the generic value tree
// (map[string]any, []any, string, float64, bool, nil).
func Decode(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}
