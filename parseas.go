package jsonmend

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/renholt/jsonmend/core/extract"
	"github.com/renholt/jsonmend/internal/jsonx"
	"github.com/renholt/jsonmend/internal/utils"
)

// ParseAs decodes content into a concrete type T. Primitive kinds (string,
// bool, int, uint, float) convert directly via strconv; composite kinds
// (structs, maps, slices) run the same fallback strategies as [Parse] but
// decode into T at each stage.
//
// Typed decoding bypasses the special-value restoration step: an enabled NaN
// or Infinity token still decodes, but lands in the target as its sentinel
// string, so the field must accept a string. Floats parsed as primitives
// ("NaN", "Infinity") convert natively via strconv.
//
// Example:
//
//	type Person struct {
//	    Name string `json:"name"`
//	    Age  int    `json:"age"`
//	}
//
//	p, err := jsonmend.ParseAs[Person](`{'name': 'Ada', 'age': 36,}`)
func ParseAs[T any](content string, opts ...Option) (T, error) {
	var result T

	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.String:
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(content)
		if err != nil {
			return result, fmt.Errorf("parse %q as bool: %w", content, err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return result, fmt.Errorf("parse %q as float: %w", content, err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("parse %q as int: %w", content, err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("parse %q as uint: %w", content, err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	default:
		o := DefaultOptions()
		for _, opt := range opts {
			opt(&o)
		}
		return parseTyped[T](content, o)
	}
}

// parseTyped mirrors the S0/S1/S2 strategy order of parse, decoding into T
// instead of the generic tree.
func parseTyped[T any](content string, o Options) (T, error) {
	var direct T
	directErr := jsonx.Unmarshal([]byte(content), &direct)
	if directErr == nil {
		return direct, nil
	}

	var cleaned T
	cleanedErr := jsonx.Unmarshal([]byte(cleanText(content, o)), &cleaned)
	if cleanedErr == nil {
		return cleaned, nil
	}

	if candidate, ok := extract.First(content); ok {
		var extracted T
		if err := jsonx.Unmarshal([]byte(candidate), &extracted); err == nil {
			return extracted, nil
		}
	}

	var zero T
	return zero, fmt.Errorf("unable to parse %q as %T: %w (original error: %v)",
		utils.TruncateString(content, errContextLen), zero, cleanedErr, directErr)
}
