// Package dyn implements deep merge and deep copy over dynamically shaped
// values (option maps, decoded YAML documents).
//
// Every value is classified exactly once into one of three kinds — scalar,
// ordered sequence, or keyed mapping — and all downstream logic switches on
// that tag instead of re-inspecting runtime shape.
package dyn

import "reflect"

// Kind is the value shape discriminator.
type Kind uint8

const (
	KindScalar   Kind = iota // strings, numbers, bools, funcs, structs, nil
	KindSequence             // slices and arrays
	KindMapping              // maps with string keys
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindSequence:
		return "Sequence"
	case KindMapping:
		return "Mapping"
	default:
		return "Unknown"
	}
}

// KindOf classifies a value. Byte slices count as scalars: they carry opaque
// data, not element structure. Maps with non-string keys are scalars too;
// they cannot be addressed by option key.
func KindOf(v any) Kind {
	if v == nil {
		return KindScalar
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindScalar
		}
		return KindSequence
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindMapping
		}
		return KindScalar
	default:
		return KindScalar
	}
}

// Merge recursively merges source into target and returns the result.
//
// Composite source values are merged entry-by-entry with the corresponding
// target value: existing target entries are retained, incoming entries
// override or add. A missing or undefined target branch is treated as an
// empty composite of the source's kind. Scalar source values replace the
// target entry outright, and a composite replacing a scalar wins whole.
//
// When target is a map[string]any it is mutated in place; other mapping
// types are normalized to map[string]any first. A nil target merges into an
// empty mapping. Cycles are not detected: a cyclic source recurses without
// bound.
func Merge(target, source any) any {
	switch KindOf(source) {
	case KindMapping:
		dst := asMapping(target)
		src := toMapping(source)
		for _, key := range src.keys {
			sv := src.values[key]
			if KindOf(sv) == KindScalar {
				dst[key] = sv
				continue
			}
			dst[key] = Merge(dst[key], sv)
		}
		return dst
	case KindSequence:
		dst := asSequence(target)
		src := toSequence(source)
		for i, sv := range src {
			if i < len(dst) {
				if KindOf(sv) == KindScalar {
					dst[i] = sv
				} else {
					dst[i] = Merge(dst[i], sv)
				}
				continue
			}
			if KindOf(sv) == KindScalar {
				dst = append(dst, sv)
			} else {
				dst = append(dst, Merge(nil, sv))
			}
		}
		return dst
	default:
		return source
	}
}

// Copy returns a deep copy of v. Scalars pass through unchanged; sequences
// and mappings are rebuilt with every entry copied recursively, so the
// result shares no composite reference with the input.
//
// Non-exported struct fields, non-string map keys and special scalar kinds
// (times, regexps) are passed through by reference, not cloned.
func Copy(v any) any {
	switch KindOf(v) {
	case KindMapping:
		src := toMapping(v)
		out := make(map[string]any, len(src.keys))
		for _, key := range src.keys {
			out[key] = Copy(src.values[key])
		}
		return out
	case KindSequence:
		src := toSequence(v)
		out := make([]any, len(src))
		for i, item := range src {
			out[i] = Copy(item)
		}
		return out
	default:
		return v
	}
}

// AsMapping returns v as a map[string]any when it is a mapping. A value
// that already is a map[string]any is returned as-is (shared, not copied);
// other string-keyed map types are converted.
func AsMapping(v any) (map[string]any, bool) {
	if KindOf(v) != KindMapping {
		return nil, false
	}
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	src := toMapping(v)
	out := make(map[string]any, len(src.keys))
	for _, k := range src.keys {
		out[k] = src.values[k]
	}
	return out, true
}

// AsSequence returns v as a []any when it is a sequence. A []any is
// returned as-is; other slice and array types are converted.
func AsSequence(v any) ([]any, bool) {
	if KindOf(v) != KindSequence {
		return nil, false
	}
	return toSequence(v), true
}

// mapping is a normalized view of a string-keyed map. Keys are sorted only
// by reflect's iteration, captured once so Merge visits each entry exactly
// once.
type mapping struct {
	keys   []string
	values map[string]any
}

// toMapping normalizes any string-keyed map into a mapping view.
func toMapping(v any) mapping {
	if m, ok := v.(map[string]any); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return mapping{keys: keys, values: m}
	}
	rv := reflect.ValueOf(v)
	keys := make([]string, 0, rv.Len())
	values := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		keys = append(keys, k)
		values[k] = iter.Value().Interface()
	}
	return mapping{keys: keys, values: values}
}

// asMapping returns target as a mutable map[string]any, converting or
// allocating as needed. A non-mapping target is discarded: the incoming
// composite replaces it.
func asMapping(target any) map[string]any {
	if KindOf(target) != KindMapping {
		return make(map[string]any)
	}
	if m, ok := target.(map[string]any); ok {
		return m
	}
	src := toMapping(target)
	out := make(map[string]any, len(src.keys))
	for _, k := range src.keys {
		out[k] = src.values[k]
	}
	return out
}

// toSequence normalizes any slice or array into []any.
func toSequence(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// asSequence returns target as a mutable []any, or an empty slice when the
// target is not a sequence.
func asSequence(target any) []any {
	if KindOf(target) != KindSequence {
		return nil
	}
	return toSequence(target)
}
