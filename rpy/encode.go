package rpy

import "github.com/a96tudor/python-abp/filterlist"

// EncodeStrings walks data depth-first and returns a copy with every text
// value replaced by its UTF-8 byte encoding. Containers are rebuilt, never
// mutated in place; mapping keys, sequence order and pair arity are kept.
// Values of any other kind, including already encoded []byte, numbers and
// booleans, pass through unchanged. Inputs are acyclic filter data, so
// there is no cycle detection.
//
// Dispatch order is fixed: mapping, sequence, pair, text, identity.
func EncodeStrings(data any) any {
	switch data := data.(type) {
	case Mapping:
		// Keys stay strings: Go map keys must be comparable, and a Go
		// string is already an immutable byte sequence.
		out := make(Mapping, len(data))
		for k, v := range data {
			out[k] = EncodeStrings(v)
		}
		return out

	case map[string]any:
		out := make(map[string]any, len(data))
		for k, v := range data {
			out[k] = EncodeStrings(v)
		}
		return out

	case []any:
		out := make([]any, 0, len(data))
		for _, v := range data {
			out = append(out, EncodeStrings(v))
		}
		return out

	case []filterlist.Option:
		out := make([]filterlist.Option, 0, len(data))
		for _, v := range data {
			out = append(out, encodeOption(v))
		}
		return out

	case filterlist.Option:
		return encodeOption(data)

	case string:
		return []byte(data)

	default:
		return data
	}
}

func encodeOption(o filterlist.Option) filterlist.Option {
	return filterlist.Option{EncodeStrings(o[0]), EncodeStrings(o[1])}
}
