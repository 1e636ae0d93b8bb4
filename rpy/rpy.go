// Package rpy converts parsed filter list lines into flat dictionaries
// with byte encoded strings, the only shape the rPython conversion layer
// on the R side can consume.
package rpy

import "github.com/a96tudor/python-abp/filterlist"

// Parser is the upstream filter list line parser. Its grammar and error
// taxonomy are its own concern; this package only adapts its output.
type Parser interface {
	ParseLine(line string) (filterlist.Line, error)
}

// ParseFunc adapts a plain parse function to the Parser interface.
type ParseFunc func(line string) (filterlist.Line, error)

func (f ParseFunc) ParseLine(line string) (filterlist.Line, error) { return f(line) }

// Bridge turns filter list lines into byte encoded dictionaries using an
// upstream parser. A Bridge holds no mutable state and is safe for
// concurrent use.
type Bridge struct {
	parser Parser
}

// NewBridge creates a Bridge on top of the given parser.
func NewBridge(p Parser) *Bridge {
	if p == nil {
		panic("bridge parser cannot be nil")
	}

	return &Bridge{parser: p}
}

// LineToDict parses one filter list line and returns its Mapping with all
// strings re-encoded as UTF-8 byte slices. Errors from the parser are
// returned as is, without wrapping.
func (b *Bridge) LineToDict(line string) (Mapping, error) {
	parsed, err := b.parser.ParseLine(line)
	if err != nil {
		return nil, err
	}

	return EncodeStrings(ToMapping(parsed)).(Mapping), nil
}

// RawLineToDict is LineToDict for a byte encoded input line.
func (b *Bridge) RawLineToDict(line []byte) (Mapping, error) {
	return b.LineToDict(string(line))
}
