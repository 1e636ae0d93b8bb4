// Package filterlist defines the parsed representation of individual
// ad-filter list lines: a closed set of tagged record variants, one per
// syntactic line kind.
package filterlist

// Line is a single parsed filter list line. Concrete variants form a
// closed set matching the Kind enum; each one carries the fixed field
// set the upstream parser fills in for that kind.
type Line interface {
	Kind() Kind
}

// Header is the filter list opening line, e.g. "[Adblock Plus 2.0]".
type Header struct {
	Version string `json:"version"`
}

func (Header) Kind() Kind { return KindHeader }

// Metadata is a metadata comment line, e.g. "! Title: Example list".
type Metadata struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (Metadata) Kind() Kind { return KindMetadata }

// Empty is a line with no content.
type Empty struct{}

func (Empty) Kind() Kind { return KindEmpty }

// Comment is a plain comment line, e.g. "! Comment".
type Comment struct {
	Text string `json:"text"`
}

func (Comment) Kind() Kind { return KindComment }

// Include is a list inclusion instruction, e.g. "%include other.txt%".
type Include struct {
	Target string `json:"target"`
}

func (Include) Kind() Kind { return KindInclude }

// Filter is an actual filter rule. Selector describes what the filter
// matches and Options holds the (name, value) pairs attached to the rule.
type Filter struct {
	Text     string         `json:"text"`
	Selector map[string]any `json:"selector"`
	Action   string         `json:"action"`
	Options  []Option       `json:"options"`
}

func (Filter) Kind() Kind { return KindFilter }

// Option is a single filter option as a fixed (name, value) pair.
// The value may itself be a nested sequence, e.g. the domain option
// holds a list of (domain, include) pairs.
type Option [2]any

// NewOption builds an Option pair from a name and a value.
func NewOption(name string, value any) Option {
	return Option{name, value}
}

func (o Option) Name() any  { return o[0] }
func (o Option) Value() any { return o[1] }
