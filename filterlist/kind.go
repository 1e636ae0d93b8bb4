package filterlist

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind classifies a parsed filter list line by its syntactic role.
// The set is closed: every line the upstream parser produces falls into
// exactly one of these kinds.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindHeader   // header
	KindMetadata // metadata
	KindEmpty    // empty
	KindComment  // comment
	KindInclude  // include
	KindFilter   // filter

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)
