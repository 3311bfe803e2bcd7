package search

import "github.com/iedon/game-catalog-go/catalog"

// Kind identifies which result state an Outcome represents.
type Kind int

const (
	// Empty means no query was submitted.
	Empty Kind = iota
	// TooShort means the normalized query was under the minimum length.
	TooShort
	// Matches carries the (possibly empty) list of matching entries.
	Matches
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case TooShort:
		return "too_short"
	case Matches:
		return "matches"
	default:
		return "unknown"
	}
}

// Outcome is the result of evaluating a query.
type Outcome struct {
	Kind      Kind
	Query     string
	MinLength int
	Entries   []catalog.Entry
}
