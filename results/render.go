package results

import (
	"fmt"

	"github.com/iedon/game-catalog-go/catalog"
	"github.com/iedon/game-catalog-go/search"
)

const (
	MessageNoQuery   = "No search query provided."
	MessageNoMatches = "No games found matching your search."
)

// TooShortMessage is the hint shown when a query is under minLen characters.
func TooShortMessage(minLen int) string {
	if minLen <= 0 {
		minLen = search.DefaultMinQueryLength
	}
	return fmt.Sprintf("Please enter at least %d characters.", minLen)
}

// Render maps an outcome to the nodes that make up the results surface.
func Render(outcome search.Outcome) []Node {
	switch outcome.Kind {
	case search.Empty:
		return []Node{Message(MessageNoQuery)}
	case search.TooShort:
		return []Node{Message(TooShortMessage(outcome.MinLength))}
	}

	if len(outcome.Entries) == 0 {
		return []Node{Message(MessageNoMatches)}
	}
	nodes := make([]Node, 0, len(outcome.Entries))
	for _, entry := range outcome.Entries {
		nodes = append(nodes, CardNode(entry))
	}
	return nodes
}

// Message builds an informational node.
func Message(text string) Node {
	return Node{Kind: KindMessage, Text: text}
}

// CardNode builds the card node for a single entry.
func CardNode(entry catalog.Entry) Node {
	return Node{
		Kind: KindCard,
		Card: &Card{
			Image:    Image{Src: entry.Image, Alt: entry.Title + " Screenshot"},
			Heading:  entry.Title,
			SizeLine: "File Size: " + entry.FileSize,
			Action:   Action{Href: entry.DownloadLink, Label: "Download", Download: true},
		},
	}
}
