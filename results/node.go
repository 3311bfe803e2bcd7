package results

// NodeKind distinguishes informational messages from result cards.
type NodeKind string

const (
	KindMessage NodeKind = "message"
	KindCard    NodeKind = "card"
)

// Node describes a single element placed on the results surface.
type Node struct {
	Kind NodeKind `json:"kind"`
	Text string   `json:"text,omitempty"`
	Card *Card    `json:"card,omitempty"`
}

// Card is the display form of one catalog entry.
type Card struct {
	Image    Image  `json:"image"`
	Heading  string `json:"heading"`
	SizeLine string `json:"sizeLine"`
	Action   Action `json:"action"`
}

// Image references a static screenshot asset.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Action is the download link of a card. Download marks it as a forced
// download rather than in-page navigation.
type Action struct {
	Href     string `json:"href"`
	Label    string `json:"label"`
	Download bool   `json:"download"`
}
