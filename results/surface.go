package results

import (
	"errors"

	"github.com/iedon/game-catalog-go/search"
)

// ErrSurfaceUnavailable is returned when there is nowhere to render results.
var ErrSurfaceUnavailable = errors.New("results surface unavailable")

// Surface receives the complete set of nodes to display. Each call replaces
// whatever the surface showed before.
type Surface interface {
	Replace(nodes []Node)
}

// Presenter renders outcomes onto a surface it owns.
type Presenter struct {
	surface Surface
}

// NewPresenter returns a presenter for surface. A nil surface is allowed;
// Show then reports ErrSurfaceUnavailable without side effects.
func NewPresenter(surface Surface) *Presenter {
	return &Presenter{surface: surface}
}

// Show renders outcome and overwrites the surface with the result.
func (p *Presenter) Show(outcome search.Outcome) error {
	if p == nil || p.surface == nil {
		return ErrSurfaceUnavailable
	}
	p.surface.Replace(Render(outcome))
	return nil
}
