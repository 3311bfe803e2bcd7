package search

import (
	"log/slog"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/iedon/game-catalog-go/catalog"
)

// DefaultWindow is the quiescence period a Gate waits after the last trigger.
const DefaultWindow = 300 * time.Millisecond

// GateOptions configures a Gate.
type GateOptions struct {
	Clock     clock.Clock
	Window    time.Duration
	MinLength int
	Logger    *slog.Logger
}

// Gate debounces live query input. Each Trigger replaces the single pending
// evaluation; only the last trigger of a burst is evaluated, once the input
// has been quiet for the configured window.
type Gate struct {
	clock   clock.Clock
	window  time.Duration
	minLen  int
	entries []catalog.Entry
	emit    func(Outcome)
	logger  *slog.Logger

	mu      sync.Mutex
	pending *evaluation
	stopped bool

	emitMu sync.Mutex
}

type evaluation struct {
	raw    string
	timer  clock.Timer
	cancel chan struct{}
}

// NewGate builds a gate over the catalog that reports each evaluation to emit.
func NewGate(c *catalog.Catalog, emit func(Outcome), opts GateOptions) *Gate {
	if opts.Clock == nil {
		opts.Clock = clock.NewClock()
	}
	if opts.Window <= 0 {
		opts.Window = DefaultWindow
	}
	if opts.MinLength <= 0 {
		opts.MinLength = DefaultMinQueryLength
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if emit == nil {
		emit = func(Outcome) {}
	}
	return &Gate{
		clock:   opts.Clock,
		window:  opts.Window,
		minLen:  opts.MinLength,
		entries: c.Entries(),
		emit:    emit,
		logger:  opts.Logger,
	}
}

// Trigger records the current raw input and (re)starts the quiescence window.
func (g *Gate) Trigger(raw string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stopped {
		return
	}
	g.cancelLocked()

	ev := &evaluation{
		raw:    raw,
		timer:  g.clock.NewTimer(g.window),
		cancel: make(chan struct{}),
	}
	g.pending = ev
	go g.await(ev)
}

// hasPending reports whether an evaluation is scheduled.
func (g *Gate) hasPending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending != nil
}

// Stop cancels any pending evaluation and ignores later triggers.
func (g *Gate) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelLocked()
	g.stopped = true
}

func (g *Gate) cancelLocked() {
	if g.pending == nil {
		return
	}
	g.pending.timer.Stop()
	close(g.pending.cancel)
	g.pending = nil
}

func (g *Gate) await(ev *evaluation) {
	select {
	case <-ev.cancel:
		return
	case <-ev.timer.C():
	}

	g.emitMu.Lock()
	defer g.emitMu.Unlock()

	g.mu.Lock()
	if g.pending != ev {
		g.mu.Unlock()
		return
	}
	g.pending = nil
	g.mu.Unlock()

	outcome := Evaluate(ev.raw, g.minLen, g.entries)
	g.logger.Debug("search", "query", outcome.Query, "state", outcome.Kind.String(), "matches", len(outcome.Entries))
	g.emit(outcome)
}
