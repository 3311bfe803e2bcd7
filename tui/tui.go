package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iedon/game-catalog-go/results"
	"github.com/iedon/game-catalog-go/search"
)

// Trigger receives raw input on every keystroke. *search.Gate satisfies it.
type Trigger interface {
	Trigger(raw string)
	Stop()
}

// OutcomeMsg carries a debounced search outcome into the program.
type OutcomeMsg struct {
	Outcome search.Outcome
}

// Options configures the terminal browser.
type Options struct {
	SiteName string
	Logger   *slog.Logger
}

// nodeSurface is the result area of the screen. The model owns it and the
// presenter overwrites it on every outcome.
type nodeSurface struct {
	nodes []results.Node
}

func (s *nodeSurface) Replace(nodes []results.Node) {
	s.nodes = nodes
}

// Model is the Bubble Tea model for live catalog search.
type Model struct {
	options   Options
	input     textinput.Model
	trigger   Trigger
	surface   *nodeSurface
	presenter *results.Presenter
	width     int
	quitting  bool
}

// New creates a model that forwards input changes to trigger.
func New(trigger Trigger, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if strings.TrimSpace(opts.SiteName) == "" {
		opts.SiteName = "Game Downloads"
	}

	ti := textinput.New()
	ti.Placeholder = "Search games"
	ti.Prompt = inputPromptStyle.Render("> ")
	ti.CharLimit = 256
	ti.Focus()

	surface := &nodeSurface{}
	return Model{
		options:   opts,
		input:     ti,
		trigger:   trigger,
		surface:   surface,
		presenter: results.NewPresenter(surface),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quitting = true
			if m.trigger != nil {
				m.trigger.Stop()
			}
			return m, tea.Quit
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if value := m.input.Value(); value != before && m.trigger != nil {
			m.trigger.Trigger(value)
		}
		return m, cmd

	case OutcomeMsg:
		if err := m.presenter.Show(msg.Outcome); err != nil {
			m.options.Logger.Warn("show results", "error", err)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.options.SiteName))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	for _, node := range m.surface.nodes {
		b.WriteString(m.renderNode(node))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("esc to quit"))
	return b.String()
}

// Nodes returns what the result area currently shows.
func (m Model) Nodes() []results.Node {
	return append([]results.Node(nil), m.surface.nodes...)
}

func (m Model) renderNode(node results.Node) string {
	if node.Kind != results.KindCard || node.Card == nil {
		return messageStyle.Render(node.Text)
	}
	card := node.Card
	lines := []string{
		headingStyle.Render(card.Heading),
		card.SizeLine,
		actionStyle.Render(card.Action.Label + ": " + card.Action.Href),
	}
	style := cardStyle
	if m.width > 0 {
		style = style.Width(min(m.width-2, 72))
	}
	return style.Render(strings.Join(lines, "\n"))
}
