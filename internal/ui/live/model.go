package live

import (
	"context"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"syntaxquiz/internal/prompt"
	"syntaxquiz/internal/session"
)

// Session is the quiz controller driven by the UI.
type Session interface {
	Start(ctx context.Context, language string) *session.Task
	SubmitAnswer(answer bool) (bool, error)
	Snapshot() session.Snapshot
	Restart()
	Close()
}

// Options configures the live UI model.
type Options struct {
	NoColor bool
	// Language starts generation immediately when it is supported.
	Language string
}

// Model renders the quiz using Bubble Tea.
type Model struct {
	ctx       context.Context
	session   Session
	snapshots <-chan session.Snapshot
	state     State
	input     textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	review    table.Model
	width     int
	noColor   bool
	language  string
}

// NewModel constructs a live UI model fed by snapshots.
func NewModel(ctx context.Context, sess Session, snapshots <-chan session.Snapshot, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	input := textinput.New()
	input.Placeholder = "Search language"
	input.CharLimit = 32
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	bar := progress.New(progress.WithDefaultGradient())
	if opts.NoColor {
		bar = progress.New(progress.WithFillCharacters('#', '.'), progress.WithoutPercentage())
	}
	bar.Width = 40

	review := table.New(
		table.WithColumns(reviewColumns(0)),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	review.SetStyles(tableStyles(opts.NoColor))

	return Model{
		ctx:       ctx,
		session:   sess,
		snapshots: snapshots,
		state:     NewState(),
		input:     input,
		spinner:   spin,
		progress:  bar,
		review:    review,
		noColor:   opts.NoColor,
		language:  opts.Language,
	}
}

// State returns the current view state.
func (m Model) State() State {
	return m.state
}

// Init waits for the first snapshot and starts the spinner.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForSnapshot(m.snapshots), m.spinner.Tick, textinput.Blink}
	if prompt.IsSupported(m.language) {
		language := m.language
		cmds = append(cmds, func() tea.Msg { return startMsg{language: language} })
	}
	return tea.Batch(cmds...)
}

// Update consumes key presses, snapshots, and timer ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.progress.Width = clamp(typed.Width-10, 10, 80)
		m.review.SetColumns(reviewColumns(typed.Width))
		m.review.SetHeight(clamp(typed.Height-12, 3, 20))
		return m, nil
	case snapshotMsg:
		// The feed only wakes the model; the controller holds the latest state.
		m = m.sync()
		return m, waitForSnapshot(m.snapshots)
	case startMsg:
		m.input.SetValue(typed.language)
		m = m.apply(Event{Kind: EventQueryChanged, Query: typed.language})
		return m.start(typed.language), nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.session.Close()
			return m, tea.Quit
		}
		return m.handleKey(typed)
	}
	if m.state.Screen == ScreenPicker {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state.Screen {
	case ScreenPicker:
		return m.handlePickerKey(key)
	case ScreenLoading:
		if key.String() == "esc" {
			m.session.Restart()
			m = m.sync()
		}
		return m, nil
	case ScreenCard:
		switch key.String() {
		case "right", "t", "y":
			return m.answer(true), nil
		case "left", "f", "n":
			return m.answer(false), nil
		case "q", "esc":
			m.session.Close()
			return m, tea.Quit
		}
		return m, nil
	case ScreenSummary:
		switch key.String() {
		case "enter", "r":
			m.session.Restart()
			m.input.SetValue("")
			m = m.sync()
			return m, nil
		case "q", "esc":
			m.session.Close()
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handlePickerKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.session.Close()
		return m, tea.Quit
	case "up":
		return m.apply(Event{Kind: EventCursorMoved, Delta: -1}), nil
	case "down":
		return m.apply(Event{Kind: EventCursorMoved, Delta: 1}), nil
	case "tab":
		if language, ok := m.state.Highlighted(); ok {
			m.input.SetValue(language)
			m.input.CursorEnd()
			m = m.apply(Event{Kind: EventQueryChanged, Query: language})
		}
		return m, nil
	case "enter":
		if prompt.IsSupported(m.state.Query) {
			return m.start(m.state.Query), nil
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	if m.input.Value() != m.state.Query {
		m = m.apply(Event{Kind: EventQueryChanged, Query: m.input.Value()})
	}
	return m, cmd
}

func (m Model) start(language string) Model {
	m.session.Start(m.ctx, language)
	return m.sync()
}

func (m Model) answer(value bool) Model {
	card, ok := m.state.Snapshot.Current()
	if !ok {
		return m
	}
	correct, err := m.session.SubmitAnswer(value)
	if err != nil {
		return m.sync()
	}
	m = m.apply(Event{Kind: EventAnswered, Answer: AnswerRecord{Question: card.Question, Given: value, Correct: correct}})
	return m.sync()
}

// sync pulls the latest snapshot so key handling never waits on the feed.
func (m Model) sync() Model {
	return m.apply(Event{Kind: EventSnapshot, Snapshot: m.session.Snapshot()})
}

func (m Model) apply(event Event) Model {
	m.state = Reduce(m.state, event)
	if m.state.Screen == ScreenSummary {
		columns := reviewColumns(m.width)
		m.review.SetRows(reviewRows(m.state.Answers, columns[1].Width))
	}
	return m
}

// View renders the current screen.
func (m Model) View() string {
	switch m.state.Screen {
	case ScreenLoading:
		return renderLoading(m.state, m.spinner.View(), m.noColor)
	case ScreenCard:
		return renderCard(m.state, m.progress.ViewAs(m.state.Snapshot.Progress()), m.width, m.noColor)
	case ScreenSummary:
		return renderSummary(m.state, m.review.View(), m.noColor)
	default:
		return renderPicker(m.state, m.input.View(), m.noColor)
	}
}

// snapshotMsg signals that session state changed.
type snapshotMsg session.Snapshot

// startMsg begins generation for a preselected language.
type startMsg struct {
	language string
}

// waitForSnapshot blocks until the session publishes new state.
func waitForSnapshot(snapshots <-chan session.Snapshot) tea.Cmd {
	return func() tea.Msg {
		if snapshots == nil {
			return nil
		}
		snap, ok := <-snapshots
		if !ok {
			return tea.Quit()
		}
		return snapshotMsg(snap)
	}
}
