package live

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"syntaxquiz/internal/session"
	"syntaxquiz/internal/testutil"
)

const goDeck = `QuestionCard(question: "Go has goroutines.", answer: true)
QuestionCard(question: "Go has classes.", answer: false)
`

func newTestModel(t *testing.T, replies ...testutil.Reply) (Model, *session.Controller) {
	t.Helper()
	feed := NewFeed()
	t.Cleanup(feed.Close)
	ctrl := session.New(testutil.NewScriptedProvider(replies...), session.Options{OnChange: feed.Publish})
	t.Cleanup(ctrl.Close)
	return NewModel(testutil.Context(t, 0), ctrl, feed.C(), Options{NoColor: true}), ctrl
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, key := range keys {
		next, _ := m.Update(key)
		m = next.(Model)
	}
	return m
}

func runes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func waitForPhase(t *testing.T, m Model, ctrl *session.Controller, phase session.Phase) Model {
	t.Helper()
	testutil.Eventually(t, time.Second, 0, func() bool { return ctrl.Snapshot().Phase == phase }, "session did not reach "+phase.String())
	next, _ := m.Update(snapshotMsg{})
	return next.(Model)
}

func TestModelPlaysFullRound(t *testing.T) {
	runWithTimeout(t, 3*time.Second, func() {
		m, ctrl := newTestModel(t, testutil.Reply{Text: goDeck})

		m = press(t, m, runes("Go"))
		if m.State().Query != "Go" {
			t.Fatalf("expected query Go, got %q", m.State().Query)
		}
		m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m = waitForPhase(t, m, ctrl, session.PhaseActive)
		if m.State().Screen != ScreenCard {
			t.Fatalf("expected card screen, got %d", m.State().Screen)
		}
		if view := m.View(); !strings.Contains(view, "Go has goroutines.") {
			t.Fatalf("expected first question in view:\n%s", view)
		}

		m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, runes("t"))
		state := m.State()
		if state.Screen != ScreenSummary || state.Snapshot.Score != 1 {
			t.Fatalf("expected summary with score 1, got screen %d score %d", state.Screen, state.Snapshot.Score)
		}
		if len(state.Answers) != 2 || !state.Answers[0].Correct || state.Answers[1].Correct {
			t.Fatalf("unexpected answers %+v", state.Answers)
		}
		if view := m.View(); !strings.Contains(view, "Percentage: 50.00%") {
			t.Fatalf("expected percentage in summary:\n%s", view)
		}

		m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		if m.State().Screen != ScreenPicker || ctrl.Snapshot().Phase != session.PhaseIdle {
			t.Fatalf("expected play again to return to picker")
		}
	})
}

func TestModelEnterRequiresExactLanguage(t *testing.T) {
	m, ctrl := newTestModel(t, testutil.Reply{Text: goDeck})
	m = press(t, m, runes("ja"), tea.KeyMsg{Type: tea.KeyEnter})
	if ctrl.Snapshot().Phase != session.PhaseIdle {
		t.Fatalf("expected partial query not to start generation")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyTab})
	if m.State().Query != "JavaScript" {
		t.Fatalf("expected tab to complete highlighted language, got %q", m.State().Query)
	}
}

func TestModelShowsSummaryWhenGenerationFails(t *testing.T) {
	runWithTimeout(t, 3*time.Second, func() {
		m, ctrl := newTestModel(t, testutil.Reply{Text: "no questions here"})
		next, _ := m.Update(startMsg{language: "Rust"})
		m = waitForPhase(t, next.(Model), ctrl, session.PhaseFinished)
		if m.State().Screen != ScreenSummary {
			t.Fatalf("expected summary screen, got %d", m.State().Screen)
		}
		if view := m.View(); !strings.Contains(view, "Correct answers: 0") || strings.Contains(view, "Percentage") {
			t.Fatalf("unexpected empty summary:\n%s", view)
		}
	})
}

func TestModelQuitClosesSession(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)
	m, ctrl := newTestModel(t, testutil.Reply{Text: goDeck, Gate: gate})
	next, _ := m.Update(startMsg{language: "Go"})
	m = next.(Model)
	if m.State().Screen != ScreenLoading {
		t.Fatalf("expected loading screen, got %d", m.State().Screen)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if err := ctrl.Generate(testutil.Context(t, 0), "Go"); err != session.ErrClosed {
		t.Fatalf("expected closed session, got %v", err)
	}
}
