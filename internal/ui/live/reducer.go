package live

import (
	"slices"

	"syntaxquiz/internal/prompt"
	"syntaxquiz/internal/session"
)

// NewState returns the picker with every language listed.
func NewState() State {
	return State{Screen: ScreenPicker, Matches: prompt.Languages()}
}

// Reduce applies an event to view state.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventQueryChanged:
		state.Query = event.Query
		state.Matches = prompt.FilterLanguages(event.Query)
		state.Cursor = 0
	case EventCursorMoved:
		state.Cursor = clamp(state.Cursor+event.Delta, 0, len(state.Matches)-1)
	case EventSnapshot:
		previous := state.Snapshot.Phase
		state.Snapshot = event.Snapshot
		state.Screen = screenFor(event.Snapshot.Phase)
		if event.Snapshot.Phase == session.PhaseLoading && previous != session.PhaseLoading {
			state.Answers = nil
		}
		if event.Snapshot.Phase == session.PhaseIdle && previous != session.PhaseIdle {
			state.Answers = nil
			state.Query = ""
			state.Matches = prompt.Languages()
			state.Cursor = 0
		}
	case EventAnswered:
		state.Answers = append(slices.Clone(state.Answers), event.Answer)
	}
	return state
}

func screenFor(phase session.Phase) Screen {
	switch phase {
	case session.PhaseLoading:
		return ScreenLoading
	case session.PhaseActive:
		return ScreenCard
	case session.PhaseFinished:
		return ScreenSummary
	default:
		return ScreenPicker
	}
}

func clamp(value, low, high int) int {
	if high < low {
		return low
	}
	return min(max(value, low), high)
}
