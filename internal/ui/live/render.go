package live

import (
	"github.com/charmbracelet/lipgloss"

	"syntaxquiz/internal/prompt"
)

const maxPickerRows = 8

// renderPicker renders the language search box and matching languages.
func renderPicker(state State, input string, noColor bool) string {
	lines := []string{
		stylize("Syntax Quiz", noColor, lipgloss.Color("33")),
		"",
		input,
		"",
	}
	if len(state.Matches) == 0 {
		lines = append(lines, stylize("No matching languages", noColor, lipgloss.Color("242")))
	}
	start := 0
	if state.Cursor >= maxPickerRows {
		start = state.Cursor - maxPickerRows + 1
	}
	end := min(start+maxPickerRows, len(state.Matches))
	for i := start; i < end; i++ {
		marker := "  "
		line := state.Matches[i]
		if i == state.Cursor {
			marker = "> "
			line = stylize(line, noColor, lipgloss.Color("212"))
		}
		lines = append(lines, marker+line)
	}
	hint := "tab complete | enter generate | esc quit"
	if state.Query != "" && !prompt.IsSupported(state.Query) {
		hint = "tab complete | type a full language name to generate | esc quit"
	}
	lines = append(lines, "", stylize(hint, noColor, lipgloss.Color("244")))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderLoading renders the spinner while questions are generated.
func renderLoading(state State, spinner string, noColor bool) string {
	line := spinner + " Generating questions..."
	if state.Snapshot.Language != "" {
		line += " (" + state.Snapshot.Language + ")"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		line,
		"",
		stylize("esc cancel", noColor, lipgloss.Color("244")),
	)
}

// renderCard renders the front card with progress and score.
func renderCard(state State, bar string, width int, noColor bool) string {
	snap := state.Snapshot
	card, ok := snap.Current()
	if !ok {
		return ""
	}
	textWidth := 60
	if width > 0 {
		textWidth = clamp(width-8, 20, 100)
	}
	box := lipgloss.NewStyle().Padding(1, 2)
	if !noColor {
		box = box.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63"))
	}
	header := snap.Language + " | Question " + fmtInt(snap.Answered()+1) + " of " + fmtInt(snap.Total) +
		" | Score " + fmtInt(snap.Score)
	lines := []string{
		stylize(header, noColor, lipgloss.Color("33")),
		bar,
		box.Render(wrap(card.Question, textWidth)),
	}
	if feedback := renderFeedback(state, noColor); feedback != "" {
		lines = append(lines, feedback)
	}
	lines = append(lines, stylize("<- / f false | t / -> true | q quit", noColor, lipgloss.Color("244")))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderFeedback reports whether the previous answer was right.
func renderFeedback(state State, noColor bool) string {
	if len(state.Answers) == 0 {
		return ""
	}
	last := state.Answers[len(state.Answers)-1]
	if last.Correct {
		return stylize("Correct!", noColor, lipgloss.Color("42"))
	}
	return stylize("Wrong, the answer was "+formatAnswer(!last.Given)+".", noColor, lipgloss.Color("196"))
}

// renderSummary renders the end-of-quiz summary.
func renderSummary(state State, review string, noColor bool) string {
	snap := state.Snapshot
	lines := []string{
		stylize("Quiz Summary", noColor, lipgloss.Color("33")),
		"",
		"Correct answers: " + fmtInt(snap.Score),
		"Time taken: " + FormatElapsed(snap.Elapsed()),
	}
	if snap.Total > 0 {
		lines = append(lines, "Percentage: "+FormatPercentage(snap.Percentage()))
	}
	if len(state.Answers) > 0 {
		lines = append(lines, "", review)
	}
	lines = append(lines, "", stylize("enter play again | q quit", noColor, lipgloss.Color("244")))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
