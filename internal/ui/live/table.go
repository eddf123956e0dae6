package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const minQuestionColumn = 20

// reviewColumns sizes the summary table for the terminal width.
func reviewColumns(width int) []table.Column {
	question := 56
	if width > 0 {
		question = max(width-4-8-10-6, minQuestionColumn)
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: question},
		{Title: "You", Width: 8},
		{Title: "Result", Width: 10},
	}
}

// tableStyles returns table styles for the summary.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// reviewRows converts answer records into table rows.
func reviewRows(answers []AnswerRecord, questionWidth int) []table.Row {
	rows := make([]table.Row, 0, len(answers))
	for i, answer := range answers {
		result := "wrong"
		if answer.Correct {
			result = "correct"
		}
		rows = append(rows, table.Row{
			pad2(i + 1),
			formatQuestionText(answer.Question, questionWidth),
			formatAnswer(answer.Given),
			result,
		})
	}
	return rows
}

func pad2(value int) string {
	if value >= 10 {
		return fmtInt(value)
	}
	return "0" + fmtInt(value)
}
