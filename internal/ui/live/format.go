package live

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatElapsed renders a duration in whole seconds.
func FormatElapsed(d time.Duration) string {
	return fmtInt(int(d/time.Second)) + " seconds"
}

func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// FormatPercentage renders a score percentage with two decimals.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// formatAnswer renders a boolean answer as shown on cards.
func formatAnswer(value bool) string {
	if value {
		return "True"
	}
	return "False"
}

// formatQuestionText collapses whitespace and truncates to limit runes.
func formatQuestionText(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if limit <= 3 || len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

// wrap breaks text into lines no wider than width, splitting on spaces.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if width <= 0 || len(words) == 0 {
		return text
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len([]rune(line))+1+len([]rune(word)) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
