package verbose

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ansiReset   = "\x1b[0m"
	ansiBold    = "\x1b[1m"
	ansiDim     = "\x1b[2m"
	ansiMagenta = "\x1b[35m"
	ansiRed     = "\x1b[31m"
	ansiCyan    = "\x1b[36m"
	ansiBlue    = "\x1b[34m"
	ansiGray    = "\x1b[90m"
)

var isTerminal = term.IsTerminal

// Style selects how a diagnostic line is rendered.
type Style int

const (
	StyleDefault Style = iota
	StyleDim
	StylePrompt
	StyleOutput
	StyleInfo
	StyleError
)

// palette controls ANSI styling for diagnostic output.
type palette struct {
	enabled bool
}

// paletteFor selects a palette based on the writer and color settings.
func paletteFor(writer io.Writer, noColor bool) palette {
	if noColor {
		return palette{enabled: false}
	}
	return palette{enabled: ShouldUseStyling(writer)}
}

// ShouldUseStyling reports whether ANSI styling should be enabled for writer.
func ShouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	return IsTerminal(writer)
}

// IsTerminal reports whether writer is backed by a terminal file descriptor.
func IsTerminal(writer io.Writer) bool {
	switch w := writer.(type) {
	case *os.File:
		return w != nil && isTerminal(int(w.Fd()))
	case interface{ Fd() uintptr }:
		return isTerminal(int(w.Fd()))
	}
	return false
}

func (p palette) apply(style Style, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case StyleDim:
		return ansiDim + ansiGray + text + ansiReset
	case StylePrompt:
		return ansiBold + ansiCyan + text + ansiReset
	case StyleOutput:
		return ansiBold + ansiMagenta + text + ansiReset
	case StyleInfo:
		return ansiBold + ansiBlue + text + ansiReset
	case StyleError:
		return ansiBold + ansiRed + text + ansiReset
	default:
		return text
	}
}
