package cli

import (
	"fmt"
	"io"
	"strings"

	"syntaxquiz/internal/config"
	"syntaxquiz/internal/verbose"
)

const liveFallbackWarning = "Live UI requested but stdout is not a TTY; falling back to plain output."

// uiModeDecision says whether play takes over the screen.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal is replaced in tests.
var isTerminal = verbose.IsTerminal

// resolveUIMode picks the live or plain front end for play. Verbose logs are
// line oriented, so they always force plain mode.
func resolveUIMode(mode string, verboseOn bool, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = config.UIModeAuto
	}
	if !config.IsUIMode(normalized) {
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
	if verboseOn || normalized == config.UIModePlain {
		return uiModeDecision{}, nil
	}
	tty := isTerminal(stdout)
	if normalized == config.UIModeLive && !tty {
		return uiModeDecision{warning: liveFallbackWarning}, nil
	}
	return uiModeDecision{useLive: tty}, nil
}
