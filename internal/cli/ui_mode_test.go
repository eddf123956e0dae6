package cli

import (
	"io"
	"testing"
)

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

func TestResolveUIModeOnTerminal(t *testing.T) {
	stubTerminal(t, true)
	live := map[string]bool{"": true, "auto": true, "live": true, " LIVE ": true, "plain": false, " Plain ": false}
	for mode, want := range live {
		decision, err := resolveUIMode(mode, false, nil)
		if err != nil {
			t.Fatalf("mode %q: %v", mode, err)
		}
		if decision.useLive != want || decision.warning != "" {
			t.Fatalf("mode %q: got %+v, want useLive=%v", mode, decision, want)
		}
	}
}

func TestResolveUIModeWithoutTerminal(t *testing.T) {
	stubTerminal(t, false)
	decision, err := resolveUIMode("auto", false, nil)
	if err != nil || decision.useLive || decision.warning != "" {
		t.Fatalf("auto without tty: %+v, %v", decision, err)
	}
	decision, err = resolveUIMode("live", false, nil)
	if err != nil {
		t.Fatalf("live without tty: %v", err)
	}
	if decision.useLive || decision.warning != liveFallbackWarning {
		t.Fatalf("expected plain fallback with warning, got %+v", decision)
	}
}

func TestResolveUIModeVerboseForcesPlain(t *testing.T) {
	stubTerminal(t, true)
	decision, err := resolveUIMode("live", true, nil)
	if err != nil || decision.useLive {
		t.Fatalf("verbose should force plain output, got %+v, %v", decision, err)
	}
}

func TestResolveUIModeRejectsUnknownMode(t *testing.T) {
	stubTerminal(t, true)
	if _, err := resolveUIMode("fancy", false, nil); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
