package live

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"syntaxquiz/internal/session"
)

func TestFeedKeepsNewestSnapshot(t *testing.T) {
	feed := NewFeed()
	feed.Publish(session.Snapshot{Phase: session.PhaseLoading})
	feed.Publish(session.Snapshot{Phase: session.PhaseActive})
	got := <-feed.C()
	if got.Phase != session.PhaseActive {
		t.Fatalf("expected newest snapshot, got %s", got.Phase)
	}
	feed.Close()
	feed.Publish(session.Snapshot{})
	if _, ok := <-feed.C(); ok {
		t.Fatalf("expected closed feed")
	}
	feed.Close()
}

func TestWaitForSnapshotQuitsOnClosedFeed(t *testing.T) {
	feed := NewFeed()
	feed.Close()
	if _, ok := waitForSnapshot(feed.C())().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg from a closed feed")
	}
}
