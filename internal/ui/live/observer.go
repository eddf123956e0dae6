package live

import (
	"context"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"syntaxquiz/internal/session"
)

// Feed forwards session snapshots to the UI. Publish never blocks; when the
// UI falls behind only the newest snapshot is kept.
type Feed struct {
	mu        sync.Mutex
	snapshots chan session.Snapshot
	closed    bool
	closeOnce sync.Once
}

// NewFeed returns an open feed.
func NewFeed() *Feed {
	return &Feed{snapshots: make(chan session.Snapshot, 1)}
}

// Publish enqueues snap, replacing any snapshot not yet consumed. It has the
// signature of session.Options.OnChange.
func (f *Feed) Publish(snap session.Snapshot) {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	select {
	case f.snapshots <- snap:
		return
	default:
	}
	select {
	case <-f.snapshots:
	default:
	}
	select {
	case f.snapshots <- snap:
	default:
	}
}

// C returns the receive side of the feed.
func (f *Feed) C() <-chan session.Snapshot {
	return f.snapshots
}

// Close stops delivery and ends the UI loop.
func (f *Feed) Close() {
	if f == nil {
		return
	}
	f.closeOnce.Do(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.closed = true
		close(f.snapshots)
	})
}

// RunOptions configures Run.
type RunOptions struct {
	Options
	Input  io.Reader
	Output io.Writer
}

// Run drives the quiz in the terminal until the user quits. The session is
// closed on exit so in-flight generation is cancelled.
func Run(ctx context.Context, sess Session, feed *Feed, opts RunOptions) error {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	programOpts := []tea.ProgramOption{tea.WithOutput(opts.Output), tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	model := NewModel(ctx, sess, feed.C(), opts.Options)
	program := tea.NewProgram(model, programOpts...)
	defer feed.Close()
	defer sess.Close()
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
