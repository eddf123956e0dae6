package session

import (
	"context"
	"sync"
)

// Task is one in-flight generation request.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	err    error
}

func newTask(cancel context.CancelFunc) *Task {
	if cancel == nil {
		cancel = func() {}
	}
	return &Task{cancel: cancel, done: make(chan struct{})}
}

// Cancel aborts the request. Its result, if any arrives, is discarded.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancel()
}

// Done is closed once the request has finished or been abandoned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err reports why the request did not produce a deck. It is only
// meaningful after Done is closed.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the task completes and returns Err.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

func (t *Task) complete(err error) {
	t.once.Do(func() {
		t.err = err
		t.cancel()
		close(t.done)
	})
}
