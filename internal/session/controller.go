// Package session drives a single quiz: generation, answering, scoring and
// timing. All state changes go through one mutex; responses that arrive for
// a superseded or cancelled request are dropped.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"syntaxquiz/internal/completion"
	"syntaxquiz/internal/prompt"
	"syntaxquiz/internal/quiz"
	"syntaxquiz/internal/verbose"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a Controller.
type Options struct {
	Clock Clock
	// LogWriter receives prompts, raw responses and generation failures.
	LogWriter io.Writer
	NoColor   bool
	// OnChange observes every state transition in order. It must not call
	// back into mutating Controller methods.
	OnChange func(Snapshot)
}

// Controller owns the state of one quiz session.
type Controller struct {
	provider completion.Provider
	clock    Clock
	log      *verbose.Logger
	onChange func(Snapshot)

	mu         sync.Mutex
	notifyMu   sync.Mutex
	state      Snapshot
	generation uint64
	task       *Task
	closed     bool
}

// New constructs a Controller around provider.
func New(provider completion.Provider, opts Options) *Controller {
	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}
	return &Controller{
		provider: provider,
		clock:    clock,
		log:      verbose.New(opts.LogWriter, verbose.Options{NoColor: opts.NoColor}),
		onChange: opts.OnChange,
		state:    Snapshot{Phase: PhaseIdle},
	}
}

// Generate requests a deck for language and waits for the result. A failed
// or empty generation leaves the session finished with no questions; the
// returned error is diagnostic only.
func (c *Controller) Generate(ctx context.Context, language string) error {
	return c.Start(ctx, language).Wait()
}

// Start requests a deck for language without waiting. Any earlier request
// is cancelled and its result discarded.
func (c *Controller) Start(ctx context.Context, language string) *Task {
	if ctx == nil {
		ctx = context.Background()
	}
	taskCtx, cancel := context.WithCancel(ctx)
	task := newTask(cancel)

	gen, err := c.begin(language, task)
	if err != nil {
		task.complete(err)
		return task
	}
	go func() {
		task.complete(c.run(taskCtx, gen, language))
	}()
	return task
}

// SubmitAnswer scores answer against the card on display and advances the
// deck. It reports whether the answer was correct.
func (c *Controller) SubmitAnswer(answer bool) (bool, error) {
	c.mu.Lock()
	if c.state.Phase != PhaseActive || len(c.state.Deck) == 0 {
		c.mu.Unlock()
		return false, ErrNotActive
	}
	card := c.state.Deck[0]
	correct := card.Answer == answer
	if correct {
		c.state.Score++
	}
	c.state.Deck = c.state.Deck[1:]
	if len(c.state.Deck) == 0 {
		c.state.EndedAt = c.clock.Now()
		c.state.Phase = PhaseFinished
	}
	c.publishLocked()
	return correct, nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyLocked()
}

// Restart abandons any in-flight request and returns to idle.
func (c *Controller) Restart() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	task := c.task
	c.task = nil
	c.generation++
	c.state = Snapshot{Phase: PhaseIdle}
	c.publishLocked()
	task.Cancel()
}

// Close cancels the in-flight request. Later requests fail with ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.generation++
	task := c.task
	c.task = nil
	c.mu.Unlock()
	task.Cancel()
}

func (c *Controller) begin(language string, task *Task) (uint64, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return 0, ErrClosed
	}
	previous := c.task
	c.task = task
	c.generation++
	gen := c.generation
	c.state = Snapshot{
		Phase:     PhaseLoading,
		Language:  language,
		StartedAt: c.clock.Now(),
	}
	c.publishLocked()
	previous.Cancel()
	return gen, nil
}

func (c *Controller) run(ctx context.Context, gen uint64, language string) error {
	req := prompt.BuildRequest(language)
	for _, msg := range req.Messages() {
		c.log.Block(fmt.Sprintf("LLM %s turn", msg.Role), msg.Text, verbose.StylePrompt)
	}

	started := time.Now()
	raw, err := c.provider.Complete(ctx, req)
	if err != nil {
		err = fmt.Errorf("generate %s questions: %w", language, err)
		if !c.finish(gen, nil) {
			return errors.Join(ErrSuperseded, err)
		}
		c.log.Logf(verbose.StyleError, "generation failed: %v", err)
		return err
	}
	c.log.Block("LLM output", raw, verbose.StyleOutput)

	deck := quiz.ParseQuestions(raw)
	c.log.Logf(verbose.StyleInfo, "parsed %d questions in %s", len(deck), time.Since(started).Round(time.Millisecond))
	if !c.finish(gen, deck) {
		return ErrSuperseded
	}
	if len(deck) == 0 {
		c.log.Logf(verbose.StyleError, "no questions parsed from response")
		return ErrNoQuestions
	}
	return nil
}

// finish installs deck if gen is still current. An empty deck ends the
// session immediately, which looks the same as a quiz with no questions.
func (c *Controller) finish(gen uint64, deck quiz.Deck) bool {
	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		return false
	}
	c.task = nil
	c.state.Deck = deck.Clone()
	c.state.Total = len(deck)
	c.state.Score = 0
	if len(deck) == 0 {
		c.state.Deck = quiz.Deck{}
		c.state.Phase = PhaseFinished
	} else {
		c.state.Phase = PhaseActive
	}
	c.publishLocked()
	return true
}

// publishLocked releases c.mu and delivers the new state to OnChange while
// holding notifyMu so observers see transitions in order.
func (c *Controller) publishLocked() {
	if c.onChange == nil {
		c.mu.Unlock()
		return
	}
	snap := c.copyLocked()
	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()
	c.onChange(snap)
}

func (c *Controller) copyLocked() Snapshot {
	snap := c.state
	snap.Deck = c.state.Deck.Clone()
	return snap
}
