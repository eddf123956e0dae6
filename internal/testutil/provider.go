package testutil

import (
	"context"
	"sync"

	"syntaxquiz/internal/completion"
)

// Reply is one scripted completion result.
type Reply struct {
	Text string
	Err  error
	// Gate, when set, holds the reply until it is closed.
	Gate <-chan struct{}
	// IgnoreCancel keeps a gated reply waiting even after its context ends,
	// mimicking a transport that does not honour cancellation.
	IgnoreCancel bool
}

// ScriptedProvider is a completion.Provider that answers calls in order
// from a fixed script. The last reply repeats once the script runs out.
type ScriptedProvider struct {
	mu       sync.Mutex
	replies  []Reply
	requests []completion.Request
}

var _ completion.Provider = (*ScriptedProvider)(nil)

// NewScriptedProvider returns a provider that plays replies in order.
func NewScriptedProvider(replies ...Reply) *ScriptedProvider {
	return &ScriptedProvider{replies: replies}
}

// Complete records req and returns the next scripted reply.
func (p *ScriptedProvider) Complete(ctx context.Context, req completion.Request) (string, error) {
	p.mu.Lock()
	index := len(p.requests)
	p.requests = append(p.requests, req)
	var reply Reply
	if len(p.replies) > 0 {
		if index >= len(p.replies) {
			index = len(p.replies) - 1
		}
		reply = p.replies[index]
	}
	p.mu.Unlock()

	if reply.Gate != nil {
		if reply.IgnoreCancel {
			<-reply.Gate
		} else {
			select {
			case <-reply.Gate:
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return reply.Text, reply.Err
}

// Calls reports how many requests have been received.
func (p *ScriptedProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

// Requests returns a copy of the received requests.
func (p *ScriptedProvider) Requests() []completion.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]completion.Request, len(p.requests))
	copy(out, p.requests)
	return out
}
