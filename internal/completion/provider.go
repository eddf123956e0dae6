package completion

import (
	"context"
	"net/http"
)

// Conversation roles understood by every provider.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one prior turn of a conversation.
type Message struct {
	Role string
	Text string
}

// Request is a chat-shaped completion request: prior turns followed by the
// new user message.
type Request struct {
	History []Message
	Message string
}

// Messages flattens history and the new message into one ordered list.
func (r Request) Messages() []Message {
	out := make([]Message, 0, len(r.History)+1)
	for _, msg := range r.History {
		role := msg.Role
		if role == "" {
			role = RoleUser
		}
		out = append(out, Message{Role: role, Text: msg.Text})
	}
	if r.Message != "" {
		out = append(out, Message{Role: RoleUser, Text: r.Message})
	}
	return out
}

// Provider returns the raw text a completion service produces for a request.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// HTTPDoer abstracts HTTP clients used by providers.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
