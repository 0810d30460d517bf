// Package models provides the Model Endpoint implementations the
// orchestration loop talks to: an OpenAI-compatible client covering the
// hosted endpoints, a native Ollama client for local inference, and a
// scripted stand-in for tests and offline demos.
package models

import (
	"context"

	"github.com/Protocol-Lattice/go-toolloop/src/chat"
)

// Request is one outbound round-trip: the full conversation so far plus
// the descriptors of every tool the model may call. ToolChoice follows the
// chat-completions values ("auto", "none", "required"); empty means auto.
// AllowParallelCalls permits the model to request several tool calls in a
// single assistant turn.
type Request struct {
	Messages           []chat.Message
	Tools              []chat.ToolSpec
	ToolChoice         string
	AllowParallelCalls bool
}

// Model is a conversational endpoint capable of tool calling. Chat blocks
// until one assistant message (content and/or tool calls) is available, or
// returns a transport error which callers surface rather than retry.
type Model interface {
	Chat(ctx context.Context, req Request) (chat.Message, error)
}
