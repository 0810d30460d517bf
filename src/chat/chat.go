// Package chat defines the wire-level conversation types shared by the
// orchestration loop and the model endpoints.
package chat

import (
	"strings"

	"github.com/google/uuid"
)

// Message roles understood by chat-completions style endpoints.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall is one tool invocation requested by the model. Arguments is the
// raw text the model produced; it is expected to be a JSON object but may be
// malformed or empty, so nothing here parses it.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Message is a single conversation entry. ToolCalls is populated only on
// assistant turns; ToolCallID and Name only on tool turns, where ToolCallID
// must echo the ID of a call issued by the immediately preceding assistant
// turn.
type Message struct {
	Role       string
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	Name       string
}

// ToolSpec describes a callable tool to the model: a unique name, a
// human-readable description, and a JSON Schema for its parameters. Strict
// asks the endpoint to reject undeclared argument keys.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any
	Strict      bool
}

// System returns a system-role message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User returns a user-role message.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Assistant returns a plain assistant-role message.
func Assistant(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// AssistantCalls returns an assistant turn carrying the given tool calls,
// as used when seeding a conversation with few-shot tool exchanges.
func AssistantCalls(calls ...ToolCall) Message {
	return Message{Role: RoleAssistant, ToolCalls: calls}
}

// ToolResult returns the tool-role reply to call, echoing its ID and name.
func ToolResult(call ToolCall, content string) Message {
	return Message{Role: RoleTool, ToolCallID: call.ID, Name: call.Name, Content: content}
}

// Call builds a synthetic tool call with a fresh ID. rawArguments should be
// a JSON-encoded object.
func Call(name, rawArguments string) ToolCall {
	return ToolCall{ID: NewCallID(), Name: name, Arguments: rawArguments}
}

// NewCallID returns an opaque call identifier in the shape endpoints emit.
func NewCallID() string {
	return "call_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
