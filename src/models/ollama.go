package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	ollama "github.com/ollama/ollama/api"

	"github.com/Protocol-Lattice/go-toolloop/src/chat"
)

// OllamaLLM talks to a local Ollama server through its native chat API.
// Ollama's wire format carries no tool-call identifiers, so the adapter
// synthesizes per-turn IDs; the loop's id echo still round-trips because
// the same adapter strips them on the way back out.
type OllamaLLM struct {
	Client *ollama.Client
	Model  string
}

// NewOllamaLLM connects to OLLAMA_HOST (default http://localhost:11434).
func NewOllamaLLM(model string) (*OllamaLLM, error) {
	host := os.Getenv("OLLAMA_HOST")
	if host == "" {
		host = "http://localhost:11434"
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid OLLAMA_HOST %q: %w", host, err)
	}

	httpClient := &http.Client{
		Timeout: 60 * time.Second,
	}

	return &OllamaLLM{Client: ollama.NewClient(u, httpClient), Model: model}, nil
}

// Chat sends the conversation and tool descriptors and returns the final
// assistant message of a non-streaming exchange.
func (o *OllamaLLM) Chat(ctx context.Context, req Request) (chat.Message, error) {
	wire := &ollama.ChatRequest{
		Model:    o.Model,
		Messages: toOllamaMessages(req.Messages),
		Stream:   new(bool), // non-streaming
	}
	for _, spec := range req.Tools {
		tool, err := toOllamaTool(spec)
		if err != nil {
			return chat.Message{}, fmt.Errorf("tool %s: %w", spec.Name, err)
		}
		wire.Tools = append(wire.Tools, tool)
	}

	var (
		reply    ollama.Message
		received bool
	)
	err := o.Client.Chat(ctx, wire, func(resp ollama.ChatResponse) error {
		reply = resp.Message
		received = true
		return nil
	})
	if err != nil {
		return chat.Message{}, fmt.Errorf("ollama chat: %w", err)
	}
	if !received {
		return chat.Message{}, errors.New("no response from ollama")
	}
	return fromOllamaMessage(reply), nil
}

func toOllamaMessages(msgs []chat.Message) []ollama.Message {
	out := make([]ollama.Message, 0, len(msgs))
	for _, m := range msgs {
		om := ollama.Message{Role: m.Role, Content: m.Content}
		for i, call := range m.ToolCalls {
			args := ollama.ToolCallFunctionArguments{}
			// Best effort: a seeded call may carry malformed text.
			_ = json.Unmarshal([]byte(call.Arguments), &args)
			tc := ollama.ToolCall{}
			tc.Function.Index = i
			tc.Function.Name = call.Name
			tc.Function.Arguments = args
			om.ToolCalls = append(om.ToolCalls, tc)
		}
		if m.Role == chat.RoleTool {
			om.ToolName = m.Name
		}
		out = append(out, om)
	}
	return out
}

// toOllamaTool maps a ToolSpec onto api.Tool through its JSON form, which
// sidesteps the concrete parameter structs the ollama client declares.
func toOllamaTool(spec chat.ToolSpec) (ollama.Tool, error) {
	raw := map[string]any{
		"type": "function",
		"function": map[string]any{
			"name":        spec.Name,
			"description": spec.Description,
			"parameters":  spec.Parameters,
		},
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return ollama.Tool{}, err
	}
	var tool ollama.Tool
	if err := json.Unmarshal(data, &tool); err != nil {
		return ollama.Tool{}, err
	}
	return tool, nil
}

func fromOllamaMessage(m ollama.Message) chat.Message {
	out := chat.Message{Role: m.Role, Content: m.Content}
	if out.Role == "" {
		out.Role = chat.RoleAssistant
	}
	for i, tc := range m.ToolCalls {
		args, err := json.Marshal(tc.Function.Arguments)
		if err != nil {
			args = []byte("{}")
		}
		out.ToolCalls = append(out.ToolCalls, chat.ToolCall{
			ID:        fmt.Sprintf("call_%d", i),
			Name:      tc.Function.Name,
			Arguments: string(args),
		})
	}
	return out
}

var _ Model = (*OllamaLLM)(nil)
