package models

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	"github.com/Protocol-Lattice/go-toolloop/src/chat"
)

// GitHubModelsBaseURL is the hosted model catalog's OpenAI-compatible
// inference endpoint.
const GitHubModelsBaseURL = "https://models.github.ai/inference"

// OpenAILLM talks to any OpenAI-compatible chat-completions endpoint:
// api.openai.com, an Azure OpenAI deployment, or the GitHub Models catalog.
type OpenAILLM struct {
	Client *openai.Client
	Model  string
}

// NewOpenAILLM builds a client for api.openai.com using OPENAI_API_KEY
// (falling back to OPENAI_KEY).
func NewOpenAILLM(model string) *OpenAILLM {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_KEY") // fallback
	}
	return &OpenAILLM{Client: openai.NewClient(apiKey), Model: model}
}

// NewOpenAICompatibleLLM builds a client for an arbitrary OpenAI-compatible
// base URL, e.g. the GitHub Models endpoint or an Ollama server's
// compatibility layer.
func NewOpenAICompatibleLLM(baseURL, apiKey, model string) *OpenAILLM {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &OpenAILLM{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// NewAzureLLM builds a client for an Azure OpenAI resource. deployment is
// the chat deployment name and doubles as the model identifier on the wire.
func NewAzureLLM(endpoint, apiKey, deployment string) *OpenAILLM {
	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	return &OpenAILLM{Client: openai.NewClientWithConfig(cfg), Model: deployment}
}

// Chat sends the conversation and tool descriptors and returns the single
// assistant message of the first choice.
func (o *OpenAILLM) Chat(ctx context.Context, req Request) (chat.Message, error) {
	wire := openai.ChatCompletionRequest{
		Model:    o.Model,
		Messages: toWireMessages(req.Messages),
	}
	if len(req.Tools) > 0 {
		wire.Tools = toWireTools(req.Tools)
		toolChoice := req.ToolChoice
		if toolChoice == "" {
			toolChoice = "auto"
		}
		wire.ToolChoice = toolChoice
		if !req.AllowParallelCalls {
			wire.ParallelToolCalls = false
		}
	}

	resp, err := o.Client.CreateChatCompletion(ctx, wire)
	if err != nil {
		return chat.Message{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return chat.Message{}, errors.New("no response from endpoint")
	}
	return fromWireMessage(resp.Choices[0].Message), nil
}

func toWireMessages(msgs []chat.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		wm := openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
		for _, call := range m.ToolCalls {
			wm.ToolCalls = append(wm.ToolCalls, openai.ToolCall{
				ID:   call.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			})
		}
		if m.Role == chat.RoleTool {
			wm.ToolCallID = m.ToolCallID
			wm.Name = m.Name
		}
		out = append(out, wm)
	}
	return out
}

func toWireTools(specs []chat.ToolSpec) []openai.Tool {
	out := make([]openai.Tool, 0, len(specs))
	for _, spec := range specs {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        spec.Name,
				Description: spec.Description,
				Strict:      spec.Strict,
				Parameters:  spec.Parameters,
			},
		})
	}
	return out
}

func fromWireMessage(m openai.ChatCompletionMessage) chat.Message {
	out := chat.Message{
		Role:    m.Role,
		Content: m.Content,
	}
	if out.Role == "" {
		out.Role = chat.RoleAssistant
	}
	for _, call := range m.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, chat.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}
	return out
}

var _ Model = (*OpenAILLM)(nil)
