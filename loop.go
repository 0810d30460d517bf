package toolloop

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Protocol-Lattice/go-toolloop/src/chat"
	"github.com/Protocol-Lattice/go-toolloop/src/models"
)

// Options configure a Loop.
type Options struct {
	// Model is the endpoint the conversation is sent to. Required.
	Model models.Model

	// Tools the model may call. Duplicate names fail construction.
	Tools []Tool

	// ToolChoice is the endpoint's tool selection policy; empty means
	// "auto".
	ToolChoice string

	// Parallel allows several calls from one assistant turn to execute
	// concurrently, and advertises that capability to the endpoint.
	Parallel bool

	// MaxWorkers bounds parallel execution; zero uses the pool default.
	MaxWorkers int

	// MaxTurns caps the number of round-trips Run performs before giving
	// up with ErrMaxTurns. Zero means unbounded, matching endpoints that
	// are trusted to converge.
	MaxTurns int

	// ToolTimeout, when positive, bounds each tool invocation; expiry
	// surfaces as an execution-error outcome, not a run failure.
	ToolTimeout time.Duration

	// OnToolCall and OnToolResult are diagnostic trace hooks, invoked
	// around every tool invocation. In parallel mode they may be called
	// from multiple goroutines.
	OnToolCall   func(chat.ToolCall)
	OnToolResult func(Outcome, time.Duration)
}

// Loop drives the tool-calling conversation: send the conversation, inspect
// the reply, execute any requested tools, fold their results back in, and
// repeat until the model answers in plain content.
type Loop struct {
	model       models.Model
	catalog     *ToolCatalog
	toolChoice  string
	parallel    bool
	maxWorkers  int
	maxTurns    int
	toolTimeout time.Duration

	onToolCall   func(chat.ToolCall)
	onToolResult func(Outcome, time.Duration)
}

// New validates the configuration and builds a Loop. Configuration
// problems (missing model, duplicate tool name) fail here, before any
// round-trip happens.
func New(opts Options) (*Loop, error) {
	if opts.Model == nil {
		return nil, errors.New("loop requires a model endpoint")
	}
	catalog, err := NewToolCatalog(opts.Tools)
	if err != nil {
		return nil, err
	}

	toolChoice := opts.ToolChoice
	if toolChoice == "" {
		toolChoice = "auto"
	}

	return &Loop{
		model:        opts.Model,
		catalog:      catalog,
		toolChoice:   toolChoice,
		parallel:     opts.Parallel,
		maxWorkers:   opts.MaxWorkers,
		maxTurns:     opts.MaxTurns,
		toolTimeout:  opts.ToolTimeout,
		onToolCall:   opts.OnToolCall,
		onToolResult: opts.OnToolResult,
	}, nil
}

// Result is the outcome of a run: the final assistant content, the full
// transcript including every tool exchange, and the number of round-trips
// performed.
type Result struct {
	Content  string
	Messages []chat.Message
	Turns    int
}

// Run repeats the round-trip until an assistant turn carries no tool
// calls, then returns its content. Endpoint failures abort the run; tool
// failures are folded into the conversation as tool output and the run
// continues. When MaxTurns is set and exhausted, Run returns the
// transcript so far together with ErrMaxTurns.
func (l *Loop) Run(ctx context.Context, msgs []chat.Message) (Result, error) {
	conv := slices.Clone(msgs)

	for turn := 1; ; turn++ {
		if l.maxTurns > 0 && turn > l.maxTurns {
			return Result{Messages: conv, Turns: turn - 1}, ErrMaxTurns
		}

		reply, err := l.complete(ctx, conv)
		if err != nil {
			return Result{Messages: conv, Turns: turn - 1}, err
		}
		conv = append(conv, reply)

		if len(reply.ToolCalls) == 0 {
			return Result{Content: reply.Content, Messages: conv, Turns: turn}, nil
		}

		for _, outcome := range l.dispatch(ctx, reply.ToolCalls) {
			conv = append(conv, outcome.Message())
		}
	}
}

// RunOnce performs at most one tool-dispatch pass: if the first reply
// requests tools they are executed and one follow-up completion is issued,
// whose message is returned verbatim. Tool calls in that follow-up are not
// re-dispatched.
func (l *Loop) RunOnce(ctx context.Context, msgs []chat.Message) (Result, error) {
	conv := slices.Clone(msgs)

	reply, err := l.complete(ctx, conv)
	if err != nil {
		return Result{Messages: conv}, err
	}
	conv = append(conv, reply)

	if len(reply.ToolCalls) == 0 {
		return Result{Content: reply.Content, Messages: conv, Turns: 1}, nil
	}

	for _, outcome := range l.dispatch(ctx, reply.ToolCalls) {
		conv = append(conv, outcome.Message())
	}

	final, err := l.complete(ctx, conv)
	if err != nil {
		return Result{Messages: conv, Turns: 1}, err
	}
	conv = append(conv, final)

	return Result{Content: final.Content, Messages: conv, Turns: 2}, nil
}

func (l *Loop) complete(ctx context.Context, conv []chat.Message) (chat.Message, error) {
	reply, err := l.model.Chat(ctx, models.Request{
		Messages:           conv,
		Tools:              l.catalog.Specs(),
		ToolChoice:         l.toolChoice,
		AllowParallelCalls: l.parallel,
	})
	if err != nil {
		return chat.Message{}, fmt.Errorf("model endpoint: %w", err)
	}
	return reply, nil
}
