package toolloop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Protocol-Lattice/go-toolloop/src/chat"
	"github.com/Protocol-Lattice/go-toolloop/src/concurrent"
)

// dispatch runs every requested call and returns outcomes aligned with the
// order the model emitted the calls, regardless of completion order. In
// sequential mode calls run one at a time in emission order; in parallel
// mode they fan out onto the bounded pool and index alignment preserves
// the pairing between outcome and originating call.
func (l *Loop) dispatch(ctx context.Context, calls []chat.ToolCall) []Outcome {
	if l.parallel && len(calls) > 1 {
		return concurrent.Map(ctx, calls, l.invokeOne, l.maxWorkers)
	}

	outcomes := make([]Outcome, len(calls))
	for i, call := range calls {
		outcomes[i] = l.invokeOne(ctx, call)
	}
	return outcomes
}

// invokeOne resolves and executes a single call, reporting through the
// trace hooks when configured. Resolution precedence: unknown name, then
// argument decoding, then execution.
func (l *Loop) invokeOne(ctx context.Context, call chat.ToolCall) Outcome {
	if l.onToolCall != nil {
		l.onToolCall(call)
	}
	start := time.Now()
	outcome := l.resolveAndRun(ctx, call)
	if l.onToolResult != nil {
		l.onToolResult(outcome, time.Since(start))
	}
	return outcome
}

func (l *Loop) resolveAndRun(ctx context.Context, call chat.ToolCall) Outcome {
	tool, ok := l.catalog.Lookup(call.Name)
	if !ok {
		return Outcome{Kind: OutcomeToolNotFound, Call: call}
	}

	args, err := DecodeArguments(call.Arguments)
	if err != nil {
		return Outcome{Kind: OutcomeDecodeError, Call: call, Err: err}
	}

	if l.toolTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.toolTimeout)
		defer cancel()
	}

	value, err := safeInvoke(ctx, tool, args)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && l.toolTimeout > 0 {
			err = fmt.Errorf("timed out after %s", l.toolTimeout)
		}
		return Outcome{Kind: OutcomeExecutionError, Call: call, Err: err}
	}
	return Outcome{Kind: OutcomeSuccess, Call: call, Value: value}
}

// safeInvoke shields the loop from tool bodies: a panic becomes an
// ordinary execution error.
func safeInvoke(ctx context.Context, tool Tool, args map[string]any) (value any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return tool.Invoke(ctx, args)
}
