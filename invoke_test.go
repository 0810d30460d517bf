package toolloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Protocol-Lattice/go-toolloop/src/chat"
	"github.com/Protocol-Lattice/go-toolloop/src/models"
)

func newTestLoop(t *testing.T, opts Options) *Loop {
	t.Helper()
	if opts.Model == nil {
		opts.Model = models.NewScriptedModel()
	}
	loop, err := New(opts)
	require.NoError(t, err)
	return loop
}

func TestInvokeUnknownTool(t *testing.T) {
	loop := newTestLoop(t, Options{})

	out := loop.invokeOne(context.Background(), chat.ToolCall{ID: "call_1", Name: "lookup_trains", Arguments: `{}`})
	require.Equal(t, OutcomeToolNotFound, out.Kind)
}

func TestInvokeUnknownToolWinsOverBadArguments(t *testing.T) {
	loop := newTestLoop(t, Options{})

	out := loop.invokeOne(context.Background(), chat.ToolCall{Name: "lookup_trains", Arguments: `{bad json`})
	require.Equal(t, OutcomeToolNotFound, out.Kind, "name resolution precedes argument decoding")
}

func TestInvokeDecodeErrorBeforeExecution(t *testing.T) {
	invoked := false
	tool, err := NewTool("echo", "Echo.", func(_ context.Context, _ struct{}) (any, error) {
		invoked = true
		return "ok", nil
	})
	require.NoError(t, err)
	loop := newTestLoop(t, Options{Tools: []Tool{tool}})

	out := loop.invokeOne(context.Background(), chat.ToolCall{Name: "echo", Arguments: `{bad json`})
	require.Equal(t, OutcomeDecodeError, out.Kind)
	require.False(t, invoked, "decoding must happen before invocation")
}

func TestInvokeExecutionErrorIsAbsorbed(t *testing.T) {
	tool, err := NewTool("boom", "Always fails.", func(_ context.Context, _ struct{}) (any, error) {
		panic("tool body exploded")
	})
	require.NoError(t, err)
	loop := newTestLoop(t, Options{Tools: []Tool{tool}})

	out := loop.invokeOne(context.Background(), chat.ToolCall{Name: "boom", Arguments: ``})
	require.Equal(t, OutcomeExecutionError, out.Kind)
	require.Contains(t, out.Err.Error(), "tool body exploded")
}

func TestInvokeTimeoutBecomesExecutionError(t *testing.T) {
	tool, err := NewTool("slow", "Waits forever.", func(ctx context.Context, _ struct{}) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	require.NoError(t, err)
	loop := newTestLoop(t, Options{Tools: []Tool{tool}, ToolTimeout: 20 * time.Millisecond})

	out := loop.invokeOne(context.Background(), chat.ToolCall{Name: "slow", Arguments: `{}`})
	require.Equal(t, OutcomeExecutionError, out.Kind)
	require.Contains(t, out.Err.Error(), "timed out")
}

func TestDispatchParallelKeepsPairing(t *testing.T) {
	slow, err := NewTool("lookup_weather", "Slow stub.", func(_ context.Context, _ struct{}) (any, error) {
		time.Sleep(50 * time.Millisecond)
		return "weather", nil
	})
	require.NoError(t, err)
	fast, err := NewTool("lookup_movies", "Fast stub.", func(_ context.Context, _ struct{}) (any, error) {
		return "movies", nil
	})
	require.NoError(t, err)

	loop := newTestLoop(t, Options{Tools: []Tool{slow, fast}, Parallel: true})

	calls := []chat.ToolCall{
		{ID: "call_w", Name: "lookup_weather", Arguments: `{}`},
		{ID: "call_m", Name: "lookup_movies", Arguments: `{}`},
	}
	outcomes := loop.dispatch(context.Background(), calls)

	require.Len(t, outcomes, 2)
	require.Equal(t, "call_w", outcomes[0].Call.ID)
	require.Equal(t, "weather", outcomes[0].Value)
	require.Equal(t, "call_m", outcomes[1].Call.ID)
	require.Equal(t, "movies", outcomes[1].Value)
}

func TestDispatchSequentialOrder(t *testing.T) {
	var mu sync.Mutex
	var ran []string
	record := func(name string) (Tool, error) {
		return NewTool(name, "Records invocation order.", func(_ context.Context, _ struct{}) (any, error) {
			mu.Lock()
			ran = append(ran, name)
			mu.Unlock()
			return name, nil
		})
	}
	a, err := record("alpha")
	require.NoError(t, err)
	b, err := record("bravo")
	require.NoError(t, err)

	loop := newTestLoop(t, Options{Tools: []Tool{a, b}})

	loop.dispatch(context.Background(), []chat.ToolCall{
		{ID: "1", Name: "bravo", Arguments: `{}`},
		{ID: "2", Name: "alpha", Arguments: `{}`},
	})
	require.Equal(t, []string{"bravo", "alpha"}, ran, "sequential mode follows emission order")
}

func TestInvokeHooks(t *testing.T) {
	tool, err := NewTool("echo", "Echo.", func(_ context.Context, _ struct{}) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)

	var calls, results int
	loop := newTestLoop(t, Options{
		Tools:      []Tool{tool},
		OnToolCall: func(chat.ToolCall) { calls++ },
		OnToolResult: func(o Outcome, _ time.Duration) {
			results++
			require.Equal(t, OutcomeSuccess, o.Kind)
		},
	})

	loop.invokeOne(context.Background(), chat.ToolCall{Name: "echo", Arguments: `{}`})
	require.Equal(t, 1, calls)
	require.Equal(t, 1, results)
}
