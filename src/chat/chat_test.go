package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToolResultEchoesCall(t *testing.T) {
	call := Call("lookup_weather", `{"city_name":"Berkeley"}`)
	require.True(t, strings.HasPrefix(call.ID, "call_"))

	msg := ToolResult(call, `{"location":"Berkeley"}`)
	require.Equal(t, RoleTool, msg.Role)
	require.Equal(t, call.ID, msg.ToolCallID)
	require.Equal(t, "lookup_weather", msg.Name)
}

func TestNewCallIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewCallID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestAssistantCalls(t *testing.T) {
	msg := AssistantCalls(Call("a", "{}"), Call("b", "{}"))
	require.Equal(t, RoleAssistant, msg.Role)
	require.Len(t, msg.ToolCalls, 2)
	require.Empty(t, msg.Content)
}
