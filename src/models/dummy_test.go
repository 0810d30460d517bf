package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Protocol-Lattice/go-toolloop/src/chat"
)

func TestScriptedModelReplaysTurnsInOrder(t *testing.T) {
	m := NewScriptedModel(
		chat.AssistantCalls(chat.Call("lookup_weather", `{}`)),
		chat.Assistant("all done"),
	)

	first, err := m.Chat(context.Background(), Request{})
	require.NoError(t, err)
	require.Len(t, first.ToolCalls, 1)

	second, err := m.Chat(context.Background(), Request{})
	require.NoError(t, err)
	require.Equal(t, "all done", second.Content)

	_, err = m.Chat(context.Background(), Request{})
	require.Error(t, err)
}

func TestScriptedModelRecordsRequests(t *testing.T) {
	m := NewScriptedModel(chat.Assistant("ok"))
	req := Request{Messages: []chat.Message{chat.User("hi")}, ToolChoice: "auto"}
	_, err := m.Chat(context.Background(), req)
	require.NoError(t, err)

	got := m.Requests()
	require.Len(t, got, 1)
	require.Equal(t, "auto", got[0].ToolChoice)
	require.Len(t, got[0].Messages, 1)
}
