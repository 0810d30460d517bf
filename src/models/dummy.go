package models

import (
	"context"
	"errors"
	"sync"

	"github.com/Protocol-Lattice/go-toolloop/src/chat"
)

// ScriptedModel replays a fixed sequence of assistant turns, one per Chat
// call, and records every request it saw. It is the local stand-in for a
// real endpoint in tests and offline demos.
type ScriptedModel struct {
	mu       sync.Mutex
	turns    []chat.Message
	next     int
	requests []Request
}

// NewScriptedModel returns a model that will answer with the given turns
// in order.
func NewScriptedModel(turns ...chat.Message) *ScriptedModel {
	return &ScriptedModel{turns: turns}
}

// Chat returns the next scripted turn, or an error once the script is
// exhausted.
func (s *ScriptedModel) Chat(_ context.Context, req Request) (chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if s.next >= len(s.turns) {
		return chat.Message{}, errors.New("scripted model: no turns left")
	}
	turn := s.turns[s.next]
	s.next++
	if turn.Role == "" {
		turn.Role = chat.RoleAssistant
	}
	return turn, nil
}

// Requests returns a copy of every request received so far.
func (s *ScriptedModel) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

var _ Model = (*ScriptedModel)(nil)
