package toolloop

import "errors"

// Sentinel errors. Use errors.Is to check.
var (
	// ErrDuplicateTool is returned by New when two tools share a name.
	ErrDuplicateTool = errors.New("duplicate tool name")

	// ErrMaxTurns is returned by Run when the turn budget is exhausted
	// before the model produced a plain answer.
	ErrMaxTurns = errors.New("turn budget exhausted before a final answer")
)
