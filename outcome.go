package toolloop

import (
	"encoding/json"
	"fmt"

	"github.com/Protocol-Lattice/go-toolloop/src/chat"
)

// OutcomeKind discriminates the result of one tool invocation. Exactly one
// kind holds per call; all of them encode to model-visible text so a tool
// failure never aborts the run.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeToolNotFound
	OutcomeDecodeError
	OutcomeExecutionError
)

// Outcome is the result of invoking one requested tool call. Value is set
// only for OutcomeSuccess; Err carries the detail for the decode and
// execution failure kinds.
type Outcome struct {
	Kind  OutcomeKind
	Call  chat.ToolCall
	Value any
	Err   error
}

// Content encodes the outcome as transport text for a tool-role message.
// Successful values are JSON-marshaled, falling back to a single-field
// envelope around the value's textual form when marshaling fails. Failure
// kinds render as plain human-readable text: the model treats it as
// ordinary tool output and can rephrase its request.
func (o Outcome) Content() string {
	switch o.Kind {
	case OutcomeSuccess:
		data, err := json.Marshal(o.Value)
		if err != nil {
			data, _ = json.Marshal(map[string]string{"result": fmt.Sprint(o.Value)})
		}
		return string(data)
	case OutcomeToolNotFound:
		return fmt.Sprintf("ERROR: no implementation registered for tool %q", o.Call.Name)
	case OutcomeDecodeError:
		return fmt.Sprintf("Warning: malformed JSON arguments received for %s: %v", o.Call.Name, o.Err)
	default:
		return fmt.Sprintf("Tool execution error in %s: %v", o.Call.Name, o.Err)
	}
}

// Message renders the outcome as the tool-role reply to its originating
// call, echoing the call's exact ID and name.
func (o Outcome) Message() chat.Message {
	return chat.ToolResult(o.Call, o.Content())
}
