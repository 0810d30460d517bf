package toolloop

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeArguments parses the raw argument text of a tool call into a
// parameter map. Empty or all-whitespace text decodes to an empty map.
// Malformed JSON, or JSON that is not an object, returns an error; callers
// turn that into a recoverable decode-error outcome rather than aborting
// the run.
func DecodeArguments(raw string) (map[string]any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return map[string]any{}, nil
	}

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return nil, fmt.Errorf("malformed JSON arguments: %w", err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("arguments must be a JSON object, got %s", jsonKind(v))
	}
	return obj, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case []any:
		return "an array"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	default:
		return "an unexpected value"
	}
}
