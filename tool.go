package toolloop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	santhosh "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Protocol-Lattice/go-toolloop/src/chat"
)

// Tool is a named, schema-described callable the model may request. Invoke
// receives the already-decoded argument map; any error it returns is
// absorbed into an execution-error outcome by the loop, never propagated.
type Tool interface {
	Spec() chat.ToolSpec
	Invoke(ctx context.Context, args map[string]any) (any, error)
}

// ToolOption adjusts tool construction.
type ToolOption func(*toolConfig)

type toolConfig struct {
	strict bool
}

// WithStrict marks the tool's schema strict: undeclared argument keys are
// rejected both by the endpoint and by local validation.
func WithStrict() ToolOption {
	return func(c *toolConfig) { c.strict = true }
}

// NewTool builds a Tool whose parameter schema is derived from the argument
// struct T. Fields without omitempty in their json tag are required; the
// schema forbids undeclared keys. Arguments are validated against the
// schema before being bound to T, so fn only ever sees structurally valid
// input.
func NewTool[T any](name, description string, fn func(ctx context.Context, args T) (any, error), opts ...ToolOption) (Tool, error) {
	if name == "" {
		return nil, fmt.Errorf("tool name is empty")
	}
	var cfg toolConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	params, compiled, err := reflectParameters[T]()
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", name, err)
	}

	return &typedTool[T]{
		spec: chat.ToolSpec{
			Name:        name,
			Description: description,
			Parameters:  params,
			Strict:      cfg.strict,
		},
		compiled: compiled,
		fn:       fn,
	}, nil
}

type typedTool[T any] struct {
	spec     chat.ToolSpec
	compiled *santhosh.Schema
	fn       func(ctx context.Context, args T) (any, error)
}

func (t *typedTool[T]) Spec() chat.ToolSpec { return t.spec }

func (t *typedTool[T]) Invoke(ctx context.Context, args map[string]any) (any, error) {
	if args == nil {
		args = map[string]any{}
	}
	if err := t.compiled.Validate(map[string]any(args)); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	data, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("bind arguments: %w", err)
	}
	var params T
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("bind arguments: %w", err)
	}

	return t.fn(ctx, params)
}

// reflectParameters derives the JSON Schema for T and compiles it once for
// validation at invoke time.
func reflectParameters[T any]() (map[string]any, *santhosh.Schema, error) {
	var zero T
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	reflected := r.Reflect(&zero)

	data, err := json.Marshal(reflected)
	if err != nil {
		return nil, nil, fmt.Errorf("reflect schema: %w", err)
	}
	var params map[string]any
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, nil, fmt.Errorf("reflect schema: %w", err)
	}
	// The endpoint wire shape wants a bare parameters object.
	delete(params, "$schema")
	delete(params, "$id")

	normalized, err := json.Marshal(params)
	if err != nil {
		return nil, nil, fmt.Errorf("normalize schema: %w", err)
	}
	doc, err := santhosh.UnmarshalJSON(bytes.NewReader(normalized))
	if err != nil {
		return nil, nil, fmt.Errorf("parse schema: %w", err)
	}

	compiler := santhosh.NewCompiler()
	if err := compiler.AddResource("params.json", doc); err != nil {
		return nil, nil, fmt.Errorf("compile schema: %w", err)
	}
	compiled, err := compiler.Compile("params.json")
	if err != nil {
		return nil, nil, fmt.Errorf("compile schema: %w", err)
	}

	return params, compiled, nil
}
