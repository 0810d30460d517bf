package toolloop

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Protocol-Lattice/go-toolloop/src/chat"
)

// ToolCatalog is the closed name-to-tool table assembled once before a run.
// Names are matched case-insensitively; registering a duplicate is a
// configuration error, so a catalog that constructed successfully is
// unambiguous for the whole run.
type ToolCatalog struct {
	mu    sync.RWMutex
	tools map[string]Tool
	specs map[string]chat.ToolSpec
	order []string
}

// NewToolCatalog constructs a catalog from the given tools. It fails on a
// nil tool, an empty name, or a duplicate name.
func NewToolCatalog(tools []Tool) (*ToolCatalog, error) {
	catalog := &ToolCatalog{
		tools: make(map[string]Tool),
		specs: make(map[string]chat.ToolSpec),
	}
	for _, tool := range tools {
		if err := catalog.register(tool); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func (c *ToolCatalog) register(tool Tool) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	spec := tool.Spec()
	key := strings.ToLower(strings.TrimSpace(spec.Name))
	if key == "" {
		return fmt.Errorf("tool name is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.tools[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, spec.Name)
	}
	c.tools[key] = tool
	c.specs[key] = spec
	c.order = append(c.order, key)
	return nil
}

// Lookup returns the tool registered under name, if present.
func (c *ToolCatalog) Lookup(name string) (Tool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tool, ok := c.tools[strings.ToLower(strings.TrimSpace(name))]
	return tool, ok
}

// Specs returns a snapshot of the tool specifications in registration order.
func (c *ToolCatalog) Specs() []chat.ToolSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()

	specs := make([]chat.ToolSpec, 0, len(c.order))
	for _, key := range c.order {
		specs = append(specs, c.specs[key])
	}
	return specs
}

// Len reports the number of registered tools.
func (c *ToolCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
