package toolbox

import (
	"context"
	"errors"

	toolloop "github.com/Protocol-Lattice/go-toolloop"
)

// PriceFilter narrows search results by product price. When present, both
// fields must be set; the tool body validates that, mirroring how a real
// database filter would reject half-specified conditions.
type PriceFilter struct {
	ComparisonOperator string   `json:"comparison_operator,omitempty" jsonschema:"description=Operator to compare the price with the value"`
	Value              *float64 `json:"value,omitempty" jsonschema:"description=Value to compare against"`
}

// SearchArgs are the parameters of search_database. SearchQuery is
// required by the schema.
type SearchArgs struct {
	SearchQuery string       `json:"search_query" jsonschema:"description=Query string to use for full text search"`
	PriceFilter *PriceFilter `json:"price_filter,omitempty" jsonschema:"description=Filter search results based on product price"`
}

var validOperators = map[string]bool{">": true, "<": true, ">=": true, "<=": true, "=": true}

// NewSearchTool returns the search_database stub: it validates its filter
// the way the schema cannot and returns a fixed product row.
func NewSearchTool(loc Locale) (toolloop.Tool, error) {
	description := "Search database for relevant products based on user query"
	if loc == Spanish {
		description = "Busca en la base de datos productos relevantes según el query del usuario"
	}

	return toolloop.NewTool(
		"search_database",
		description,
		func(_ context.Context, args SearchArgs) (any, error) {
			if args.SearchQuery == "" {
				if loc == Spanish {
					return nil, errors.New("search_query es requerido")
				}
				return nil, errors.New("search_query is required")
			}
			if pf := args.PriceFilter; pf != nil {
				if pf.ComparisonOperator == "" || pf.Value == nil {
					if loc == Spanish {
						return nil, errors.New("se requieren comparison_operator y value en price_filter")
					}
					return nil, errors.New("both comparison_operator and value are required in price_filter")
				}
				if !validOperators[pf.ComparisonOperator] {
					if loc == Spanish {
						return nil, errors.New("comparison_operator inválido en price_filter")
					}
					return nil, errors.New("invalid comparison_operator in price_filter")
				}
			}

			name := "Example Product"
			if loc == Spanish {
				name = "Producto Ejemplo"
			}
			return []map[string]any{
				{"id": "123", "name": name, "price": 19.99},
			}, nil
		},
	)
}
