package toolbox

import (
	"context"

	toolloop "github.com/Protocol-Lattice/go-toolloop"
)

// MoviesArgs are the parameters of lookup_movies.
type MoviesArgs struct {
	CityName string `json:"city_name,omitempty" jsonschema:"description=The city name"`
	ZipCode  string `json:"zip_code,omitempty" jsonschema:"description=The zip code"`
}

// NewMoviesTool returns the lookup_movies stub. A real implementation
// could query a cinema listings API.
func NewMoviesTool(loc Locale) (toolloop.Tool, error) {
	description := "Lookup movies playing in a given city name or zip code."
	if loc == Spanish {
		description = "Buscar películas en cines según nombre de ciudad o código postal."
	}

	return toolloop.NewTool(
		"lookup_movies",
		description,
		func(_ context.Context, args MoviesArgs) (any, error) {
			where := location(args.CityName, args.ZipCode, loc)
			if loc == Spanish {
				return map[string]any{
					"ubicacion": where,
					"peliculas": []map[string]string{
						{"titulo": "El Arrecife Cuántico", "clasificacion": "PG-13"},
						{"titulo": "Tormenta Sobre Bahía Puerto", "clasificacion": "PG"},
						{"titulo": "Koala de Medianoche", "clasificacion": "R"},
					},
				}, nil
			}
			return map[string]any{
				"location": where,
				"movies": []map[string]string{
					{"title": "The Quantum Reef", "rating": "PG-13"},
					{"title": "Storm Over Harbour Bay", "rating": "PG"},
					{"title": "Midnight Koala", "rating": "R"},
				},
			}, nil
		},
	)
}
