package toolbox

import (
	"context"

	toolloop "github.com/Protocol-Lattice/go-toolloop"
)

// WeatherArgs are the parameters of lookup_weather. Both fields are
// optional; the tool falls back to an unknown location.
type WeatherArgs struct {
	CityName string `json:"city_name,omitempty" jsonschema:"description=The city name"`
	ZipCode  string `json:"zip_code,omitempty" jsonschema:"description=The zip code"`
}

// NewWeatherTool returns the lookup_weather stub. In a real implementation
// this would call an external weather API.
func NewWeatherTool(loc Locale) (toolloop.Tool, error) {
	description := "Lookup the weather for a given city name or zip code."
	if loc == Spanish {
		description = "Busca el clima según nombre de ciudad o código postal."
	}

	return toolloop.NewTool(
		"lookup_weather",
		description,
		func(_ context.Context, args WeatherArgs) (any, error) {
			where := location(args.CityName, args.ZipCode, loc)
			if loc == Spanish {
				return map[string]any{
					"ubicacion":        where,
					"condicion":        "chubascos",
					"lluvia_mm_ult_24h": 7,
					"recomendacion":    "Buen día para actividades bajo techo si no te gusta la llovizna.",
				}, nil
			}
			return map[string]any{
				"location":         where,
				"condition":        "rain showers",
				"rain_mm_last_24h": 7,
				"recommendation":   "Good day for indoor activities if you dislike drizzle.",
			}, nil
		},
		toolloop.WithStrict(),
	)
}
