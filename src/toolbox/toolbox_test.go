package toolbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeatherToolEnglish(t *testing.T) {
	tool, err := NewWeatherTool(English)
	require.NoError(t, err)

	spec := tool.Spec()
	require.Equal(t, "lookup_weather", spec.Name)
	require.True(t, spec.Strict)

	props, ok := spec.Parameters["properties"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, props, "city_name")
	require.Contains(t, props, "zip_code")
	require.Equal(t, false, spec.Parameters["additionalProperties"])

	value, err := tool.Invoke(context.Background(), map[string]any{"city_name": "Berkeley"})
	require.NoError(t, err)
	report, ok := value.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Berkeley", report["location"])
}

func TestWeatherToolSpanish(t *testing.T) {
	tool, err := NewWeatherTool(Spanish)
	require.NoError(t, err)

	value, err := tool.Invoke(context.Background(), map[string]any{"city_name": "Berkeley"})
	require.NoError(t, err)
	report, ok := value.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Berkeley", report["ubicacion"])
	require.Equal(t, "chubascos", report["condicion"])
}

func TestWeatherToolFallsBackToZipThenUnknown(t *testing.T) {
	tool, err := NewWeatherTool(English)
	require.NoError(t, err)

	value, err := tool.Invoke(context.Background(), map[string]any{"zip_code": "94704"})
	require.NoError(t, err)
	require.Equal(t, "94704", value.(map[string]any)["location"])

	value, err = tool.Invoke(context.Background(), map[string]any{})
	require.NoError(t, err)
	require.Equal(t, "unknown", value.(map[string]any)["location"])
}

func TestWeatherToolRejectsUndeclaredKeys(t *testing.T) {
	tool, err := NewWeatherTool(English)
	require.NoError(t, err)

	_, err = tool.Invoke(context.Background(), map[string]any{"planet": "Mars"})
	require.Error(t, err)
}

func TestMoviesTool(t *testing.T) {
	tool, err := NewMoviesTool(English)
	require.NoError(t, err)

	value, err := tool.Invoke(context.Background(), map[string]any{"city_name": "Sydney"})
	require.NoError(t, err)
	listing, ok := value.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Sydney", listing["location"])
	require.Len(t, listing["movies"], 3)
}

func TestSearchToolRequiresQuery(t *testing.T) {
	tool, err := NewSearchTool(English)
	require.NoError(t, err)

	_, err = tool.Invoke(context.Background(), map[string]any{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "search_query")
}

func TestSearchToolPriceFilterValidation(t *testing.T) {
	tool, err := NewSearchTool(English)
	require.NoError(t, err)

	_, err = tool.Invoke(context.Background(), map[string]any{
		"search_query": "red shoes",
		"price_filter": map[string]any{"comparison_operator": "<"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "price_filter")

	_, err = tool.Invoke(context.Background(), map[string]any{
		"search_query": "red shoes",
		"price_filter": map[string]any{"comparison_operator": "~", "value": 50.0},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "comparison_operator")
}

func TestSearchToolReturnsProducts(t *testing.T) {
	tool, err := NewSearchTool(English)
	require.NoError(t, err)

	value, err := tool.Invoke(context.Background(), map[string]any{
		"search_query": "climbing gear outside",
		"price_filter": map[string]any{"comparison_operator": "<", "value": 50.0},
	})
	require.NoError(t, err)
	rows, ok := value.([]map[string]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
	require.Equal(t, "Example Product", rows[0]["name"])
}

func TestSearchToolSpanishMessages(t *testing.T) {
	tool, err := NewSearchTool(Spanish)
	require.NoError(t, err)

	_, err = tool.Invoke(context.Background(), map[string]any{"search_query": ""})
	require.Error(t, err)
	require.Contains(t, err.Error(), "requerido")
}
