// Package toolbox holds the demonstration tools used by the example
// binaries: deterministic stubs whose payloads keep the focus on the
// tool-call flow. Every tool exists in an English and a Spanish variant;
// the locale picks the description, the result field names, and the
// error messages.
package toolbox

// Locale selects the language of a tool's description and payload.
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

func fallbackLocation(loc Locale) string {
	if loc == Spanish {
		return "desconocido"
	}
	return "unknown"
}

func location(cityName, zipCode string, loc Locale) string {
	if cityName != "" {
		return cityName
	}
	if zipCode != "" {
		return zipCode
	}
	return fallbackLocation(loc)
}
