// Package report turns decoded weather payloads into human-readable text.
// Every formatter is pure: given the same payloads it produces the same
// report, and absent optional fields render documented defaults instead of
// failing. Rendering rules shared by all reports: temperatures are shown in
// both scales with one decimal place, condition descriptions are title-cased.
package report

import (
	"fmt"
	"strings"
	"unicode"

	"weather-mcp-go/internal/units"
)

// tempBoth renders a Celsius temperature in both scales.
func tempBoth(celsius float64) string {
	return fmt.Sprintf("%.1f°C (%.1f°F)", celsius, units.CelsiusToFahrenheit(celsius))
}

// titleCase capitalizes the first letter of each word and lowercases the
// rest, matching how condition descriptions are displayed.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
