package report

import (
	"fmt"
	"sort"
	"strings"
)

// stateCities maps two-letter US state codes to a representative major city.
// The upstream API has no state-level alert feed, so alerts are derived from
// current conditions in that city.
var stateCities = map[string]string{
	"CA": "San Francisco",
	"NY": "New York",
	"TX": "Houston",
	"FL": "Miami",
	"IL": "Chicago",
	"PA": "Philadelphia",
	"OH": "Columbus",
	"GA": "Atlanta",
	"NC": "Charlotte",
	"MI": "Detroit",
}

// ResolveState maps a state code to its representative city. The lookup is
// case-insensitive. Codes outside the table are rejected here, before any
// network call is made.
func ResolveState(state string) (city string, ok bool) {
	city, ok = stateCities[strings.ToUpper(state)]
	return city, ok
}

// SupportedStates returns the supported state codes in sorted order.
func SupportedStates() []string {
	codes := make([]string, 0, len(stateCities))
	for code := range stateCities {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// UnsupportedStateMessage explains that a state code is not supported and
// enumerates the valid alternatives.
func UnsupportedStateMessage(state string) string {
	return fmt.Sprintf("Alert data not available for state: %s. Supported states: %s",
		state, strings.Join(SupportedStates(), ", "))
}
