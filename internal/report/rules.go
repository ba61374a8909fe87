package report

import (
	"fmt"
	"strings"
)

// snapshot carries the fields the alert rules look at, extracted once from
// the payload. Condition strings are lower-cased before matching.
type snapshot struct {
	condition   string // weather[0].main, lower-cased
	description string // weather[0].description, lower-cased
	tempC       float64
}

// ruleGroup identifies rules that are mutually exclusive: within a group
// only the first matching rule fires. Rules in different groups fire
// independently, so one snapshot can produce several alerts.
type ruleGroup int

const (
	groupCondition ruleGroup = iota
	groupTemperature
)

// alertRule pairs a predicate over a snapshot with a message template. The
// alert set is heuristic: it is derived from current conditions in the
// state's representative city, not from an authoritative alert feed.
type alertRule struct {
	group   ruleGroup
	matches func(s snapshot) bool
	message func(s snapshot, city, state string) string
}

// alertRules is evaluated in order. Condition rules are listed by severity:
// thunderstorm, then snow/blizzard, then heavy rain. Temperature thresholds
// follow independently.
var alertRules = []alertRule{
	{
		group: groupCondition,
		matches: func(s snapshot) bool {
			return strings.Contains(s.condition, "thunderstorm")
		},
		message: func(s snapshot, city, state string) string {
			return fmt.Sprintf("⚡ Thunderstorm Alert for %s, %s: %s", city, state, titleCase(s.description))
		},
	},
	{
		group: groupCondition,
		matches: func(s snapshot) bool {
			return strings.Contains(s.condition, "snow") || strings.Contains(s.description, "blizzard")
		},
		message: func(s snapshot, city, state string) string {
			return fmt.Sprintf("🌨️ Winter Weather Alert for %s, %s: %s", city, state, titleCase(s.description))
		},
	},
	{
		group: groupCondition,
		matches: func(s snapshot) bool {
			return strings.Contains(s.condition, "rain") && strings.Contains(s.description, "heavy")
		},
		message: func(s snapshot, city, state string) string {
			return fmt.Sprintf("🌧️ Heavy Rain Alert for %s, %s: %s", city, state, titleCase(s.description))
		},
	},
	{
		group: groupTemperature,
		matches: func(s snapshot) bool {
			return s.tempC > 35 // > 95°F
		},
		message: func(s snapshot, city, state string) string {
			return fmt.Sprintf("🔥 Heat Warning for %s, %s: Temperature %s", city, state, tempBoth(s.tempC))
		},
	},
	{
		group: groupTemperature,
		matches: func(s snapshot) bool {
			return s.tempC < -10 // < 14°F
		},
		message: func(s snapshot, city, state string) string {
			return fmt.Sprintf("🥶 Cold Warning for %s, %s: Temperature %s", city, state, tempBoth(s.tempC))
		},
	},
}

// evaluateRules collects the messages of all fired rules, honoring the
// first-match-per-group ordering.
func evaluateRules(s snapshot, city, state string) []string {
	var messages []string
	fired := make(map[ruleGroup]bool)

	for _, rule := range alertRules {
		if fired[rule.group] {
			continue
		}
		if rule.matches(s) {
			fired[rule.group] = true
			messages = append(messages, rule.message(s, city, state))
		}
	}

	return messages
}
