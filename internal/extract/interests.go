// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "strings"

// interestKeywords maps interest labels to the vocabulary that names them.
// Labels are lowercase and hyphen-free so they can double as tags.
var interestKeywords = map[string][]string{
	"theme_parks": {"theme park", "theme parks", "disney", "universal studios"},
	"food":        {"food", "restaurants", "dining", "cuisine"},
	"culture":     {"culture", "museums", "art", "theater"},
	"nature":      {"nature", "hiking", "national park", "wildlife"},
	"adventure":   {"adventure", "rafting", "climbing", "skiing"},
	"relaxation":  {"relaxation", "relaxing", "spa", "beach"},
	"shopping":    {"shopping", "outlets", "markets"},
	"history":     {"history", "historic", "historical", "ruins"},
	"nightlife":   {"nightlife", "bars", "clubs", "casinos"},
}

// interestOrder fixes the output order so extraction is deterministic.
var interestOrder = []string{
	"theme_parks", "food", "culture", "nature", "adventure",
	"relaxation", "shopping", "history", "nightlife",
}

// tripTypeKeywords maps trip-type labels to their vocabulary. First match
// in this order wins.
var tripTypeKeywords = []struct {
	label    string
	keywords []string
}{
	{"family", []string{"family", "my kids", "with children"}},
	{"romantic", []string{"romantic", "honeymoon", "anniversary"}},
	{"business", []string{"business trip", "work trip", "conference"}},
	{"solo", []string{"solo", "by myself", "on my own"}},
	{"adventure", []string{"adventure", "backpacking", "trekking"}},
	{"cultural", []string{"cultural", "sightseeing"}},
}

// ExtractInterests returns the activity keywords mentioned in the message,
// in a fixed order. Nil when none are mentioned.
func ExtractInterests(message string) []string {
	lower := strings.ToLower(message)
	var found []string

	for _, label := range interestOrder {
		for _, kw := range interestKeywords[label] {
			if strings.Contains(lower, kw) {
				found = append(found, label)
				break
			}
		}
	}

	return found
}

// ExtractTripType labels the trip (family, romantic, business, solo,
// adventure, cultural). Empty when nothing in the message names one.
func ExtractTripType(message string) string {
	lower := strings.ToLower(message)

	for _, tt := range tripTypeKeywords {
		for _, kw := range tt.keywords {
			if strings.Contains(lower, kw) {
				return tt.label
			}
		}
	}

	return ""
}
