// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

var (
	daysPattern   = regexp.MustCompile(countAlt + `\s+days?\b`)
	nightsPattern = regexp.MustCompile(countAlt + `\s+nights?\b`)
	weeksPattern  = regexp.MustCompile(countAlt + `\s+weeks?\b`)
)

// ExtractDurationDays returns the trip length in days. Days win over
// nights when both appear; weeks are converted at seven days each.
// Zero means no duration was mentioned.
func ExtractDurationDays(message string) int {
	lower := strings.ToLower(message)

	if m := daysPattern.FindStringSubmatch(lower); m != nil {
		return parseCount(m[1])
	}
	if m := nightsPattern.FindStringSubmatch(lower); m != nil {
		return parseCount(m[1])
	}
	if m := weeksPattern.FindStringSubmatch(lower); m != nil {
		return parseCount(m[1]) * 7
	}

	return 0
}
