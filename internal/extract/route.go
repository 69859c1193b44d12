// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tobrien/trip-engine/pkg/types"
)

// The two route rules are tried in order against the lowercased sentence.
// The first handles "from X to Y" with multi-word cities; the trailing
// alternation stops the destination capture at a qualifier keyword
// (for/with/in/on) or end of string. The fallback handles bare "go from X"
// sentences; its capture has no right boundary and runs to the end of
// whatever the regex engine matches.
var (
	fromToPattern = regexp.MustCompile(`from\s+([a-zA-Z\s]+?)\s+to\s+([a-zA-Z\s]+?)(?:\s+for|\s+with|\s+in|\s+on|$)`)
	goFromPattern = regexp.MustCompile(`go\s+from\s+([a-zA-Z\s]+)`)
)

// ExtractRoute pulls an origin/destination city pair out of a free-text
// travel request. Matching is case-insensitive; captured names are trimmed
// and title-cased. The zero Route means neither rule matched; a Route with
// only Origin set means the fallback rule matched. No error is ever
// returned; absence is signaled by empty fields.
func ExtractRoute(message string) types.Route {
	lower := strings.ToLower(message)

	if m := fromToPattern.FindStringSubmatch(lower); m != nil {
		return types.Route{
			Origin:      titleCase(m[1]),
			Destination: titleCase(m[2]),
		}
	}

	if m := goFromPattern.FindStringSubmatch(lower); m != nil {
		return types.Route{Origin: titleCase(m[1])}
	}

	return types.Route{}
}

// titleCase trims surrounding whitespace and capitalizes the first letter
// of every word. "los angeles" becomes "Los Angeles"; names with internal
// lowercase conventions are not special-cased.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
