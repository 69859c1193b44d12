// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// numberWords covers spelled-out counts up to ten; larger parties are
// always written with digits in practice.
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

const countAlt = `(\d+|one|two|three|four|five|six|seven|eight|nine|ten)`

var (
	adultsPattern   = regexp.MustCompile(countAlt + `\s+adults?\b`)
	childrenPattern = regexp.MustCompile(countAlt + `\s+(?:children|child|kids?)\b`)
	peoplePattern   = regexp.MustCompile(countAlt + `\s+(?:people|persons?|travellers?|travelers?)\b`)
)

// Party holds traveler counts extracted from a message.
type Party struct {
	Adults   int
	Children int
}

// ExtractParty pulls adult and child counts from the message. A bare
// "N people" with no adult/child breakdown counts everyone as adults.
// Both fields zero means no traveler information was mentioned.
func ExtractParty(message string) Party {
	lower := strings.ToLower(message)
	var p Party

	if m := adultsPattern.FindStringSubmatch(lower); m != nil {
		p.Adults = parseCount(m[1])
	}
	if m := childrenPattern.FindStringSubmatch(lower); m != nil {
		p.Children = parseCount(m[1])
	}

	if p.Adults == 0 && p.Children == 0 {
		if m := peoplePattern.FindStringSubmatch(lower); m != nil {
			p.Adults = parseCount(m[1])
		}
	}

	return p
}

// parseCount converts a digit run or a spelled-out number word.
func parseCount(s string) int {
	if n, ok := numberWords[s]; ok {
		return n
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
