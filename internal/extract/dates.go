// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ISODate is the wire format for extracted dates.
const ISODate = "2006-01-02"

var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "jun": time.June, "jul": time.July,
	"aug": time.August, "sep": time.September, "oct": time.October,
	"nov": time.November, "dec": time.December,
}

const monthAlt = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`

// monthDayPattern matches "august 10th", "august 10, 2026";
// dayMonthPattern matches "10th august", "10 august 2026".
var (
	monthDayPattern = regexp.MustCompile(`\b(` + monthAlt + `)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	dayMonthPattern = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthAlt + `)(?:,?\s+(\d{4}))?\b`)
)

// dateParser resolves relative expressions like "tomorrow", "next week",
// and bare weekday names against a base time.
var dateParser = newDateParser()

func newDateParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ExtractStartDate finds the departure date in the message, resolved
// against now. Explicit month/day mentions are preferred; a date that has
// already passed this year and carries no explicit year rolls to the next
// year. Relative expressions fall through to the natural-language parser.
func ExtractStartDate(message string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(message)

	if t, ok := explicitDate(lower, now); ok {
		return t, true
	}

	r, err := dateParser.Parse(lower, now)
	if err != nil || r == nil {
		return time.Time{}, false
	}
	t := r.Time
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location()), true
}

func explicitDate(lower string, now time.Time) (time.Time, bool) {
	var monthStr, dayStr, yearStr string

	if m := monthDayPattern.FindStringSubmatch(lower); m != nil {
		monthStr, dayStr, yearStr = m[1], m[2], m[3]
	} else if m := dayMonthPattern.FindStringSubmatch(lower); m != nil {
		dayStr, monthStr, yearStr = m[1], m[2], m[3]
	} else {
		return time.Time{}, false
	}

	month, ok := monthNames[monthStr]
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}

	year := now.Year()
	explicitYear := yearStr != ""
	if explicitYear {
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			return time.Time{}, false
		}
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if !explicitYear && t.Before(now) {
		t = time.Date(year+1, month, day, 0, 0, 0, 0, now.Location())
	}

	return t, true
}
