package extract

import (
	"testing"
	"time"
)

// testNow is a Sunday, mid-March 2026. Date extraction is resolved against
// a fixed clock so the year-rollover cases are deterministic.
var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestExtractStartDateExplicit(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		wantOK  bool
	}{
		{"month day with ordinal", "leaving august 10th", "2026-08-10", true},
		{"month day plain", "on august 10", "2026-08-10", true},
		{"day month", "on 10 august", "2026-08-10", true},
		{"day month with ordinal and year", "28th august 2025", "2025-08-28", true},
		{"month day with comma year", "august 10, 2027", "2027-08-10", true},
		{"past date rolls to next year", "on january 5", "2027-01-05", true},
		{"explicit past year does not roll", "january 5 2020", "2020-01-05", true},
		{"abbreviated month", "around aug 10", "2026-08-10", true},
		{"embedded in full query", "from New York to Orlando on August 10th for 5 days", "2026-08-10", true},
		{"no date", "from dallas to las vegas", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractStartDate(tt.message, testNow)
			if ok != tt.wantOK {
				t.Fatalf("ExtractStartDate(%q) ok = %v, want %v", tt.message, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Format(ISODate) != tt.want {
				t.Errorf("ExtractStartDate(%q) = %s, want %s", tt.message, got.Format(ISODate), tt.want)
			}
		})
	}
}

func TestExtractStartDateRelative(t *testing.T) {
	t.Run("tomorrow", func(t *testing.T) {
		got, ok := ExtractStartDate("leaving tomorrow", testNow)
		if !ok {
			t.Fatal("expected a date for 'tomorrow'")
		}
		if want := "2026-03-16"; got.Format(ISODate) != want {
			t.Errorf("got %s, want %s", got.Format(ISODate), want)
		}
	})

	t.Run("weekday resolves to upcoming day", func(t *testing.T) {
		got, ok := ExtractStartDate("flying out on friday", testNow)
		if !ok {
			t.Fatal("expected a date for 'friday'")
		}
		if got.Weekday() != time.Friday {
			t.Errorf("got weekday %s, want Friday", got.Weekday())
		}
	})
}

func TestExtractStartDateMidnight(t *testing.T) {
	got, ok := ExtractStartDate("leaving tomorrow", testNow)
	if !ok {
		t.Fatal("expected a date")
	}
	h, m, s := got.Clock()
	if h != 0 || m != 0 || s != 0 {
		t.Errorf("expected midnight, got %02d:%02d:%02d", h, m, s)
	}
}
