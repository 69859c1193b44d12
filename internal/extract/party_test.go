package extract

import "testing"

func TestExtractParty(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Party
	}{
		{"digit adults", "with 2 adults", Party{Adults: 2}},
		{"word adults", "for two adults", Party{Adults: 2}},
		{"adults and children", "3 adults and 1 child", Party{Adults: 3, Children: 1}},
		{"kids counts as children", "with 2 kids", Party{Children: 2}},
		{"people counts as adults", "for 4 people", Party{Adults: 4}},
		{"travelers counts as adults", "5 travelers total", Party{Adults: 5}},
		{"people ignored when breakdown given", "4 people, 2 adults and 2 children", Party{Adults: 2, Children: 2}},
		{"word children", "three children", Party{Children: 3}},
		{"nothing mentioned", "from dallas to las vegas", Party{}},
		{"family without counts", "with my family", Party{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractParty(tt.message)
			if got != tt.want {
				t.Errorf("ExtractParty(%q) = %+v, want %+v", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractDurationDays(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    int
	}{
		{"digit days", "for 5 days", 5},
		{"word days", "for five days", 5},
		{"single day", "for 1 day", 1},
		{"nights", "3 nights in a hotel", 3},
		{"weeks convert to days", "for two weeks", 14},
		{"days win over weeks", "10 days or maybe two weeks", 10},
		{"nothing mentioned", "from dallas to las vegas", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDurationDays(tt.message)
			if got != tt.want {
				t.Errorf("ExtractDurationDays(%q) = %d, want %d", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractInterests(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"single interest", "somewhere with great food", []string{"food"}},
		{"multiple interests in fixed order", "hiking, museums, and shopping", []string{"culture", "nature", "shopping"}},
		{"theme parks", "take the kids to disney", []string{"theme_parks"}},
		{"none mentioned", "from dallas to las vegas", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractInterests(tt.message)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractInterests(%q) = %v, want %v", tt.message, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ExtractInterests(%q)[%d] = %q, want %q", tt.message, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractTripType(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"a trip with my family", "family"},
		{"our honeymoon in bali", "romantic"},
		{"a business trip to chicago", "business"},
		{"traveling solo this time", "solo"},
		{"backpacking through patagonia", "adventure"},
		{"sightseeing in rome", "cultural"},
		{"from dallas to las vegas", ""},
	}

	for _, tt := range tests {
		if got := ExtractTripType(tt.message); got != tt.want {
			t.Errorf("ExtractTripType(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}
