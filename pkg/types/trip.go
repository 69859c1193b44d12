// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the trip-engine pipeline.
package types

// Route is the origin/destination pair pulled from a travel sentence.
// An empty field means the corresponding place was not found; Destination
// is only ever populated together with Origin.
type Route struct {
	// Origin is the departure city, title-cased (e.g. "New York").
	Origin string `json:"origin,omitempty" yaml:"origin,omitempty"`

	// Destination is the arrival city, title-cased.
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`
}

// IsZero reports whether no place was extracted at all.
func (r Route) IsZero() bool {
	return r.Origin == "" && r.Destination == ""
}

// BudgetTier is a coarse budget preference named in the query.
type BudgetTier string

const (
	TierBudget   BudgetTier = "budget"
	TierModerate BudgetTier = "moderate"
	TierLuxury   BudgetTier = "luxury"
)

// TripQuery is the full set of entities extracted from one free-text
// travel request. Zero values mean "not mentioned"; extraction never
// invents defaults.
type TripQuery struct {
	// Origin is the departure city, title-cased.
	Origin string `json:"origin,omitempty" yaml:"origin,omitempty"`

	// Destination is the arrival city, title-cased.
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`

	// OriginIATA and DestinationIATA are filled in when the caller resolves
	// cities against the airport index; extraction leaves them empty.
	OriginIATA      string `json:"origin_iata,omitempty" yaml:"origin_iata,omitempty"`
	DestinationIATA string `json:"destination_iata,omitempty" yaml:"destination_iata,omitempty"`

	// StartDate is the departure date in YYYY-MM-DD form.
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`

	// DurationDays is the trip length in days.
	DurationDays int `json:"duration_days,omitempty" yaml:"duration_days,omitempty"`

	// Adults and Children are traveler counts. A bare "N people" counts
	// as adults.
	Adults   int `json:"adults,omitempty" yaml:"adults,omitempty"`
	Children int `json:"children,omitempty" yaml:"children,omitempty"`

	// BudgetAmount is an explicit dollar figure from the query.
	BudgetAmount float64 `json:"budget_amount,omitempty" yaml:"budget_amount,omitempty"`

	// BudgetTier is the coarse preference: budget, moderate, or luxury.
	BudgetTier BudgetTier `json:"budget_tier,omitempty" yaml:"budget_tier,omitempty"`

	// TripType labels the trip: family, business, romantic, solo,
	// adventure, or cultural.
	TripType string `json:"trip_type,omitempty" yaml:"trip_type,omitempty"`

	// Interests are activity keywords mentioned in the query.
	Interests []string `json:"interests,omitempty" yaml:"interests,omitempty"`

	// Source identifies which extractor produced this result
	// ("rules" or "ai").
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Route returns the origin/destination pair of the query.
func (q *TripQuery) Route() Route {
	return Route{Origin: q.Origin, Destination: q.Destination}
}
