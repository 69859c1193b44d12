// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Airport is one record in the airport index. The field names follow the
// upstream dataset, which keys the IATA code under "column_1".
type Airport struct {
	// IATA is the three-letter airport code (e.g. "JFK").
	IATA string `json:"column_1" yaml:"iata"`

	// Name is the full airport name as published in the dataset.
	Name string `json:"airport_name" yaml:"name"`

	// City is the served city, possibly with a region suffix
	// (e.g. "Bozeman, MT").
	City string `json:"city_name" yaml:"city"`

	// Country is the country name as published (aliases like "USA" are
	// normalized at lookup time, not here).
	Country string `json:"country_name" yaml:"country"`
}
