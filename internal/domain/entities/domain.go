package entities

import "time"

// RateComponent is one additive part of a business domain's hourly rate.
type RateComponent struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// BusinessDomain is a billing category carrying an hourly rate, optionally
// decomposed into additive rate components. When RateComponents is
// non-empty, HourlyRate is derived (sum of component values) and never
// edited independently; the store recomputes it on every save and read.
type BusinessDomain struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	HourlyRate     float64         `json:"hourly_rate"`
	RateComponents []RateComponent `json:"rate_components,omitempty"`
	CreatedBy      string          `json:"created_by"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Clone returns a deep copy, including the rate component list.
func (d BusinessDomain) Clone() BusinessDomain {
	out := d
	if d.RateComponents != nil {
		out.RateComponents = make([]RateComponent, len(d.RateComponents))
		copy(out.RateComponents, d.RateComponents)
	}
	return out
}
