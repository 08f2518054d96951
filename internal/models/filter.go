// ABOUTME: Search filter for teammate matching
// ABOUTME: Tri-state availability replaces the legacy boolean toggle

package models

import (
	"fmt"
	"strings"
)

// Availability is the availability clause of a SearchFilter.
type Availability int

const (
	AvailabilityUnset Availability = iota
	RequireAvailable
	RequireUnavailable
)

func (a Availability) String() string {
	switch a {
	case RequireAvailable:
		return "available"
	case RequireUnavailable:
		return "unavailable"
	default:
		return "any"
	}
}

// AvailabilityFromFlag maps the boolean "show only available" toggle.
// false means no filtering, not "only unavailable".
func AvailabilityFromFlag(onlyAvailable bool) Availability {
	if onlyAvailable {
		return RequireAvailable
	}
	return AvailabilityUnset
}

// ParseAvailability reads the textual form used by query strings and tool
// arguments. "false" behaves like the boolean toggle and clears the clause;
// only "unavailable" selects unavailable users.
func ParseAvailability(s string) (Availability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "false":
		return AvailabilityUnset, nil
	case "true", "available":
		return RequireAvailable, nil
	case "unavailable":
		return RequireUnavailable, nil
	}
	return AvailabilityUnset, fmt.Errorf("unknown availability: %q", s)
}

// SearchFilter is a transient teammate query. Zero-valued clauses are inactive.
type SearchFilter struct {
	Skills            []string     `json:"skills"`
	Location          string       `json:"location"`
	HackathonInterest string       `json:"hackathonInterest"`
	Availability      Availability `json:"availability"`
}
