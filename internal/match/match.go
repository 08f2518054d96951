// ABOUTME: Teammate matcher applying a search filter to a user list
// ABOUTME: Clauses are AND-combined; output preserves input order

package match

import (
	"strings"

	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

// Match returns the users that pass every active clause of f, in input order.
// With no active clause every user passes.
func Match(users []models.User, f models.SearchFilter) []models.User {
	keep := Predicate(f)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}

// Predicate returns the per-user test for f.
func Predicate(f models.SearchFilter) func(models.User) bool {
	location := strings.ToLower(f.Location)
	return func(u models.User) bool {
		if len(f.Skills) > 0 && !u.HasSkill(f.Skills...) {
			return false
		}
		// Online users are never excluded by a location query.
		if location != "" && u.Location != models.Online &&
			!strings.Contains(strings.ToLower(u.Location), location) {
			return false
		}
		if f.HackathonInterest != "" && !u.InterestedIn(f.HackathonInterest) {
			return false
		}
		switch f.Availability {
		case models.RequireAvailable:
			if !u.Available {
				return false
			}
		case models.RequireUnavailable:
			if u.Available {
				return false
			}
		}
		return true
	}
}

// Clauses names the active clauses of f.
func Clauses(f models.SearchFilter) []string {
	var active []string
	if len(f.Skills) > 0 {
		active = append(active, "skills")
	}
	if f.Location != "" {
		active = append(active, "location")
	}
	if f.HackathonInterest != "" {
		active = append(active, "hackathon")
	}
	if f.Availability != models.AvailabilityUnset {
		active = append(active, "availability")
	}
	return active
}
