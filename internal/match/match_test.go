// ABOUTME: Tests for the teammate matcher
// ABOUTME: Covers each clause, conjunction, ordering and idempotence

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aditya-web3/hack-team-up-now/internal/directory"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

func ids(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestMatchLocationScenario(t *testing.T) {
	users := []models.User{
		{ID: "A", Location: "London"},
		{ID: "B", Location: "Online"},
		{ID: "C", Location: "Paris"},
	}
	f := models.SearchFilter{Location: "london", Availability: models.AvailabilityFromFlag(false)}

	assert.Equal(t, []string{"A", "B"}, ids(Match(users, f)))
}

func TestMatchNoClauses(t *testing.T) {
	users := directory.Seed().Users
	assert.Equal(t, ids(users), ids(Match(users, models.SearchFilter{})))
}

func TestMatchSeed(t *testing.T) {
	users := directory.Seed().Users

	tests := []struct {
		name   string
		filter models.SearchFilter
		want   []string
	}{
		{"skill React", models.SearchFilter{Skills: []string{"1"}}, []string{"1", "2", "8", "9"}},
		{"skills React or Solidity", models.SearchFilter{Skills: []string{"15", "1"}}, []string{"1", "2", "6", "8", "9"}},
		{"location usa keeps online", models.SearchFilter{Location: "USA"}, []string{"3", "4", "5"}},
		{"hackathon HackFS", models.SearchFilter{HackathonInterest: "3"}, []string{"1", "3", "7", "12"}},
		{"only available", models.SearchFilter{Availability: models.RequireAvailable}, []string{"1", "2", "4", "5", "6", "8", "9", "10", "11", "12"}},
		{"only unavailable", models.SearchFilter{Availability: models.RequireUnavailable}, []string{"3", "7"}},
		{"unknown skill", models.SearchFilter{Skills: []string{"999"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Match(users, tt.filter)))
		})
	}
}

func TestMatchOnlineOverride(t *testing.T) {
	remote := models.User{ID: "r", Location: models.Online}
	for _, q := range []string{"london", "zzz", "on", "ONLINE"} {
		got := Match([]models.User{remote}, models.SearchFilter{Location: q})
		assert.Len(t, got, 1, "query %q", q)
	}

	// Only the exact literal gets the pass-through.
	lower := models.User{ID: "l", Location: "online"}
	assert.Empty(t, Match([]models.User{lower}, models.SearchFilter{Location: "london"}))
}

func TestMatchConjunctionIsIntersection(t *testing.T) {
	users := directory.Seed().Users
	filters := []models.SearchFilter{
		{Skills: []string{"1"}},
		{Location: "usa"},
		{HackathonInterest: "4"},
		{Availability: models.RequireAvailable},
	}

	for i := range filters {
		for j := range filters {
			if i == j {
				continue
			}
			combined := merge(filters[i], filters[j])
			want := intersect(ids(Match(users, filters[i])), ids(Match(users, filters[j])))
			assert.Equal(t, want, ids(Match(users, combined)), "filters %d and %d", i, j)
		}
	}
}

func TestMatchIdempotentAndOrdered(t *testing.T) {
	users := directory.Seed().Users
	f := models.SearchFilter{Skills: []string{"3", "13"}, Availability: models.RequireAvailable}

	once := Match(users, f)
	twice := Match(once, f)
	assert.Equal(t, ids(once), ids(twice))

	pos := make(map[string]int)
	for i, u := range users {
		pos[u.ID] = i
	}
	for i := 1; i < len(once); i++ {
		assert.Less(t, pos[once[i-1].ID], pos[once[i].ID])
	}
}

func TestClauses(t *testing.T) {
	assert.Empty(t, Clauses(models.SearchFilter{}))
	assert.Equal(t, []string{"skills", "availability"},
		Clauses(models.SearchFilter{Skills: []string{"1"}, Availability: models.RequireUnavailable}))
}

func merge(a, b models.SearchFilter) models.SearchFilter {
	out := a
	if len(b.Skills) > 0 {
		out.Skills = b.Skills
	}
	if b.Location != "" {
		out.Location = b.Location
	}
	if b.HackathonInterest != "" {
		out.HackathonInterest = b.HackathonInterest
	}
	if b.Availability != models.AvailabilityUnset {
		out.Availability = b.Availability
	}
	return out
}

func intersect(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, id := range b {
		in[id] = true
	}
	out := []string{}
	for _, id := range a {
		if in[id] {
			out = append(out, id)
		}
	}
	return out
}
