// ABOUTME: Transcript grouping and timestamp labels
// ABOUTME: Buckets messages by local calendar date for display

package conversation

import (
	"time"

	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

// DayLabelLayout formats the date header of a transcript bucket.
const DayLabelLayout = "January 2, 2006"

// DayGroup is one calendar-date bucket of a transcript.
type DayGroup struct {
	Date     models.Date      `json:"date"`
	Label    string           `json:"label"`
	Messages []models.Message `json:"messages"`
}

// GroupByDate partitions msgs by calendar date in loc. Buckets appear in
// first-seen order and keep the input order of their messages.
func GroupByDate(msgs []models.Message, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.Local
	}

	groups := make([]DayGroup, 0)
	index := make(map[models.Date]int)
	for _, m := range msgs {
		local := m.Timestamp.In(loc)
		day := models.DateOf(local)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Date: day, Label: local.Format(DayLabelLayout)})
		}
		groups[i].Messages = append(groups[i].Messages, m)
	}
	return groups
}

// FormatTimestamp renders ts relative to now: a clock time for today,
// month and day for this year, a full date otherwise.
func FormatTimestamp(ts, now time.Time) string {
	local := ts.In(now.Location())
	switch {
	case models.DateOf(local) == models.DateOf(now):
		return local.Format("3:04 PM")
	case local.Year() == now.Year():
		return local.Format("Jan 2")
	default:
		return local.Format("Jan 2, 2006")
	}
}
