// ABOUTME: Tests for conversation aggregation
// ABOUTME: Covers membership, counterparts, transcripts, grouping and labels

package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aditya-web3/hack-team-up-now/internal/apperr"
	"github.com/Aditya-web3/hack-team-up-now/internal/directory"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

func msgIDs(msgs []models.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.ID
	}
	return out
}

func TestFor(t *testing.T) {
	convs := directory.Seed().Conversations

	got := For(convs, "5")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	assert.Empty(t, For(convs, "12"))
	assert.NotNil(t, For(convs, "12"))
}

func TestForKeepsStorageOrder(t *testing.T) {
	convs := []models.Conversation{
		{ID: "b", Participants: []string{"1", "3"}},
		{ID: "x", Participants: []string{"2", "3"}},
		{ID: "a", Participants: []string{"2", "1"}},
	}
	got := For(convs, "1")
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestCounterpartSymmetry(t *testing.T) {
	c := models.Conversation{ID: "1", Participants: []string{"a", "b"}}

	other, err := Counterpart(c, "a")
	require.NoError(t, err)
	assert.Equal(t, "b", other)

	other, err = Counterpart(c, "b")
	require.NoError(t, err)
	assert.Equal(t, "a", other)
}

func TestCounterpartInvariantViolations(t *testing.T) {
	tests := []struct {
		name         string
		participants []string
		self         string
	}{
		{"self absent", []string{"a", "b"}, "c"},
		{"empty", nil, "a"},
		{"only self", []string{"a"}, "a"},
		{"self twice", []string{"a", "a"}, "a"},
		{"three parties", []string{"a", "b", "c"}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Counterpart(models.Conversation{ID: "x", Participants: tt.participants}, tt.self)
			assert.True(t, apperr.IsInvariantViolation(err), "got %v", err)
		})
	}
}

func TestMessagesForOnlyPair(t *testing.T) {
	dir := &directory.Directory{
		Conversations: []models.Conversation{{ID: "1", Participants: []string{"1", "2"}}},
		Messages: []models.Message{
			{ID: "m1", SenderID: "1", ReceiverID: "2"},
			{ID: "m2", SenderID: "1", ReceiverID: "3"},
			{ID: "m3", SenderID: "2", ReceiverID: "1"},
			{ID: "m4", SenderID: "3", ReceiverID: "1"},
		},
	}

	assert.Equal(t, []string{"m1", "m3"}, msgIDs(MessagesFor(dir, "1")))
}

func TestMessagesForUnknownConversation(t *testing.T) {
	got := MessagesFor(directory.Seed(), "missing")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMessagesForSeed(t *testing.T) {
	dir := directory.Seed()
	assert.Equal(t, []string{"1", "2", "3"}, msgIDs(MessagesFor(dir, "1")))
	assert.Equal(t, []string{"4"}, msgIDs(MessagesFor(dir, "2")))
}

func TestSortByTimestampStable(t *testing.T) {
	base := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	msgs := []models.Message{
		{ID: "late", Timestamp: base.Add(time.Hour)},
		{ID: "tie-a", Timestamp: base},
		{ID: "tie-b", Timestamp: base},
	}

	sorted := SortByTimestamp(msgs)
	assert.Equal(t, []string{"tie-a", "tie-b", "late"}, msgIDs(sorted))
	assert.Equal(t, "late", msgs[0].ID, "input must not be reordered")
}

func TestSearch(t *testing.T) {
	dir := directory.Seed()
	convs := append(dir.Conversations, models.Conversation{ID: "ghost", Participants: []string{"1", "404"}})

	got := Search(convs, "1", "SOF", dir.User)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	all := Search(For(convs, "1"), "1", "", dir.User)
	assert.Len(t, all, 1, "unresolvable counterpart is dropped")
}

func TestPreview(t *testing.T) {
	c := models.Conversation{ID: "1", Participants: []string{"1", "2"}}
	assert.Equal(t, "", Preview(c, "1"))

	c.LastMessage = &models.Message{SenderID: "1", Content: "hello"}
	assert.Equal(t, "You: hello", Preview(c, "1"))
	assert.Equal(t, "hello", Preview(c, "2"))
}

func TestGroupByDate(t *testing.T) {
	day1 := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 4, 16, 9, 0, 0, 0, time.UTC)
	msgs := []models.Message{
		{ID: "a", Timestamp: day2},
		{ID: "b", Timestamp: day1},
		{ID: "c", Timestamp: day2.Add(time.Hour)},
	}

	groups := GroupByDate(msgs, time.UTC)
	require.Len(t, groups, 2)
	assert.Equal(t, "April 16, 2025", groups[0].Label)
	assert.Equal(t, []string{"a", "c"}, msgIDs(groups[0].Messages))
	assert.Equal(t, "April 15, 2025", groups[1].Label)
	assert.Equal(t, []string{"b"}, msgIDs(groups[1].Messages))
}

func TestGroupByDateUsesLocalDate(t *testing.T) {
	// 23:30 UTC on the 15th is already the 16th in Tokyo.
	ts := time.Date(2025, 4, 15, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	groups := GroupByDate([]models.Message{{ID: "a", Timestamp: ts}}, tokyo)
	require.Len(t, groups, 1)
	assert.Equal(t, models.MustDate("2025-04-16"), groups[0].Date)
}

func TestGroupByDateEmpty(t *testing.T) {
	assert.Empty(t, GroupByDate(nil, time.UTC))
}

func TestFormatTimestamp(t *testing.T) {
	now := time.Date(2025, 4, 15, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"today", time.Date(2025, 4, 15, 10, 30, 0, 0, time.UTC), "10:30 AM"},
		{"this year", time.Date(2025, 1, 3, 10, 30, 0, 0, time.UTC), "Jan 3"},
		{"older", time.Date(2024, 12, 31, 10, 30, 0, 0, time.UTC), "Dec 31, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.ts, now))
		})
	}
}
