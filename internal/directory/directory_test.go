// ABOUTME: Tests for the directory snapshot, fixture data and memory store
// ABOUTME: Verifies lookups, deep copies and summary updates on append

package directory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aditya-web3/hack-team-up-now/internal/apperr"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

func TestSeedShape(t *testing.T) {
	dir := Seed()

	assert.Len(t, dir.Skills, 25)
	assert.Len(t, dir.Hackathons, 7)
	assert.Len(t, dir.Users, 12)
	assert.Len(t, dir.Messages, 5)
	assert.Len(t, dir.Conversations, 3)

	seen := make(map[string]bool)
	for _, u := range dir.Users {
		assert.False(t, seen[u.ID], "duplicate user id %s", u.ID)
		seen[u.ID] = true
	}
	for _, c := range dir.Conversations {
		require.Len(t, c.Participants, 2)
		assert.NotEqual(t, c.Participants[0], c.Participants[1])
		for _, p := range c.Participants {
			assert.True(t, seen[p], "participant %s is not a user", p)
		}
	}
	for _, s := range dir.Skills {
		assert.True(t, s.Category.Valid(), "skill %s has category %q", s.Name, s.Category)
	}
}

func TestSeedIsFresh(t *testing.T) {
	a := Seed()
	a.Users[0].Name = "changed"
	b := Seed()
	assert.Equal(t, "Alex Johnson", b.Users[0].Name)
}

func TestSeedTimestampsUseLocalClock(t *testing.T) {
	dir := Seed()
	first := dir.Messages[0].Timestamp
	assert.Equal(t, time.Local, first.Location())
	assert.True(t, first.Equal(time.Date(2025, 4, 15, 10, 30, 0, 0, time.Local)))
	assert.Equal(t, "10:30", first.Local().Format("15:04"))
}

func TestLookups(t *testing.T) {
	dir := Seed()

	u, err := dir.User("3")
	require.NoError(t, err)
	assert.Equal(t, "Marcus Chen", u.Name)

	_, err = dir.User("99")
	assert.True(t, apperr.IsNotFound(err))

	h, err := dir.Hackathon("3")
	require.NoError(t, err)
	assert.True(t, h.IsOnline)

	_, err = dir.Skill("0")
	assert.True(t, apperr.IsNotFound(err))

	_, err = dir.Conversation("nope")
	assert.True(t, apperr.IsNotFound(err))
}

func TestCloneIsDeep(t *testing.T) {
	dir := Seed()
	cp := dir.Clone()

	cp.Users[0].Skills[0].Name = "Changed"
	cp.Conversations[0].Participants[0] = "x"
	cp.Conversations[0].LastMessage.Content = "changed"

	assert.Equal(t, "React", dir.Users[0].Skills[0].Name)
	assert.Equal(t, "1", dir.Conversations[0].Participants[0])
	assert.NotEqual(t, "changed", dir.Conversations[0].LastMessage.Content)
}

func TestMemoryStoreAppendMessage(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Seed())

	msg := models.NewMessage("3", "5", "ping", time.Now())
	conv, err := store.AppendMessage(ctx, "2", *msg)
	require.NoError(t, err)
	assert.Equal(t, 0, conv.UnreadCount)
	assert.Equal(t, "ping", conv.LastMessage.Content)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Messages, 6)
	assert.Equal(t, msg.ID, snap.Messages[5].ID)

	stored, err := snap.Conversation("2")
	require.NoError(t, err)
	assert.Equal(t, msg.ID, stored.LastMessage.ID)
	assert.Equal(t, 0, stored.UnreadCount)
}

func TestMemoryStoreAppendUnknownConversation(t *testing.T) {
	store := NewMemoryStore(Seed())
	_, err := store.AppendMessage(context.Background(), "404", models.Message{ID: "x"})
	assert.True(t, apperr.IsNotFound(err))
}

func TestMemoryStoreAppendDuplicateID(t *testing.T) {
	store := NewMemoryStore(Seed())
	_, err := store.AppendMessage(context.Background(), "1", models.Message{ID: "1", SenderID: "1", ReceiverID: "2"})
	assert.True(t, apperr.IsInvariantViolation(err))
}

func TestMemoryStoreAppendRejectsOutsiders(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Seed())

	// Conversation 1 is between users 1 and 2.
	for _, pair := range [][2]string{{"3", "5"}, {"1", "5"}, {"3", "2"}, {"1", "1"}} {
		msg := models.NewMessage(pair[0], pair[1], "hijack", time.Now())
		_, err := store.AppendMessage(ctx, "1", *msg)
		assert.True(t, apperr.IsInvariantViolation(err), "%s->%s: got %v", pair[0], pair[1], err)
	}

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Messages, 5)
	stored, err := snap.Conversation("1")
	require.NoError(t, err)
	assert.Equal(t, "3", stored.LastMessage.ID)
}

func TestMemoryStoreLookupUserCopy(t *testing.T) {
	store := NewMemoryStore(Seed())
	u, err := store.LookupUser(context.Background(), "1")
	require.NoError(t, err)
	u.Skills[0].Name = "mutated"

	again, err := store.LookupUser(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "React", again.Skills[0].Name)
}

func TestMemoryStoreConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Seed())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg := models.NewMessage("1", "2", "hi", time.Now())
			_, err := store.AppendMessage(ctx, "1", *msg)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Messages, 25)
}
