// ABOUTME: Tests for the message composer
// ABOUTME: Uses a gomock store for failure paths and the memory store end to end

package compose

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aditya-web3/hack-team-up-now/internal/apperr"
	"github.com/Aditya-web3/hack-team-up-now/internal/conversation"
	"github.com/Aditya-web3/hack-team-up-now/internal/directory"
	"github.com/Aditya-web3/hack-team-up-now/internal/directory/mocks"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

var (
	alex  = models.User{ID: "1", Name: "Alex Johnson"}
	sofia = models.User{ID: "2", Name: "Sofia Rodriguez"}
	liam  = models.User{ID: "5", Name: "Liam Wilson"}
)

func fixedClock() time.Time {
	return time.Date(2025, 4, 18, 9, 0, 0, 0, time.UTC)
}

func TestSendClearsUnread(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)

	conv := &models.Conversation{ID: "1", Participants: []string{"1", "2"}, UnreadCount: 3}

	store.EXPECT().
		AppendMessage(gomock.Any(), "1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, m models.Message) (*models.Conversation, error) {
			assert.Equal(t, "m-1", m.ID)
			assert.Equal(t, "hi", m.Content)
			assert.False(t, m.Read)
			return &models.Conversation{ID: "1", Participants: []string{"1", "2"}, LastMessage: &m}, nil
		})

	c := New(store, WithClock(fixedClock), WithIDFunc(func() string { return "m-1" }))
	msg, err := c.Send(context.Background(), conv, alex, sofia, "hi")
	require.NoError(t, err)

	assert.Equal(t, "1", msg.SenderID)
	assert.Equal(t, "2", msg.ReceiverID)
	assert.Equal(t, fixedClock(), msg.Timestamp)
	assert.Equal(t, 0, conv.UnreadCount)
	require.NotNil(t, conv.LastMessage)
	assert.Equal(t, "hi", conv.LastMessage.Content)
}

func TestSendRejectsBlankContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	// No AppendMessage expectation: the store must not be touched.

	previous := &models.Message{ID: "old", Content: "earlier"}
	conv := &models.Conversation{ID: "1", Participants: []string{"1", "2"}, LastMessage: previous, UnreadCount: 2}

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := New(store).Send(context.Background(), conv, alex, sofia, content)
		assert.True(t, apperr.IsValidation(err), "content %q: got %v", content, err)
	}

	assert.Same(t, previous, conv.LastMessage)
	assert.Equal(t, 2, conv.UnreadCount)
}

func TestSendRejectsStrangers(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	conv := &models.Conversation{ID: "1", Participants: []string{"1", "2"}, UnreadCount: 1}

	_, err := New(store).Send(context.Background(), conv, alex, liam, "hello")
	assert.True(t, apperr.IsInvariantViolation(err))

	_, err = New(store).Send(context.Background(), conv, alex, alex, "hello")
	assert.True(t, apperr.IsInvariantViolation(err))

	assert.Nil(t, conv.LastMessage)
	assert.Equal(t, 1, conv.UnreadCount)
}

func TestSendStoreFailureLeavesConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	conv := &models.Conversation{ID: "1", Participants: []string{"1", "2"}, UnreadCount: 4}

	boom := errors.New("disk full")
	store.EXPECT().AppendMessage(gomock.Any(), "1", gomock.Any()).Return(nil, boom)

	_, err := New(store).Send(context.Background(), conv, alex, sofia, "hi")
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, conv.LastMessage)
	assert.Equal(t, 4, conv.UnreadCount)
}

func TestSendThroughMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := directory.NewMemoryStore(directory.Seed())
	c := New(store, WithClock(fixedClock))

	convs, err := store.ListConversations(ctx)
	require.NoError(t, err)
	conv := convs[0]

	msg, err := c.Send(ctx, &conv, sofia, alex, "Sounds great, let's do it")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	transcript := conversation.MessagesFor(snap, "1")
	require.Len(t, transcript, 4)
	assert.Equal(t, msg.ID, transcript[3].ID)

	stored, err := snap.Conversation("1")
	require.NoError(t, err)
	assert.Equal(t, msg.ID, stored.LastMessage.ID)
	assert.Equal(t, conv.LastMessage.ID, stored.LastMessage.ID)
}

func TestSendGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	store := directory.NewMemoryStore(directory.Seed())
	c := New(store)
	conv := &models.Conversation{ID: "1", Participants: []string{"1", "2"}}

	a, err := c.Send(ctx, conv, alex, sofia, "one")
	require.NoError(t, err)
	b, err := c.Send(ctx, conv, alex, sofia, "two")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSendRejectsForgedConversation(t *testing.T) {
	ctx := context.Background()
	store := directory.NewMemoryStore(directory.Seed())
	marcus := models.User{ID: "3", Name: "Marcus Chen"}

	// Stored conversation 1 is between users 1 and 2.
	forged := &models.Conversation{ID: "1", Participants: []string{"3", "5"}}
	_, err := New(store).Send(ctx, forged, marcus, liam, "hijack")
	assert.True(t, apperr.IsInvariantViolation(err))
	assert.Nil(t, forged.LastMessage)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	stored, err := snap.Conversation("1")
	require.NoError(t, err)
	assert.Equal(t, "3", stored.LastMessage.ID)
	assert.Len(t, conversation.MessagesFor(snap, "1"), 3)
	assert.Len(t, snap.Messages, 5)
}
