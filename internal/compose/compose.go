// ABOUTME: Message composer appending direct messages to a conversation
// ABOUTME: Validates content and parties, then updates the conversation summary

package compose

import (
	"context"
	"strings"
	"time"

	"github.com/Aditya-web3/hack-team-up-now/internal/apperr"
	"github.com/Aditya-web3/hack-team-up-now/internal/directory"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

// Composer sends messages through a Store.
type Composer struct {
	store directory.Store
	now   func() time.Time
	newID func() string
}

// Option configures a Composer.
type Option func(*Composer)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) { c.now = now }
}

// WithIDFunc overrides the message id source. The default is a random UUID.
func WithIDFunc(newID func() string) Option {
	return func(c *Composer) { c.newID = newID }
}

// New creates a Composer writing to store.
func New(store directory.Store, opts ...Option) *Composer {
	c := &Composer{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send appends a message from sender to recipient on conv. On success conv's
// last message is the new message and its unread count is zero. On any
// error conv is left as it was.
func (c *Composer) Send(ctx context.Context, conv *models.Conversation, sender, recipient models.User, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Validation("message content cannot be empty")
	}
	if conv == nil {
		return nil, apperr.InvariantViolation("no conversation to send to")
	}
	if sender.ID == recipient.ID {
		return nil, apperr.InvariantViolation("sender and recipient are both %s", sender.ID)
	}
	if !conv.HasParticipant(sender.ID) || !conv.HasParticipant(recipient.ID) {
		return nil, apperr.InvariantViolation("%s and %s are not the participants of conversation %s",
			sender.ID, recipient.ID, conv.ID)
	}

	msg := *models.NewMessage(sender.ID, recipient.ID, content, c.now())
	if c.newID != nil {
		msg.ID = c.newID()
	}

	if _, err := c.store.AppendMessage(ctx, conv.ID, msg); err != nil {
		return nil, err
	}

	last := msg
	conv.LastMessage = &last
	conv.UnreadCount = 0
	return &msg, nil
}
