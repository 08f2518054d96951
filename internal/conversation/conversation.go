// ABOUTME: Conversation aggregation over a directory snapshot
// ABOUTME: Resolves a user's conversations, counterparts and transcripts

package conversation

import (
	"sort"
	"strings"

	"github.com/Aditya-web3/hack-team-up-now/internal/apperr"
	"github.com/Aditya-web3/hack-team-up-now/internal/directory"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

// For returns the conversations userID participates in, in storage order.
func For(convs []models.Conversation, userID string) []models.Conversation {
	out := make([]models.Conversation, 0)
	for _, c := range convs {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	return out
}

// Counterpart returns the other participant of a two-party conversation.
func Counterpart(c models.Conversation, selfID string) (string, error) {
	if !c.HasParticipant(selfID) {
		return "", apperr.InvariantViolation("user %s is not a participant of conversation %s", selfID, c.ID)
	}

	other := ""
	for _, p := range c.Participants {
		if p == selfID {
			continue
		}
		if other != "" && p != other {
			return "", apperr.InvariantViolation("conversation %s has more than two participants", c.ID)
		}
		other = p
	}
	if other == "" {
		return "", apperr.InvariantViolation("conversation %s has no counterpart for %s", c.ID, selfID)
	}
	return other, nil
}

// MessagesFor returns every message exchanged inside the conversation's
// participant set, in storage order. An unknown conversation yields none.
func MessagesFor(dir *directory.Directory, conversationID string) []models.Message {
	out := make([]models.Message, 0)
	c, err := dir.Conversation(conversationID)
	if err != nil {
		return out
	}
	for _, m := range dir.Messages {
		if c.HasParticipant(m.SenderID) && c.HasParticipant(m.ReceiverID) {
			out = append(out, m)
		}
	}
	return out
}

// SortByTimestamp returns a copy ordered by timestamp; equal timestamps keep
// their storage order.
func SortByTimestamp(msgs []models.Message) []models.Message {
	out := append([]models.Message(nil), msgs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// UserLookup resolves a user id, as Directory.User does.
type UserLookup func(id string) (*models.User, error)

// Search keeps the conversations whose counterpart's name contains query,
// case-insensitively. Conversations whose counterpart cannot be resolved
// are dropped. An empty query keeps every resolvable conversation.
func Search(convs []models.Conversation, selfID, query string, lookup UserLookup) []models.Conversation {
	q := strings.ToLower(query)
	out := make([]models.Conversation, 0, len(convs))
	for _, c := range convs {
		otherID, err := Counterpart(c, selfID)
		if err != nil {
			continue
		}
		other, err := lookup(otherID)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(other.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// Preview is the one-line summary shown in a conversation list.
func Preview(c models.Conversation, selfID string) string {
	if c.LastMessage == nil {
		return ""
	}
	if c.LastMessage.SenderID == selfID {
		return "You: " + c.LastMessage.Content
	}
	return c.LastMessage.Content
}
