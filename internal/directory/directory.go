// ABOUTME: Read-only directory snapshot of reference data and messages
// ABOUTME: Holds skills, hackathons, users, messages, conversations with id lookups

package directory

import (
	"github.com/Aditya-web3/hack-team-up-now/internal/apperr"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

// Directory is a snapshot of every collection the core reads.
// Slices are in storage order.
type Directory struct {
	Skills        []models.Skill
	Hackathons    []models.Hackathon
	Users         []models.User
	Messages      []models.Message
	Conversations []models.Conversation
}

// User returns the user with the given id.
func (d *Directory) User(id string) (*models.User, error) {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i], nil
		}
	}
	return nil, apperr.NotFound("user not found: %s", id)
}

// Skill returns the skill with the given id.
func (d *Directory) Skill(id string) (*models.Skill, error) {
	for i := range d.Skills {
		if d.Skills[i].ID == id {
			return &d.Skills[i], nil
		}
	}
	return nil, apperr.NotFound("skill not found: %s", id)
}

// Hackathon returns the hackathon with the given id.
func (d *Directory) Hackathon(id string) (*models.Hackathon, error) {
	for i := range d.Hackathons {
		if d.Hackathons[i].ID == id {
			return &d.Hackathons[i], nil
		}
	}
	return nil, apperr.NotFound("hackathon not found: %s", id)
}

// Conversation returns the conversation with the given id.
func (d *Directory) Conversation(id string) (*models.Conversation, error) {
	for i := range d.Conversations {
		if d.Conversations[i].ID == id {
			return &d.Conversations[i], nil
		}
	}
	return nil, apperr.NotFound("conversation not found: %s", id)
}

// Clone returns a deep copy, so callers may mutate it freely.
func (d *Directory) Clone() *Directory {
	out := &Directory{
		Skills:        append([]models.Skill(nil), d.Skills...),
		Hackathons:    append([]models.Hackathon(nil), d.Hackathons...),
		Users:         make([]models.User, len(d.Users)),
		Messages:      append([]models.Message(nil), d.Messages...),
		Conversations: make([]models.Conversation, len(d.Conversations)),
	}
	for i, u := range d.Users {
		u.Skills = append([]models.Skill(nil), u.Skills...)
		u.Hackathons = append([]models.Hackathon(nil), u.Hackathons...)
		out.Users[i] = u
	}
	for i, c := range d.Conversations {
		out.Conversations[i] = cloneConversation(c)
	}
	return out
}

func cloneConversation(c models.Conversation) models.Conversation {
	c.Participants = append([]string(nil), c.Participants...)
	if c.LastMessage != nil {
		last := *c.LastMessage
		c.LastMessage = &last
	}
	return c
}
