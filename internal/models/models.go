// ABOUTME: Core data models for skills, hackathons, users, messages, conversations
// ABOUTME: Provides constructors and small helpers on each model type

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Online is the location string used by remote participants.
const Online = "Online"

// Skill is a named ability a user can list on their profile.
type Skill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

// Hackathon is an event users can declare interest in.
type Hackathon struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`
	IsOnline  bool   `json:"isOnline"`
}

// User is a teammate profile.
type User struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Avatar     string      `json:"avatar,omitempty"`
	Location   string      `json:"location"`
	Bio        string      `json:"bio"`
	Skills     []Skill     `json:"skills"`
	Hackathons []Hackathon `json:"hackathons"`
	Available  bool        `json:"available"`
}

// Message is a direct message between two users.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// Conversation is a 1:1 thread. LastMessage and UnreadCount are a summary
// kept in step with the message log by the store that appends to it.
type Conversation struct {
	ID           string   `json:"id"`
	Participants []string `json:"participants"`
	LastMessage  *Message `json:"lastMessage,omitempty"`
	UnreadCount  int      `json:"unreadCount"`
}

// NewMessage creates an unread message with a generated UUID.
func NewMessage(senderID, receiverID, content string, at time.Time) *Message {
	return &Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  at,
		Read:       false,
	}
}

// Initials returns the upper-cased first letter of each word of the name.
func (u User) Initials() string {
	var sb strings.Builder
	for _, part := range strings.Fields(u.Name) {
		r := []rune(part)
		sb.WriteString(strings.ToUpper(string(r[0])))
	}
	return sb.String()
}

// HasSkill reports whether the user lists any of the given skill ids.
func (u User) HasSkill(ids ...string) bool {
	for _, s := range u.Skills {
		for _, id := range ids {
			if s.ID == id {
				return true
			}
		}
	}
	return false
}

// InterestedIn reports whether the user lists the hackathon.
func (u User) InterestedIn(hackathonID string) bool {
	for _, h := range u.Hackathons {
		if h.ID == hackathonID {
			return true
		}
	}
	return false
}

// SkillsByCategory groups the user's skills, keeping first-seen category order.
func (u User) SkillsByCategory() []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[SkillCategory]int)
	for _, s := range u.Skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, CategoryGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

// CategoryGroup is one category bucket of SkillsByCategory.
type CategoryGroup struct {
	Category SkillCategory
	Skills   []Skill
}

// HasParticipant reports whether id is one of the conversation's participants.
func (c Conversation) HasParticipant(id string) bool {
	for _, p := range c.Participants {
		if p == id {
			return true
		}
	}
	return false
}
