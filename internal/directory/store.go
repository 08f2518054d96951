// ABOUTME: Repository interface over the directory and its in-memory implementation
// ABOUTME: MemoryStore serialises appends so the conversation summary never drifts

package directory

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/Aditya-web3/hack-team-up-now/internal/directory Store

import (
	"context"
	"sync"

	"github.com/Aditya-web3/hack-team-up-now/internal/apperr"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

// Store is the storage capability set the core depends on.
type Store interface {
	// Snapshot returns a deep copy of every collection.
	Snapshot(ctx context.Context) (*Directory, error)

	// LookupUser returns the user or a NotFound error.
	LookupUser(ctx context.Context, id string) (*models.User, error)

	// ListConversations returns every conversation in storage order.
	ListConversations(ctx context.Context) ([]models.Conversation, error)

	// AppendMessage adds msg to the message log and, in the same step,
	// makes it the conversation's last message with zero unread.
	AppendMessage(ctx context.Context, conversationID string, msg models.Message) (*models.Conversation, error)

	Close() error
}

// MemoryStore keeps a Directory in process memory.
type MemoryStore struct {
	mu  sync.RWMutex
	dir *Directory
}

// NewMemoryStore wraps dir. The store takes ownership of dir.
func NewMemoryStore(dir *Directory) *MemoryStore {
	return &MemoryStore{dir: dir}
}

func (s *MemoryStore) Snapshot(ctx context.Context) (*Directory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir.Clone(), nil
}

func (s *MemoryStore) LookupUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, err := s.dir.User(id)
	if err != nil {
		return nil, err
	}
	out := *u
	out.Skills = append([]models.Skill(nil), u.Skills...)
	out.Hackathons = append([]models.Hackathon(nil), u.Hackathons...)
	return &out, nil
}

func (s *MemoryStore) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Conversation, len(s.dir.Conversations))
	for i, c := range s.dir.Conversations {
		out[i] = cloneConversation(c)
	}
	return out, nil
}

func (s *MemoryStore) AppendMessage(ctx context.Context, conversationID string, msg models.Message) (*models.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.dir.Conversation(conversationID)
	if err != nil {
		return nil, err
	}
	if err := CheckParties(*conv, msg); err != nil {
		return nil, err
	}
	for _, m := range s.dir.Messages {
		if m.ID == msg.ID {
			return nil, apperr.InvariantViolation("duplicate message id: %s", msg.ID)
		}
	}

	s.dir.Messages = append(s.dir.Messages, msg)
	last := msg
	conv.LastMessage = &last
	conv.UnreadCount = 0

	out := cloneConversation(*conv)
	return &out, nil
}

// CheckParties requires the message to run between two distinct participants
// of the stored conversation.
func CheckParties(conv models.Conversation, msg models.Message) error {
	if msg.SenderID == msg.ReceiverID || !conv.HasParticipant(msg.SenderID) || !conv.HasParticipant(msg.ReceiverID) {
		return apperr.InvariantViolation("%s and %s are not the participants of conversation %s",
			msg.SenderID, msg.ReceiverID, conv.ID)
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
