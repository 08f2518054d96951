// ABOUTME: Application service shared by the CLI, TUI, MCP, and HTTP surfaces
// ABOUTME: Reads store snapshots and delegates to the matcher, aggregator, and composer

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Aditya-web3/hack-team-up-now/internal/compose"
	"github.com/Aditya-web3/hack-team-up-now/internal/conversation"
	"github.com/Aditya-web3/hack-team-up-now/internal/directory"
	"github.com/Aditya-web3/hack-team-up-now/internal/logging"
	"github.com/Aditya-web3/hack-team-up-now/internal/match"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

// Service answers the questions every front end asks.
type Service struct {
	store    directory.Store
	composer *compose.Composer
	log      *slog.Logger
}

// Option configures a Service.
type Option func(*serviceOptions)

type serviceOptions struct {
	log     *slog.Logger
	compose []compose.Option
}

// WithLogger sets the logger. The default discards.
func WithLogger(log *slog.Logger) Option {
	return func(o *serviceOptions) { o.log = log }
}

// WithComposeOptions passes options through to the message composer.
func WithComposeOptions(opts ...compose.Option) Option {
	return func(o *serviceOptions) { o.compose = append(o.compose, opts...) }
}

// New creates a Service over store.
func New(store directory.Store, opts ...Option) *Service {
	o := serviceOptions{log: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Service{
		store:    store,
		composer: compose.New(store, o.compose...),
		log:      o.log,
	}
}

// Store returns the backing store.
func (s *Service) Store() directory.Store {
	return s.store
}

// ConversationSummary is one row of a conversation list.
type ConversationSummary struct {
	Conversation models.Conversation `json:"conversation"`
	Counterpart  models.User         `json:"counterpart"`
	Preview      string              `json:"preview"`
}

// Transcript is a conversation with its messages grouped by day.
type Transcript struct {
	Conversation models.Conversation     `json:"conversation"`
	Messages     []models.Message        `json:"messages"`
	Days         []conversation.DayGroup `json:"days"`
}

func (s *Service) snapshot(ctx context.Context) (*directory.Directory, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		s.log.Error("snapshot failed", "err", err)
		return nil, err
	}
	return snap, nil
}

// SearchUsers returns the users passing every active clause of f.
func (s *Service) SearchUsers(ctx context.Context, f models.SearchFilter) ([]models.User, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	users := match.Match(snap.Users, f)
	s.log.Debug("user search", "clauses", match.Clauses(f), "matches", len(users))
	return users, nil
}

// Profile returns one user.
func (s *Service) Profile(ctx context.Context, id string) (*models.User, error) {
	return s.store.LookupUser(ctx, id)
}

func (s *Service) Skills(ctx context.Context) ([]models.Skill, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Skills, nil
}

func (s *Service) Hackathons(ctx context.Context) ([]models.Hackathon, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Hackathons, nil
}

// Conversations lists selfID's conversations whose counterpart name contains
// query. Conversations with a malformed participant list are skipped.
func (s *Service) Conversations(ctx context.Context, selfID, query string) ([]ConversationSummary, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := snap.User(selfID); err != nil {
		return nil, err
	}

	mine := conversation.For(snap.Conversations, selfID)
	found := conversation.Search(mine, selfID, query, snap.User)

	out := make([]ConversationSummary, 0, len(found))
	for _, c := range found {
		otherID, err := conversation.Counterpart(c, selfID)
		if err != nil {
			s.log.Warn("skipping conversation", "conversation", c.ID, "err", err)
			continue
		}
		other, err := snap.User(otherID)
		if err != nil {
			s.log.Warn("skipping conversation", "conversation", c.ID, "err", err)
			continue
		}
		out = append(out, ConversationSummary{
			Conversation: c,
			Counterpart:  *other,
			Preview:      conversation.Preview(c, selfID),
		})
	}
	return out, nil
}

// Transcript returns the messages of conversationID in storage order,
// grouped by calendar date in loc.
func (s *Service) Transcript(ctx context.Context, conversationID string, loc *time.Location) (*Transcript, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	conv, err := snap.Conversation(conversationID)
	if err != nil {
		return nil, err
	}
	msgs := conversation.MessagesFor(snap, conversationID)
	return &Transcript{
		Conversation: *conv,
		Messages:     msgs,
		Days:         conversation.GroupByDate(msgs, loc),
	}, nil
}

// Send posts content from selfID to the other participant of conversationID.
func (s *Service) Send(ctx context.Context, selfID, conversationID, content string) (*models.Message, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	conv, err := snap.Conversation(conversationID)
	if err != nil {
		return nil, err
	}
	sender, err := snap.User(selfID)
	if err != nil {
		return nil, err
	}
	otherID, err := conversation.Counterpart(*conv, selfID)
	if err != nil {
		return nil, err
	}
	recipient, err := snap.User(otherID)
	if err != nil {
		return nil, err
	}

	msg, err := s.composer.Send(ctx, conv, *sender, *recipient, content)
	if err != nil {
		s.log.Warn("send rejected", "conversation", conversationID, "sender", selfID, "err", err)
		return nil, err
	}
	s.log.Info("message sent", "conversation", conversationID, "sender", selfID, "recipient", otherID, "id", msg.ID)
	return msg, nil
}
