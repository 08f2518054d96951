// ABOUTME: SQLite implementation of the directory Store
// ABOUTME: Appends and conversation summary updates share one transaction

package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/Aditya-web3/hack-team-up-now/internal/apperr"
	"github.com/Aditya-web3/hack-team-up-now/internal/directory"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

// Store persists the directory in SQLite.
type Store struct {
	db *sql.DB
}

var _ directory.Store = (*Store)(nil)

// NewStore wraps an initialised database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open initialises the database at path and seeds it from seed when empty.
func Open(ctx context.Context, path string, seed *directory.Directory) (*Store, error) {
	conn, err := InitDB(path)
	if err != nil {
		return nil, err
	}

	empty, err := IsEmpty(ctx, conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if empty && seed != nil {
		if err := Seed(ctx, conn, seed); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return NewStore(conn), nil
}

// DB returns the underlying connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Snapshot loads every table. Each result set is drained before the next
// query runs because the pool holds a single connection.
func (s *Store) Snapshot(ctx context.Context) (*directory.Directory, error) {
	skills, err := s.listSkills(ctx)
	if err != nil {
		return nil, err
	}
	hackathons, err := s.listHackathons(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.listUsers(ctx, "")
	if err != nil {
		return nil, err
	}
	messages, err := s.listMessages(ctx)
	if err != nil {
		return nil, err
	}
	convs, err := s.ListConversations(ctx)
	if err != nil {
		return nil, err
	}

	return &directory.Directory{
		Skills:        skills,
		Hackathons:    hackathons,
		Users:         users,
		Messages:      messages,
		Conversations: convs,
	}, nil
}

func (s *Store) LookupUser(ctx context.Context, id string) (*models.User, error) {
	users, err := s.listUsers(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperr.NotFound("user not found: %s", id)
	}
	return &users[0], nil
}

func (s *Store) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.unread_count,
		       m.id, m.sender_id, m.receiver_id, m.content, m.sent_at, m.read
		  FROM conversations c
		  LEFT JOIN messages m ON m.id = c.last_message_id
		 ORDER BY c.seq`)
	if err != nil {
		return nil, errors.Wrap(err, "query conversations")
	}

	convs := make([]models.Conversation, 0)
	index := make(map[string]int)
	for rows.Next() {
		var c models.Conversation
		var mID, sender, receiver, content, sentAt sql.NullString
		var read sql.NullBool
		if err := rows.Scan(&c.ID, &c.UnreadCount, &mID, &sender, &receiver, &content, &sentAt, &read); err != nil {
			_ = rows.Close()
			return nil, errors.Wrap(err, "scan conversation")
		}
		if mID.Valid {
			ts, err := time.Parse(timeLayout, sentAt.String)
			if err != nil {
				_ = rows.Close()
				return nil, errors.Wrapf(err, "parse timestamp of message %s", mID.String)
			}
			c.LastMessage = &models.Message{
				ID:         mID.String,
				SenderID:   sender.String,
				ReceiverID: receiver.String,
				Content:    content.String,
				Timestamp:  ts,
				Read:       read.Bool,
			}
		}
		index[c.ID] = len(convs)
		convs = append(convs, c)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `
		SELECT conversation_id, user_id FROM conversation_participants
		 ORDER BY conversation_id, position`)
	if err != nil {
		return nil, errors.Wrap(err, "query participants")
	}
	for rows.Next() {
		var convID, userID string
		if err := rows.Scan(&convID, &userID); err != nil {
			_ = rows.Close()
			return nil, errors.Wrap(err, "scan participant")
		}
		if i, ok := index[convID]; ok {
			convs[i].Participants = append(convs[i].Participants, userID)
		}
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}
	return convs, nil
}

func (s *Store) AppendMessage(ctx context.Context, conversationID string, msg models.Message) (*models.Conversation, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin append")
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversations WHERE id = ?`, conversationID).Scan(&exists)
	if err != nil {
		return nil, errors.Wrap(err, "check conversation")
	}
	if exists == 0 {
		return nil, apperr.NotFound("conversation not found: %s", conversationID)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT user_id FROM conversation_participants WHERE conversation_id = ? ORDER BY position`, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "query participants")
	}
	conv := models.Conversation{ID: conversationID}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			_ = rows.Close()
			return nil, errors.Wrap(err, "scan participant")
		}
		conv.Participants = append(conv.Participants, userID)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}
	if err := directory.CheckParties(conv, msg); err != nil {
		return nil, err
	}

	var dup int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE id = ?`, msg.ID).Scan(&dup)
	if err != nil {
		return nil, errors.Wrap(err, "check message id")
	}
	if dup > 0 {
		return nil, apperr.InvariantViolation("duplicate message id: %s", msg.ID)
	}

	if err := insertMessage(ctx, tx, msg.ID, msg.SenderID, msg.ReceiverID, msg.Content, msg.Timestamp, msg.Read); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE conversations SET last_message_id = ?, unread_count = 0 WHERE id = ?`,
		msg.ID, conversationID); err != nil {
		return nil, errors.Wrapf(err, "update conversation %s", conversationID)
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit append")
	}

	convs, err := s.ListConversations(ctx)
	if err != nil {
		return nil, err
	}
	for i := range convs {
		if convs[i].ID == conversationID {
			return &convs[i], nil
		}
	}
	return nil, apperr.NotFound("conversation not found: %s", conversationID)
}

func (s *Store) listSkills(ctx context.Context) ([]models.Skill, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, category FROM skills ORDER BY seq`)
	if err != nil {
		return nil, errors.Wrap(err, "query skills")
	}
	skills := make([]models.Skill, 0)
	for rows.Next() {
		var sk models.Skill
		var category string
		if err := rows.Scan(&sk.ID, &sk.Name, &category); err != nil {
			_ = rows.Close()
			return nil, errors.Wrap(err, "scan skill")
		}
		sk.Category = models.SkillCategory(category)
		skills = append(skills, sk)
	}
	return skills, closeRows(rows)
}

func (s *Store) listHackathons(ctx context.Context) ([]models.Hackathon, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, location, start_date, end_date, is_online
		  FROM hackathons ORDER BY seq`)
	if err != nil {
		return nil, errors.Wrap(err, "query hackathons")
	}
	hackathons := make([]models.Hackathon, 0)
	for rows.Next() {
		var h models.Hackathon
		var start, end string
		if err := rows.Scan(&h.ID, &h.Name, &h.Location, &start, &end, &h.IsOnline); err != nil {
			_ = rows.Close()
			return nil, errors.Wrap(err, "scan hackathon")
		}
		if h.StartDate, err = models.ParseDate(start); err != nil {
			_ = rows.Close()
			return nil, err
		}
		if h.EndDate, err = models.ParseDate(end); err != nil {
			_ = rows.Close()
			return nil, err
		}
		hackathons = append(hackathons, h)
	}
	return hackathons, closeRows(rows)
}

// listUsers loads all users, or only onlyID when it is set.
func (s *Store) listUsers(ctx context.Context, onlyID string) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, avatar, location, bio, available
		  FROM users WHERE ? = '' OR id = ? ORDER BY seq`, onlyID, onlyID)
	if err != nil {
		return nil, errors.Wrap(err, "query users")
	}
	users := make([]models.User, 0)
	index := make(map[string]int)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Avatar, &u.Location, &u.Bio, &u.Available); err != nil {
			_ = rows.Close()
			return nil, errors.Wrap(err, "scan user")
		}
		u.Skills = []models.Skill{}
		u.Hackathons = []models.Hackathon{}
		index[u.ID] = len(users)
		users = append(users, u)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return users, nil
	}

	rows, err = s.db.QueryContext(ctx, `
		SELECT us.user_id, s.id, s.name, s.category
		  FROM user_skills us JOIN skills s ON s.id = us.skill_id
		 WHERE ? = '' OR us.user_id = ?
		 ORDER BY us.user_id, us.position`, onlyID, onlyID)
	if err != nil {
		return nil, errors.Wrap(err, "query user skills")
	}
	for rows.Next() {
		var userID, category string
		var sk models.Skill
		if err := rows.Scan(&userID, &sk.ID, &sk.Name, &category); err != nil {
			_ = rows.Close()
			return nil, errors.Wrap(err, "scan user skill")
		}
		sk.Category = models.SkillCategory(category)
		if i, ok := index[userID]; ok {
			users[i].Skills = append(users[i].Skills, sk)
		}
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `
		SELECT uh.user_id, h.id, h.name, h.location, h.start_date, h.end_date, h.is_online
		  FROM user_hackathons uh JOIN hackathons h ON h.id = uh.hackathon_id
		 WHERE ? = '' OR uh.user_id = ?
		 ORDER BY uh.user_id, uh.position`, onlyID, onlyID)
	if err != nil {
		return nil, errors.Wrap(err, "query user hackathons")
	}
	for rows.Next() {
		var userID, start, end string
		var h models.Hackathon
		if err := rows.Scan(&userID, &h.ID, &h.Name, &h.Location, &start, &end, &h.IsOnline); err != nil {
			_ = rows.Close()
			return nil, errors.Wrap(err, "scan user hackathon")
		}
		if h.StartDate, err = models.ParseDate(start); err != nil {
			_ = rows.Close()
			return nil, err
		}
		if h.EndDate, err = models.ParseDate(end); err != nil {
			_ = rows.Close()
			return nil, err
		}
		if i, ok := index[userID]; ok {
			users[i].Hackathons = append(users[i].Hackathons, h)
		}
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) listMessages(ctx context.Context) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sender_id, receiver_id, content, sent_at, read
		  FROM messages ORDER BY seq`)
	if err != nil {
		return nil, errors.Wrap(err, "query messages")
	}
	messages := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		var sentAt string
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &sentAt, &m.Read); err != nil {
			_ = rows.Close()
			return nil, errors.Wrap(err, "scan message")
		}
		if m.Timestamp, err = time.Parse(timeLayout, sentAt); err != nil {
			_ = rows.Close()
			return nil, errors.Wrapf(err, "parse timestamp of message %s", m.ID)
		}
		messages = append(messages, m)
	}
	return messages, closeRows(rows)
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return errors.Wrap(err, "iterate rows")
	}
	return rows.Close()
}
