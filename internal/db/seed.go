// ABOUTME: Loads a directory snapshot into an empty database
// ABOUTME: Seeding is skipped when users already exist

package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/Aditya-web3/hack-team-up-now/internal/directory"
)

const timeLayout = time.RFC3339Nano

// IsEmpty reports whether no users have been stored yet.
func IsEmpty(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return false, errors.Wrap(err, "count users")
	}
	return n == 0, nil
}

// Seed writes every collection of dir in one transaction.
func Seed(ctx context.Context, db *sql.DB, dir *directory.Directory) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin seed")
	}
	defer func() { _ = tx.Rollback() }()

	for _, s := range dir.Skills {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO skills (id, name, category) VALUES (?, ?, ?)`,
			s.ID, s.Name, string(s.Category)); err != nil {
			return errors.Wrapf(err, "insert skill %s", s.ID)
		}
	}

	for _, h := range dir.Hackathons {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO hackathons (id, name, location, start_date, end_date, is_online)
			VALUES (?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Location, h.StartDate.String(), h.EndDate.String(), h.IsOnline); err != nil {
			return errors.Wrapf(err, "insert hackathon %s", h.ID)
		}
	}

	for _, u := range dir.Users {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, name, avatar, location, bio, available)
			VALUES (?, ?, ?, ?, ?, ?)`,
			u.ID, u.Name, u.Avatar, u.Location, u.Bio, u.Available); err != nil {
			return errors.Wrapf(err, "insert user %s", u.ID)
		}
		for i, s := range u.Skills {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO user_skills (user_id, skill_id, position) VALUES (?, ?, ?)`,
				u.ID, s.ID, i); err != nil {
				return errors.Wrapf(err, "insert skill %s for user %s", s.ID, u.ID)
			}
		}
		for i, h := range u.Hackathons {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO user_hackathons (user_id, hackathon_id, position) VALUES (?, ?, ?)`,
				u.ID, h.ID, i); err != nil {
				return errors.Wrapf(err, "insert hackathon %s for user %s", h.ID, u.ID)
			}
		}
	}

	for _, m := range dir.Messages {
		if err := insertMessage(ctx, tx, m.ID, m.SenderID, m.ReceiverID, m.Content, m.Timestamp, m.Read); err != nil {
			return err
		}
	}

	for _, c := range dir.Conversations {
		var lastID sql.NullString
		if c.LastMessage != nil {
			lastID = sql.NullString{String: c.LastMessage.ID, Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO conversations (id, last_message_id, unread_count) VALUES (?, ?, ?)`,
			c.ID, lastID, c.UnreadCount); err != nil {
			return errors.Wrapf(err, "insert conversation %s", c.ID)
		}
		for i, p := range c.Participants {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO conversation_participants (conversation_id, user_id, position) VALUES (?, ?, ?)`,
				c.ID, p, i); err != nil {
				return errors.Wrapf(err, "insert participant %s of conversation %s", p, c.ID)
			}
		}
	}

	return errors.Wrap(tx.Commit(), "commit seed")
}

func insertMessage(ctx context.Context, tx *sql.Tx, id, senderID, receiverID, content string, at time.Time, read bool) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO messages (id, sender_id, receiver_id, content, sent_at, read)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, senderID, receiverID, content, at.UTC().Format(timeLayout), read)
	return errors.Wrapf(err, "insert message %s", id)
}
