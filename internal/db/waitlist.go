package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"UltraNova/internal/waitlist"
)

var ErrEmailTaken = errors.New("email already registered")

type WaitlistUser struct {
	ID        uuid.UUID
	Signup    waitlist.Signup
	CreatedAt time.Time
}

// InsertWaitlistUser stores a validated signup. A repeated email returns
// ErrEmailTaken.
func (q *Queries) InsertWaitlistUser(ctx context.Context, s waitlist.Signup) (*WaitlistUser, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	u := WaitlistUser{ID: uuid.New(), Signup: s}
	err := q.conn.QueryRow(ctx, `
		INSERT INTO waitlist_users (id, name, email, role, idea_description, stage)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING created_at`,
		u.ID, s.Name, s.Email, s.Role, s.IdeaDescription, s.Stage,
	).Scan(&u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert waitlist user: %w", err)
	}
	return &u, nil
}

// CountWaitlistByRole returns signups per role, plus signups since the
// given time.
func (q *Queries) CountWaitlistByRole(ctx context.Context, since time.Time) (total map[string]int, recent int, err error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := q.conn.Query(ctx, `
		SELECT role, COUNT(*), COUNT(*) FILTER (WHERE created_at >= $1)
		FROM waitlist_users
		GROUP BY role
		ORDER BY role`, since)
	if err != nil {
		return nil, 0, fmt.Errorf("count waitlist: %w", err)
	}
	defer rows.Close()

	total = make(map[string]int)
	for rows.Next() {
		var role string
		var n, r int
		if err := rows.Scan(&role, &n, &r); err != nil {
			return nil, 0, fmt.Errorf("scan waitlist count: %w", err)
		}
		total[role] = n
		recent += r
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("count waitlist: %w", err)
	}
	return total, recent, nil
}
