package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/markbates/goth"
)

const queryTimeout = 5 * time.Second

const uniqueViolation = "23505"

// DBTX is the subset of *pgx.Conn the queries need.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries runs the application's SQL against one connection.
type Queries struct {
	conn DBTX
}

func New(conn DBTX) *Queries {
	return &Queries{conn: conn}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Founder is a Google-authenticated console user.
type Founder struct {
	ID           int
	Provider     string
	IDByProvider string
	Name         string
	Email        string
	PictureLink  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const founderColumns = `id, provider, id_by_provider, name, email, picture_link, created_at, updated_at`

func scanFounder(row pgx.Row) (*Founder, error) {
	var f Founder
	err := row.Scan(&f.ID, &f.Provider, &f.IDByProvider, &f.Name, &f.Email, &f.PictureLink, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (q *Queries) GetOrCreateFounder(ctx context.Context, authUser goth.User) (*Founder, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	founder, err := q.GetFounderByProviderID(ctx, authUser.Provider, authUser.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			founder, err = q.CreateFounder(ctx, authUser)
			if err != nil {
				return nil, fmt.Errorf("error creating founder: %w", err)
			}
			log.Printf("New founder created: %s (%s)", authUser.Name, authUser.Email)
			return founder, nil
		}
		return nil, fmt.Errorf("error getting founder: %w", err)
	}

	updated, err := q.UpdateFounderIfChanged(ctx, founder.ID, authUser)
	if err != nil {
		return nil, fmt.Errorf("error updating founder: %w", err)
	}
	if updated {
		log.Printf("Founder information updated: %s (DB ID: %d)", authUser.Name, founder.ID)
		return q.GetFounderByID(ctx, founder.ID)
	}
	return founder, nil
}

func (q *Queries) GetFounderByProviderID(ctx context.Context, provider, idByProvider string) (*Founder, error) {
	return scanFounder(q.conn.QueryRow(ctx,
		`SELECT `+founderColumns+` FROM founders WHERE provider = $1 AND id_by_provider = $2`,
		provider, idByProvider,
	))
}

func (q *Queries) GetFounderByID(ctx context.Context, id int) (*Founder, error) {
	return scanFounder(q.conn.QueryRow(ctx,
		`SELECT `+founderColumns+` FROM founders WHERE id = $1`, id,
	))
}

func (q *Queries) CreateFounder(ctx context.Context, authUser goth.User) (*Founder, error) {
	f, err := scanFounder(q.conn.QueryRow(ctx, `
		INSERT INTO founders (provider, id_by_provider, name, email, picture_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+founderColumns,
		authUser.Provider, authUser.UserID, authUser.Name, authUser.Email, authUser.AvatarURL,
	))
	if err != nil {
		return nil, fmt.Errorf("database insert error: %w", err)
	}
	return f, nil
}

func (q *Queries) UpdateFounderIfChanged(ctx context.Context, id int, authUser goth.User) (bool, error) {
	result, err := q.conn.Exec(ctx, `
		UPDATE founders SET
			name = $1,
			email = $2,
			picture_link = $3,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND (
			name IS DISTINCT FROM $1 OR
			email IS DISTINCT FROM $2 OR
			picture_link IS DISTINCT FROM $3
		)`,
		authUser.Name, authUser.Email, authUser.AvatarURL, id,
	)
	if err != nil {
		return false, fmt.Errorf("database update error: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
