package db

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UltraNova/internal/founder"
	"UltraNova/internal/waitlist"
)

type fakeRow struct {
	err  error
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return r.scan(dest...)
}

type call struct {
	sql  string
	args []any
}

type fakeConn struct {
	calls []call
	row   fakeRow
	tag   pgconn.CommandTag
	err   error
}

func (c *fakeConn) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.calls = append(c.calls, call{sql, args})
	return c.tag, c.err
}

func (c *fakeConn) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.calls = append(c.calls, call{sql, args})
	return nil, errors.New("not supported")
}

func (c *fakeConn) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	c.calls = append(c.calls, call{sql, args})
	return c.row
}

func TestInsertWaitlistUser(t *testing.T) {
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	conn := &fakeConn{row: fakeRow{scan: func(dest ...any) error {
		*(dest[0].(*time.Time)) = created
		return nil
	}}}

	s := waitlist.Signup{Name: "Ada", Email: "ada@example.com", Role: "founder", IdeaDescription: "x"}
	u, err := New(conn).InsertWaitlistUser(context.Background(), s)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, created, u.CreatedAt)
	require.Len(t, conn.calls, 1)
	assert.Equal(t, []any{u.ID, "Ada", "ada@example.com", "founder", "x", ""}, conn.calls[0].args)
}

func TestInsertWaitlistUserDuplicate(t *testing.T) {
	conn := &fakeConn{row: fakeRow{err: &pgconn.PgError{Code: "23505"}}}

	_, err := New(conn).InsertWaitlistUser(context.Background(), waitlist.Signup{Email: "a@b.co"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestInsertWaitlistUserOtherError(t *testing.T) {
	conn := &fakeConn{row: fakeRow{err: errors.New("connection reset")}}

	_, err := New(conn).InsertWaitlistUser(context.Background(), waitlist.Signup{Email: "a@b.co"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

func TestRecordDecision(t *testing.T) {
	conn := &fakeConn{tag: pgconn.NewCommandTag("INSERT 0 1")}
	in := founder.DefaultInput()
	in.Idea = "x"
	in.BusinessID = "biz"

	err := New(conn).RecordDecision(context.Background(), "biz", founder.Decision{Chosen: "Proceed", Confidence: 0.82}, in)
	require.NoError(t, err)

	require.Len(t, conn.calls, 1)
	args := conn.calls[0].args
	require.Len(t, args, 4)
	assert.Equal(t, "biz", args[1])

	var decision map[string]any
	require.NoError(t, json.Unmarshal(args[2].([]byte), &decision))
	assert.Equal(t, "Proceed", decision["chosen"])

	var ctx map[string]any
	require.NoError(t, json.Unmarshal(args[3].([]byte), &ctx))
	assert.Equal(t, float64(12), ctx["runway_months"])
}

func TestUpdateFounderIfChanged(t *testing.T) {
	conn := &fakeConn{tag: pgconn.NewCommandTag("UPDATE 0")}
	changed, err := New(conn).UpdateFounderIfChanged(context.Background(), 1, gothUser())
	require.NoError(t, err)
	assert.False(t, changed)

	conn.tag = pgconn.NewCommandTag("UPDATE 1")
	changed, err = New(conn).UpdateFounderIfChanged(context.Background(), 1, gothUser())
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"migrations/00001_founders.sql",
		"migrations/00002_waitlist_users.sql",
		"migrations/00003_decisions.sql",
	}, names)
}

func gothUser() goth.User {
	return goth.User{Provider: "google", UserID: "g-1", Name: "Ada", Email: "ada@example.com"}
}
