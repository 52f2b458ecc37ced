package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UltraNova/internal/db"
	"UltraNova/internal/middleware"
	"UltraNova/internal/token"
)

type fakeFounders struct {
	err error
	got goth.User
}

func (f *fakeFounders) GetOrCreateFounder(_ context.Context, u goth.User) (*db.Founder, error) {
	f.got = u
	if f.err != nil {
		return nil, f.err
	}
	return &db.Founder{ID: 7, Email: u.Email}, nil
}

func newIssuer(t *testing.T) *token.Issuer {
	t.Helper()
	issuer, err := token.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	return issuer
}

func TestIssueToken(t *testing.T) {
	issuer := newIssuer(t)
	h := NewAuthHandler(nil, issuer)
	store := &fakeFounders{}
	user := goth.User{Provider: "google", UserID: "g-1", Email: "ada@example.com"}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
	req = req.WithContext(middleware.ContextWithUser(req.Context(), user))
	rec := httptest.NewRecorder()

	h.IssueToken(rec, req, store)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	var body tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bearer", body.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), body.ExpiresAt, time.Minute)

	sub, err := issuer.Verify(body.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "7", sub)
	assert.Equal(t, "g-1", store.got.UserID)
}

func TestIssueTokenRequiresSession(t *testing.T) {
	h := NewAuthHandler(nil, newIssuer(t))
	rec := httptest.NewRecorder()

	h.IssueToken(rec, httptest.NewRequest(http.MethodPost, "/auth/token", nil), &fakeFounders{})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIssueTokenStoreFailure(t *testing.T) {
	h := NewAuthHandler(nil, newIssuer(t))
	req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
	req = req.WithContext(middleware.ContextWithUser(req.Context(), goth.User{UserID: "g-1"}))
	rec := httptest.NewRecorder()

	h.IssueToken(rec, req, &fakeFounders{err: errors.New("db down")})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}
