package token

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(t *testing.T, now time.Time) *Issuer {
	t.Helper()
	i, err := NewIssuer("test-secret", 12*time.Hour)
	require.NoError(t, err)
	i.now = func() time.Time { return now }
	return i
}

func TestNewIssuerRejectsEmptySecret(t *testing.T) {
	_, err := NewIssuer("", time.Hour)
	assert.Error(t, err)
	_, err = NewIssuer("s", 0)
	assert.Error(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	i := newTestIssuer(t, now)

	raw, exp, err := i.Issue("42")
	require.NoError(t, err)
	assert.Equal(t, now.Add(12*time.Hour), exp)

	sub, err := i.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "42", sub)
}

func TestVerifyExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	i := newTestIssuer(t, now)
	raw, _, err := i.Issue("42")
	require.NoError(t, err)

	i.now = func() time.Time { return now.Add(13 * time.Hour) }
	_, err = i.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTampered(t *testing.T) {
	i := newTestIssuer(t, time.Now())
	raw, _, err := i.Issue("42")
	require.NoError(t, err)

	other, err := NewIssuer("other-secret", time.Hour)
	require.NoError(t, err)
	_, err = other.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = i.Verify(raw + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	i := newTestIssuer(t, time.Now())
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = i.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireBearer(t *testing.T) {
	i := newTestIssuer(t, time.Now())
	raw, _, err := i.Issue("7")
	require.NoError(t, err)

	var gotSubject string
	h := i.RequireBearer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = Subject(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + raw, http.StatusNoContent},
		{"lowercase scheme", "bearer " + raw, http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + raw, http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSubject = ""
			req := httptest.NewRequest(http.MethodPost, "/founder/think", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusUnauthorized {
				var body map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, "Invalid token", body["detail"])
				assert.Empty(t, gotSubject)
			} else {
				assert.Equal(t, "7", gotSubject)
			}
		})
	}
}
