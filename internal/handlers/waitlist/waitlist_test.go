package waitlist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UltraNova/internal/db"
	"UltraNova/internal/metrics"
	"UltraNova/internal/notify"
	"UltraNova/internal/waitlist"
)

type fakeStore struct {
	emails map[string]bool
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{emails: map[string]bool{}}
}

func (s *fakeStore) InsertWaitlistUser(_ context.Context, signup waitlist.Signup) (*db.WaitlistUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.emails[signup.Email] {
		return nil, db.ErrEmailTaken
	}
	s.emails[signup.Email] = true
	return &db.WaitlistUser{Signup: signup}, nil
}

type fakeSender struct {
	mu   sync.Mutex
	sent []notify.Message
	err  error
}

func (s *fakeSender) Send(_ context.Context, msg notify.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

const validBody = `{"name":" Ada ","email":"Ada@Example.com","role":"founder","idea_description":"AI bookkeeping","stage":"idea"}`

func join(h *WaitlistHandler, store Store, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Join(rec, httptest.NewRequest(http.MethodPost, "/waitlist/join", strings.NewReader(body)), store)
	return rec
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

func TestJoinSuccess(t *testing.T) {
	sender := &fakeSender{}
	h := NewWaitlistHandler(sender)
	store := newFakeStore()
	before := testutil.ToFloat64(metrics.WaitlistSignups.WithLabelValues("founder"))

	rec := join(h, store, validBody)
	h.Wait()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Successfully joined waitlist"}`, rec.Body.String())
	assert.True(t, store.emails["ada@example.com"])
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.WaitlistSignups.WithLabelValues("founder")))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ada@example.com", sender.sent[0].To)
	assert.Equal(t, "Ada", sender.sent[0].ToName)
}

func TestJoinDuplicateEmail(t *testing.T) {
	h := NewWaitlistHandler(&fakeSender{})
	store := newFakeStore()

	require.Equal(t, http.StatusOK, join(h, store, validBody).Code)
	rec := join(h, store, strings.Replace(validBody, "Ada@Example.com", "ada@example.com", 1))
	h.Wait()

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", detail(t, rec))
}

func TestJoinValidation(t *testing.T) {
	h := NewWaitlistHandler(&fakeSender{})
	tests := []struct {
		name string
		body string
		want string
	}{
		{"not json", "nope", "request body must be a JSON object"},
		{"blank name", `{"name":"  ","email":"a@b.co","role":"founder","idea_description":"x"}`, "name is required"},
		{"bad email", `{"name":"A","email":"not-an-email","role":"founder","idea_description":"x"}`, "email is not a valid address"},
		{"unknown role", `{"name":"A","email":"a@b.co","role":"ceo","idea_description":"x"}`, "role must be one of founder, developer, marketer, other"},
		{"missing idea", `{"name":"A","email":"a@b.co","role":"founder"}`, "idea_description is required"},
		{"unknown stage", `{"name":"A","email":"a@b.co","role":"other","idea_description":"x","stage":"ipo"}`, "stage must be one of idea, mvp, revenue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			rec := join(h, store, tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, tt.want, detail(t, rec))
			assert.Empty(t, store.emails)
		})
	}
}

func TestJoinStoreFailure(t *testing.T) {
	h := NewWaitlistHandler(&fakeSender{})
	store := newFakeStore()
	store.err = errors.New("connection reset")

	rec := join(h, store, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestJoinSucceedsWhenEmailFails(t *testing.T) {
	sender := &fakeSender{err: errors.New("mailgun down")}
	h := NewWaitlistHandler(sender)

	rec := join(h, newFakeStore(), validBody)
	h.Wait()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, sender.sent, 1)
}

func postForm(h *WaitlistHandler, store Store, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/waitlist", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Form(rec, req, store)
	return rec
}

func TestFormSuccessAndError(t *testing.T) {
	h := NewWaitlistHandler(&fakeSender{})
	store := newFakeStore()
	form := url.Values{
		"name":             {"Grace"},
		"email":            {"grace@example.com"},
		"role":             {"developer"},
		"idea_description": {"Compilers for everyone"},
	}

	rec := postForm(h, store, form)
	h.Wait()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="waitlist-success"`)

	rec = postForm(h, store, form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="waitlist-error"`)
	assert.Contains(t, rec.Body.String(), "Email already registered")
	assert.Contains(t, rec.Body.String(), `value="grace@example.com"`)
}
