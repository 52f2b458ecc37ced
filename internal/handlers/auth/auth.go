package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gchalakovmmi/PulpuWEB/auth"
	"github.com/jackc/pgx/v5"
	"github.com/markbates/goth"

	"UltraNova/internal/apperror"
	"UltraNova/internal/db"
	"UltraNova/internal/middleware"
)

type FounderStore interface {
	GetOrCreateFounder(ctx context.Context, authUser goth.User) (*db.Founder, error)
}

type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
}

type AuthHandler struct {
	googleAuth *auth.GoogleAuth
	issuer     TokenIssuer
}

func NewAuthHandler(googleAuth *auth.GoogleAuth, issuer TokenIssuer) *AuthHandler {
	return &AuthHandler{
		googleAuth: googleAuth,
		issuer:     issuer,
	}
}

func (h *AuthHandler) BeginAuthHandler(w http.ResponseWriter, r *http.Request) {
	h.googleAuth.BeginAuthHandler(w, r)
}

func (h *AuthHandler) AuthCallbackHandlerWithDB(w http.ResponseWriter, r *http.Request, conn *pgx.Conn) {
	user, err := h.googleAuth.CompleteUserAuth(w, r)
	if err != nil {
		log.Printf("Authentication failed: %v", err)
		http.Error(w, "Authentication failed", http.StatusInternalServerError)
		return
	}

	if _, err := db.New(conn).GetOrCreateFounder(r.Context(), user); err != nil {
		log.Printf("Failed to process founder data: %v", err)
		http.Error(w, "Failed to process user data", http.StatusInternalServerError)
		return
	}

	if err := h.googleAuth.StoreSession(w, user); err != nil {
		log.Printf("Session creation failed: %v", err)
		http.Error(w, "Session creation failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.googleAuth.LogoutHandler(w, r)
	h.googleAuth.ClearSession(w)
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IssueToken hands the signed-in founder a bearer token for the founder API.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request, store FounderStore) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		apperror.WriteJSON(w, apperror.ErrUnauthorized)
		return
	}

	founder, err := store.GetOrCreateFounder(r.Context(), *user)
	if err != nil {
		apperror.WriteJSON(w, apperror.ErrInternal.WithInternal(err))
		return
	}

	signed, expiresAt, err := h.issuer.Issue(strconv.Itoa(founder.ID))
	if err != nil {
		apperror.WriteJSON(w, apperror.ErrInternal.WithInternal(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	json.NewEncoder(w).Encode(tokenResponse{AccessToken: signed, TokenType: "bearer", ExpiresAt: expiresAt})
}

func (h *AuthHandler) IssueTokenWithDB(w http.ResponseWriter, r *http.Request, conn *pgx.Conn) {
	h.IssueToken(w, r, db.New(conn))
}
