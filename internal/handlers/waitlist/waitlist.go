package waitlist

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/jackc/pgx/v5"

	"UltraNova/internal/apperror"
	"UltraNova/internal/db"
	"UltraNova/internal/metrics"
	"UltraNova/internal/notify"
	"UltraNova/internal/view"
	"UltraNova/internal/waitlist"
)

const maxSignupBytes = 1 << 16

type Store interface {
	InsertWaitlistUser(ctx context.Context, s waitlist.Signup) (*db.WaitlistUser, error)
}

type WaitlistHandler struct {
	sender  notify.Sender
	pending sync.WaitGroup
}

func NewWaitlistHandler(sender notify.Sender) *WaitlistHandler {
	return &WaitlistHandler{sender: sender}
}

// Wait blocks until queued welcome emails have been handed off.
func (h *WaitlistHandler) Wait() {
	h.pending.Wait()
}

type joinResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Join handles POST /waitlist/join.
func (h *WaitlistHandler) Join(w http.ResponseWriter, r *http.Request, store Store) {
	var signup waitlist.Signup
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSignupBytes)).Decode(&signup); err != nil {
		apperror.WriteJSON(w, apperror.Validation("request body must be a JSON object"))
		return
	}

	if err := h.join(r.Context(), signup, store); err != nil {
		apperror.WriteJSON(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(joinResponse{Status: "success", Message: "Successfully joined waitlist"})
}

func (h *WaitlistHandler) JoinWithDB(w http.ResponseWriter, r *http.Request, conn *pgx.Conn) {
	h.Join(w, r, db.New(conn))
}

func (h *WaitlistHandler) Page(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, http.StatusOK, view.WaitlistPage(view.WaitlistForm{}))
}

// Form handles the HTML form on the waitlist page and re-renders it.
func (h *WaitlistHandler) Form(w http.ResponseWriter, r *http.Request, store Store) {
	if err := r.ParseForm(); err != nil {
		view.Render(w, r, http.StatusBadRequest, view.WaitlistPage(view.WaitlistForm{Error: "Could not read the form."}))
		return
	}
	signup := waitlist.Signup{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Role:            r.PostFormValue("role"),
		IdeaDescription: r.PostFormValue("idea_description"),
		Stage:           r.PostFormValue("stage"),
	}

	if err := h.join(r.Context(), signup, store); err != nil {
		status, body := apperror.ToHTTPError(err)
		if status >= http.StatusInternalServerError {
			log.Printf("Waitlist form failed: %v", err)
		}
		view.Render(w, r, status, view.WaitlistPage(view.WaitlistForm{Values: signup, Error: body.Detail}))
		return
	}
	view.Render(w, r, http.StatusOK, view.WaitlistPage(view.WaitlistForm{Success: true}))
}

func (h *WaitlistHandler) FormWithDB(w http.ResponseWriter, r *http.Request, conn *pgx.Conn) {
	h.Form(w, r, db.New(conn))
}

func (h *WaitlistHandler) join(ctx context.Context, signup waitlist.Signup, store Store) error {
	signup = signup.Normalize()
	if err := signup.Validate(); err != nil {
		return apperror.Validation(waitlist.Detail(err))
	}

	if _, err := store.InsertWaitlistUser(ctx, signup); err != nil {
		if errors.Is(err, db.ErrEmailTaken) {
			return apperror.ErrConflict.WithMessage("Email already registered")
		}
		return apperror.ErrInternal.WithInternal(err)
	}

	metrics.WaitlistSignups.WithLabelValues(signup.Role).Inc()
	log.Printf("Waitlist signup: %s (%s)", signup.Email, signup.Role)
	h.welcome(ctx, signup)
	return nil
}

// welcome sends the confirmation email in the background. Failures are only
// logged; the signup already succeeded.
func (h *WaitlistHandler) welcome(ctx context.Context, signup waitlist.Signup) {
	msg := notify.Welcome(signup.Name, signup.Email)
	ctx = context.WithoutCancel(ctx)

	h.pending.Add(1)
	go func() {
		defer h.pending.Done()
		if err := h.sender.Send(ctx, msg); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", signup.Email, err)
		}
	}()
}
