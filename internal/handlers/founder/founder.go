package founder

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"

	"UltraNova/internal/apperror"
	"UltraNova/internal/db"
	"UltraNova/internal/founder"
	"UltraNova/internal/metrics"
	"UltraNova/internal/token"
)

const maxBodyBytes = 1 << 16

type FounderHandler struct {
	core    *founder.Core
	advisor *founder.Advisor
}

func NewFounderHandler(core *founder.Core, advisor *founder.Advisor) *FounderHandler {
	return &FounderHandler{
		core:    core,
		advisor: advisor,
	}
}

// Think runs the think pipeline for POST /founder/think. recorder may be nil.
func (h *FounderHandler) Think(w http.ResponseWriter, r *http.Request, recorder founder.Recorder) {
	in := founder.DefaultInput()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		apperror.WriteJSON(w, apperror.Validation("request body must be a JSON object"))
		return
	}

	result, err := h.core.Process(r.Context(), in, recorder)
	if err != nil {
		if errors.Is(err, founder.ErrInvalidInput) {
			apperror.WriteJSON(w, apperror.Validation(strings.TrimPrefix(err.Error(), founder.ErrInvalidInput.Error()+": ")))
			return
		}
		apperror.WriteJSON(w, apperror.ErrInternal.WithInternal(err))
		return
	}

	metrics.FounderThinkRuns.WithLabelValues(result.TeamAnalysis.Conflict.Status).Inc()
	if founderID, ok := token.Subject(r.Context()); ok {
		log.Printf("Think run for founder %s: %s", founderID, result.TeamAnalysis.Conflict.Status)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *FounderHandler) ThinkWithDB(w http.ResponseWriter, r *http.Request, conn *pgx.Conn) {
	h.Think(w, r, db.New(conn))
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat answers POST /founder/chat in the co-founder voice.
func (h *FounderHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		apperror.WriteJSON(w, apperror.Validation("request body must be a JSON object"))
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		apperror.WriteJSON(w, apperror.Validation("message is required"))
		return
	}

	reply := h.advisor.Reply(r.Context(), req.Message)
	metrics.FounderChatReplies.WithLabelValues(reply.Source).Inc()
	log.Printf("Founder chat answered from %s", reply.Source)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reply)
}
