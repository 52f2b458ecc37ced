package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"UltraNova/internal/chat"
	"UltraNova/internal/markdown"
	"UltraNova/internal/metrics"
	"UltraNova/internal/view"
)

const maxMessageBytes = 1 << 16

type ChatHandler struct {
	responder *chat.Responder
	streamer  chat.Streamer
}

func NewChatHandler(responder *chat.Responder, streamer chat.Streamer) *ChatHandler {
	return &ChatHandler{
		responder: responder,
		streamer:  streamer,
	}
}

type chatRequest struct {
	Message *string `json:"message"`
}

// Stream answers POST /api/chat with the canned reply written word by word.
func (h *ChatHandler) Stream(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageBytes)).Decode(&req); err != nil || req.Message == nil {
		log.Printf("Error decoding chat request: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to process chat"})
		return
	}

	reply := h.responder.Respond(*req.Message)
	metrics.ChatReplies.WithLabelValues(reply.Topic).Inc()

	if err := h.streamer.Stream(r.Context(), w, reply.Text); err != nil && !errors.Is(err, r.Context().Err()) {
		log.Printf("Error streaming chat reply: %v", err)
	}
}

func (h *ChatHandler) Page(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, http.StatusOK, view.ChatPage(nil))
}

// Form answers the no-script chat form with the whole reply at once.
func (h *ChatHandler) Form(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		view.Render(w, r, http.StatusBadRequest, view.ChatPage(nil))
		return
	}
	question := strings.TrimSpace(r.PostFormValue("message"))
	if question == "" {
		view.Render(w, r, http.StatusOK, view.ChatPage(nil))
		return
	}

	reply := h.responder.Respond(question)
	metrics.ChatReplies.WithLabelValues(reply.Topic).Inc()

	html, err := markdown.ToHTML(reply.Text)
	if err != nil {
		log.Printf("Error rendering chat reply: %v", err)
		http.Error(w, "Failed to process chat", http.StatusInternalServerError)
		return
	}
	view.Render(w, r, http.StatusOK, view.ChatPage([]view.ChatTurn{{Question: question, ReplyHTML: html}}))
}
