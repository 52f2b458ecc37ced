package founder

import (
	"context"
	"log"
	"strings"

	"UltraNova/internal/chat"
	"UltraNova/internal/openai"
)

const (
	SourceLLM    = "llm"
	SourceCanned = "canned"

	maxReplySentences = 4
)

const persona = "You are UltraNova, an AI startup co-founder. Answer like a blunt, experienced founder " +
	"who cares about focus, customers and runway. Reply in plain sentences, at most four. " +
	"No markdown, no emoji, no links."

type Reply struct {
	Text   string `json:"reply"`
	Source string `json:"-"`
}

// Advisor answers founder chat messages. It prefers the model and falls
// back to the canned responder.
type Advisor struct {
	llm    openai.Completer
	canned *chat.Responder
}

// NewAdvisor builds an advisor. llm may be nil.
func NewAdvisor(llm openai.Completer, canned *chat.Responder) *Advisor {
	return &Advisor{llm: llm, canned: canned}
}

func (a *Advisor) Reply(ctx context.Context, message string) Reply {
	message = strings.TrimSpace(message)
	if a.llm != nil {
		text, err := a.llm.Complete(ctx, []openai.ChatCompletionMessage{
			{Role: "system", Content: persona},
			{Role: "user", Content: message},
		})
		if err != nil {
			log.Printf("Error getting founder reply from LLM, using canned answer: %v", err)
		} else if text = LimitSentences(FilterText(text), maxReplySentences); text != "" {
			return Reply{Text: text, Source: SourceLLM}
		}
	}
	return Reply{Text: strings.TrimSpace(a.canned.Respond(message).Text), Source: SourceCanned}
}
