package chat

import (
	"fmt"
	"strings"
)

// FallbackTopic labels replies synthesized from the question itself.
const FallbackTopic = "fallback"

// Reply is a chosen canned answer.
type Reply struct {
	Topic string
	Text  string
}

type Responder struct {
	kb *KnowledgeBase
}

func NewResponder(kb *KnowledgeBase) *Responder {
	return &Responder{kb: kb}
}

// Respond picks the canned answer for a question. Questions matching no
// keyword get a templated answer mentioning their first words.
func (r *Responder) Respond(message string) Reply {
	query := strings.TrimSpace(message)
	if t, ok := r.kb.Lookup(strings.ToLower(query)); ok {
		return Reply{Topic: t.Keyword, Text: t.Answer()}
	}
	return Reply{Topic: FallbackTopic, Text: fallbackAnswer(query)}
}

func fallbackAnswer(query string) string {
	// Split on single spaces, not strings.Fields, so runs of spaces count as words.
	words := strings.Split(query, " ")
	subject := "this concept"
	if len(words) > 3 {
		subject = fmt.Sprintf(`your idea regarding "%s..."`, strings.Join(words[:4], " "))
	}

	return strings.Join([]string{
		fmt.Sprintf("That's an interesting question about %s.", subject),
		" Our AI Founder OS is uniquely equipped to analyze topics like this.",
		" Based on initial heuristics, the Product Agent would likely break down the core user journeys, while the Tech Agent assesses the scaling implications.",
		" If you input this into the Think panel, the five agents will debate the viability and provide a definitive roadmap.",
	}, "")
}
