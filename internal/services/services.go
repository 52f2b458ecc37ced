package services

import (
	"fmt"
	"log"

	"UltraNova/internal/chat"
	"UltraNova/internal/config"
	"UltraNova/internal/founder"
	"UltraNova/internal/middleware"
	"UltraNova/internal/notify"
	"UltraNova/internal/openai"
	"UltraNova/internal/token"
)

type Services struct {
	Responder   *chat.Responder
	Streamer    chat.Streamer
	Core        *founder.Core
	Advisor     *founder.Advisor
	Issuer      *token.Issuer
	Mailer      notify.Sender
	RateLimiter *middleware.RateLimiter
}

func New(cfg config.Config) (*Services, error) {
	kb, err := chat.LoadKnowledgeBase(cfg.Chat.KnowledgePath)
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}
	responder := chat.NewResponder(kb)

	// Without a model the founder chat answers from the knowledge base.
	var llm openai.Completer
	if cfg.LLM.Enabled() {
		client, err := openai.NewClient(cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("initialize OpenAI client: %w", err)
		}
		llm = client
	} else {
		log.Printf("LLM not configured, founder chat uses canned answers")
	}

	issuer, err := token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("initialize token issuer: %w", err)
	}

	return &Services{
		Responder: responder,
		Streamer: chat.Streamer{
			InitialDelay: cfg.Chat.InitialDelay,
			ChunkDelay:   cfg.Chat.ChunkDelay,
		},
		Core:        founder.NewCore(nil),
		Advisor:     founder.NewAdvisor(llm, responder),
		Issuer:      issuer,
		Mailer:      notify.NewSender(cfg.Email),
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst),
	}, nil
}
