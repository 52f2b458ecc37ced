// Package notify sends the waitlist welcome email.
package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"UltraNova/internal/config"
)

const sendTimeout = 30 * time.Second

type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender returns a Mailgun sender, or a sender that only logs when
// Mailgun is not configured.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.IsConfigured() {
		return LogSender{}
	}
	return &MailgunSender{
		from:   fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail),
		client: mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
	}
}

type MailgunSender struct {
	from   string
	client *mailgun.MailgunImpl
}

func (s *MailgunSender) Send(ctx context.Context, msg Message) error {
	to := msg.To
	if msg.ToName != "" {
		to = fmt.Sprintf("%s <%s>", msg.ToName, msg.To)
	}
	message := s.client.NewMessage(s.from, msg.Subject, msg.Text, to)

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, id, err := s.client.Send(sendCtx, message)
	if err != nil {
		return fmt.Errorf("mailgun send to %s: %w", msg.To, err)
	}
	log.Printf("Email sent to %s (id %s)", msg.To, id)
	return nil
}

type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	log.Printf("Email not configured, skipping %q to %s", msg.Subject, msg.To)
	return nil
}

// Welcome builds the waitlist confirmation email.
func Welcome(name, email string) Message {
	return Message{
		To:      email,
		ToName:  name,
		Subject: "You're on the UltraNova waitlist",
		Text: fmt.Sprintf("Hi %s,\n\n"+
			"Thanks for joining the UltraNova Founder OS waitlist. "+
			"We'll email you as soon as early access opens.\n\n"+
			"Think. Build. Grow.\nThe UltraNova team\n", name),
	}
}
