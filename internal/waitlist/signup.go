// Package waitlist validates early-access signups.
package waitlist

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var ErrInvalidSignup = errors.New("invalid signup")

type Option struct {
	Value string
	Label string
}

var Roles = []Option{
	{"founder", "Founder"},
	{"developer", "Developer"},
	{"marketer", "Marketer"},
	{"other", "Other"},
}

var Stages = []Option{
	{"idea", "Just an idea"},
	{"mvp", "Have MVP"},
	{"revenue", "Generating revenue"},
}

type Signup struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	IdeaDescription string `json:"idea_description"`
	Stage           string `json:"stage"`
}

// Normalize trims every field and lower-cases the email.
func (s Signup) Normalize() Signup {
	return Signup{
		Name:            strings.TrimSpace(s.Name),
		Email:           strings.ToLower(strings.TrimSpace(s.Email)),
		Role:            strings.TrimSpace(s.Role),
		IdeaDescription: strings.TrimSpace(s.IdeaDescription),
		Stage:           strings.TrimSpace(s.Stage),
	}
}

// Validate expects a normalized signup.
func (s Signup) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidSignup)
	case s.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidSignup)
	case s.Role == "":
		return fmt.Errorf("%w: role is required", ErrInvalidSignup)
	case s.IdeaDescription == "":
		return fmt.Errorf("%w: idea_description is required", ErrInvalidSignup)
	}

	addr, err := mail.ParseAddress(s.Email)
	if err != nil || addr.Address != s.Email {
		return fmt.Errorf("%w: email is not a valid address", ErrInvalidSignup)
	}
	if !has(Roles, s.Role) {
		return fmt.Errorf("%w: role must be one of founder, developer, marketer, other", ErrInvalidSignup)
	}
	if s.Stage != "" && !has(Stages, s.Stage) {
		return fmt.Errorf("%w: stage must be one of idea, mvp, revenue", ErrInvalidSignup)
	}
	return nil
}

// Detail strips the sentinel prefix for client-facing messages.
func Detail(err error) string {
	return strings.TrimPrefix(err.Error(), ErrInvalidSignup.Error()+": ")
}

func has(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}
