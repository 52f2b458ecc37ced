package waitlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() Signup {
	return Signup{
		Name:            "Ada",
		Email:           "ada@example.com",
		Role:            "founder",
		IdeaDescription: "Payroll for robots",
		Stage:           "idea",
	}
}

func TestNormalize(t *testing.T) {
	s := Signup{Name: "  Ada ", Email: " ADA@Example.com ", Role: "founder ", IdeaDescription: "\tx\n"}.Normalize()
	assert.Equal(t, "Ada", s.Name)
	assert.Equal(t, "ada@example.com", s.Email)
	assert.Equal(t, "founder", s.Role)
	assert.Equal(t, "x", s.IdeaDescription)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Signup)
		detail string
	}{
		{"valid", func(*Signup) {}, ""},
		{"empty stage allowed", func(s *Signup) { s.Stage = "" }, ""},
		{"missing name", func(s *Signup) { s.Name = "" }, "name is required"},
		{"missing email", func(s *Signup) { s.Email = "" }, "email is required"},
		{"missing role", func(s *Signup) { s.Role = "" }, "role is required"},
		{"missing idea", func(s *Signup) { s.IdeaDescription = "" }, "idea_description is required"},
		{"bad email", func(s *Signup) { s.Email = "not-an-email" }, "email is not a valid address"},
		{"display name email", func(s *Signup) { s.Email = "Ada <ada@example.com>" }, "email is not a valid address"},
		{"unknown role", func(s *Signup) { s.Role = "investor" }, "role must be one of founder, developer, marketer, other"},
		{"unknown stage", func(s *Signup) { s.Stage = "ipo" }, "stage must be one of idea, mvp, revenue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSignup()
			tt.mutate(&s)
			err := s.Validate()
			if tt.detail == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidSignup)
			assert.Equal(t, tt.detail, Detail(err))
		})
	}
}
