package middleware

import (
	"context"
	"net/http"

	"github.com/markbates/goth"
)

type userKey struct{}

// SessionUser reads the signed-in user for a request.
type SessionUser func(r *http.Request) (goth.User, error)

// WithUserContext adds the session user, when there is one, to the request
// context.
func WithUserContext(session SessionUser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, err := session(r); err == nil {
				r = r.WithContext(ContextWithUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ContextWithUser(ctx context.Context, user goth.User) context.Context {
	return context.WithValue(ctx, userKey{}, &user)
}

func UserFromContext(ctx context.Context) (*goth.User, bool) {
	user, ok := ctx.Value(userKey{}).(*goth.User)
	return user, ok && user != nil
}
