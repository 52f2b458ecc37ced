package home

import (
	"net/http"

	"UltraNova/internal/middleware"
	"UltraNova/internal/view"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		view.Render(w, r, http.StatusOK, view.LoginPage())
		return
	}
	view.Render(w, r, http.StatusOK, view.HomePage(view.Founder{
		Name:    user.Name,
		Email:   user.Email,
		Picture: user.AvatarURL,
	}))
}
