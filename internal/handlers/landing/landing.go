package landing

import (
	"net/http"

	"UltraNova/internal/view"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, http.StatusOK, view.LandingPage(view.WaitlistForm{}))
}

// NotFound renders the 404 page for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, http.StatusNotFound, view.NotFoundPage())
}
