package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced on the admin
// surface. sseHandler, if non-nil, is mounted at GET /events inside the
// auth group.
func NewRouter(h *Handler, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public surface.
	r.Get("/portfolio", h.Portfolio)
	r.Post("/contact", h.Contact)

	// Admin surface.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(authEnabled, token))

		mountResource(r, "/education", h.education)
		mountResource(r, "/experiences", h.experiences)
		mountResource(r, "/certifications", h.certifications)
		mountResource(r, "/skills", h.skills)
		mountResource(r, "/projects", h.projects)
		mountResource(r, "/whatImDoing", h.whatImDoing)

		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.PutProfile)

		r.Get("/messages", h.ListMessages)

		if h.uploads != nil {
			r.Post("/uploads", h.uploads.Upload)
		}

		// SSE endpoint (protected by same auth middleware).
		if sseHandler != nil {
			r.Get("/events", sseHandler.ServeHTTP)
		}
	})

	return r
}
