// internal/app/features/submissions/routes.go
package submissions

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches the applicant-facing intake endpoint to r. The review
// feature registers its read/transition endpoints on the same base path
// (typically "/api/applications" from bootstrap).
func Register(r chi.Router, h *Handler) {
	r.Post("/", h.HandleCreate)
}
