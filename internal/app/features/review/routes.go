// internal/app/features/review/routes.go
package review

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches the review endpoints to r. The submissions feature
// registers the intake POST on the same base path (typically
// "/api/applications" from bootstrap).
func Register(r chi.Router, h *Handler) {
	r.Get("/", h.HandleList)
	r.Get("/{id}", h.HandleDetail)
	r.Patch("/{id}/status", h.HandleStatus)
	r.Delete("/{id}", h.HandleDelete)
}
