// internal/app/features/analytics/routes.go
package analytics

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the analytics endpoints under whatever base path the caller
// chooses (typically "/api/analytics" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/summary", h.HandleSummary)
	return r
}
