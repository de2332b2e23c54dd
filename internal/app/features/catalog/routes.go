// internal/app/features/catalog/routes.go
package catalog

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the posting catalog endpoints under whatever base path the
// caller chooses (typically "/api/postings" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Get("/{id}", h.HandleDetail)
	return r
}
