// internal/app/features/review/detail.go
package review

import (
	"context"
	"errors"
	"net/http"

	applicationstore "github.com/careerbridge/internhub/internal/app/store/applications"
	"github.com/careerbridge/internhub/internal/app/system/respond"
	"github.com/careerbridge/internhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleDetail serves one full application record.
func (h *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.NotFound(w, "No application with that id exists.")
		return
	}

	app, err := h.Applications.GetByID(ctx, id)
	if errors.Is(err, applicationstore.ErrNotFound) {
		respond.NotFound(w, "No application with that id exists.")
		return
	}
	if err != nil {
		respond.ServerError(w, h.Log, "load application", err)
		return
	}

	respond.JSON(w, http.StatusOK, app)
}

// HandleDelete removes an application record outright. This is an
// administrative escape hatch, not part of the review workflow; rejected
// applications stay queryable, deleted ones do not.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.NotFound(w, "No application with that id exists.")
		return
	}

	deleted, err := h.Applications.Delete(ctx, id)
	if err != nil {
		respond.ServerError(w, h.Log, "delete application", err)
		return
	}
	if deleted == 0 {
		respond.NotFound(w, "No application with that id exists.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
