// internal/app/features/review/status.go
package review

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	applicationstore "github.com/careerbridge/internhub/internal/app/store/applications"
	"github.com/careerbridge/internhub/internal/app/system/limits"
	"github.com/careerbridge/internhub/internal/app/system/respond"
	"github.com/careerbridge/internhub/internal/app/system/textclean"
	"github.com/careerbridge/internhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type statusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

// HandleStatus moves an application through the review state machine.
// Re-applying the current status succeeds without touching the record;
// leaving a terminal state is refused.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.NotFound(w, "No application with that id exists.")
		return
	}

	var req statusRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limits.MaxStatusBodySize))
	if err := dec.Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "The request body is not a valid status change.")
		return
	}
	if req.Notes != nil {
		cleaned := textclean.Strip(*req.Notes)
		req.Notes = &cleaned
	}

	app, err := h.Applications.SetStatus(ctx, id, req.Status, req.Notes)
	switch {
	case errors.Is(err, applicationstore.ErrInvalidStatus):
		respond.Error(w, http.StatusBadRequest, "Unknown review status: "+req.Status)
		return
	case errors.Is(err, applicationstore.ErrNotFound):
		respond.NotFound(w, "No application with that id exists.")
		return
	case errors.Is(err, applicationstore.ErrTerminalStatus):
		respond.Conflict(w, "The application has already reached a final decision.")
		return
	case err != nil:
		respond.ServerError(w, h.Log, "set application status", err)
		return
	}

	respond.JSON(w, http.StatusOK, app)
}
