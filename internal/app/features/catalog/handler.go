// internal/app/features/catalog/handler.go
package catalog

import (
	"context"
	"errors"
	"net/http"
	"strings"

	postingstore "github.com/careerbridge/internhub/internal/app/store/postings"
	"github.com/careerbridge/internhub/internal/app/system/respond"
	"github.com/careerbridge/internhub/internal/app/system/timeouts"
	"github.com/careerbridge/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the posting catalog reads used by applicants picking a
// posting and by the review side's posting picker.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	Postings *postingstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		Postings: postingstore.New(db),
	}
}

// HandleDetail serves one posting, including its live application count.
func (h *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.NotFound(w, "No posting with that id exists.")
		return
	}

	posting, err := h.Postings.GetByID(ctx, id)
	if errors.Is(err, postingstore.ErrNotFound) {
		respond.NotFound(w, "No posting with that id exists.")
		return
	}
	if err != nil {
		respond.ServerError(w, h.Log, "load posting", err)
		return
	}

	respond.JSON(w, http.StatusOK, posting)
}

// HandleList serves an organization's open postings, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	organization := strings.TrimSpace(r.URL.Query().Get("organization"))
	if organization == "" {
		respond.Error(w, http.StatusBadRequest, "The organization query parameter is required.")
		return
	}

	rows, err := h.Postings.ListByOrganization(ctx, organization)
	if err != nil {
		respond.ServerError(w, h.Log, "list postings", err)
		return
	}
	if rows == nil {
		rows = []models.Posting{}
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"postings": rows,
	})
}
