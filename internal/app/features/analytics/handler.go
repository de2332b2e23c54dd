// internal/app/features/analytics/handler.go
package analytics

import (
	"context"
	"net/http"
	"strings"

	"github.com/careerbridge/internhub/internal/app/store/queries/analyticsqueries"
	"github.com/careerbridge/internhub/internal/app/system/respond"
	"github.com/careerbridge/internhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the organization analytics summary.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// HandleSummary computes the summary for one organization. An unknown
// organization is a valid empty scope, not an error.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	organization := strings.TrimSpace(r.URL.Query().Get("organization"))
	if organization == "" {
		respond.Error(w, http.StatusBadRequest, "The organization query parameter is required.")
		return
	}

	summary, err := analyticsqueries.Compute(ctx, h.DB, organization)
	if err != nil {
		respond.ServerError(w, h.Log, "compute analytics summary", err)
		return
	}

	respond.JSON(w, http.StatusOK, summary)
}
