// internal/app/features/review/list.go
package review

import (
	"context"
	"net/http"
	"strings"

	applicationstore "github.com/careerbridge/internhub/internal/app/store/applications"
	"github.com/careerbridge/internhub/internal/app/system/paging"
	"github.com/careerbridge/internhub/internal/app/system/respond"
	"github.com/careerbridge/internhub/internal/app/system/timeouts"
	"github.com/careerbridge/internhub/internal/domain/models"
)

// listEnvelope is the paginated listing response. Pages is computed from the
// total, so a page past the end returns an empty slice with the same totals.
type listEnvelope struct {
	Applications []models.ApplicationSummary `json:"applications"`
	Total        int64                       `json:"total"`
	Page         int                         `json:"page"`
	PageSize     int                         `json:"pageSize"`
	Pages        int                         `json:"pages"`
}

// HandleList serves the review queue, newest submissions first, optionally
// scoped by organization and status.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if status != "" && !models.IsValidStatus(status) {
		respond.Error(w, http.StatusBadRequest, "Unknown status filter: "+status)
		return
	}

	filter := applicationstore.Filter{
		Organization: strings.TrimSpace(r.URL.Query().Get("organization")),
		Status:       status,
	}
	params := paging.Parse(r)

	rows, total, err := h.Applications.List(ctx, filter, params)
	if err != nil {
		respond.ServerError(w, h.Log, "list applications", err)
		return
	}
	if rows == nil {
		rows = []models.ApplicationSummary{}
	}

	meta := paging.NewMeta(total, params)
	respond.JSON(w, http.StatusOK, listEnvelope{
		Applications: rows,
		Total:        meta.Total,
		Page:         meta.Page,
		PageSize:     meta.PageSize,
		Pages:        meta.Pages,
	})
}
