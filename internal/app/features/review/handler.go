// internal/app/features/review/handler.go
package review

import (
	applicationstore "github.com/careerbridge/internhub/internal/app/store/applications"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the organization-facing review endpoints: listing, detail,
// status transitions, and administrative deletion.
type Handler struct {
	DB           *mongo.Database
	Log          *zap.Logger
	Applications *applicationstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:           db,
		Log:          logger,
		Applications: applicationstore.New(db),
	}
}
