// internal/app/features/submissions/handler.go
package submissions

import (
	applicationstore "github.com/careerbridge/internhub/internal/app/store/applications"
	postingstore "github.com/careerbridge/internhub/internal/app/store/postings"
	"github.com/careerbridge/internhub/internal/app/system/counters"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the applicant-facing submission endpoint.
//
// It is constructed once at startup in bootstrap, using the shared Mongo
// database handle, file storage, and logger.
type Handler struct {
	DB           *mongo.Database
	Storage      storage.Store
	Log          *zap.Logger
	Postings     *postingstore.Store
	Applications *applicationstore.Store
	Counters     *counters.Incrementer
}

// NewHandler constructs a Handler bound to the given Mongo database,
// file storage, and logger.
func NewHandler(db *mongo.Database, store storage.Store, logger *zap.Logger) *Handler {
	postingStore := postingstore.New(db)
	return &Handler{
		DB:           db,
		Storage:      store,
		Log:          logger,
		Postings:     postingStore,
		Applications: applicationstore.New(db),
		Counters:     counters.New(postingStore, logger),
	}
}
