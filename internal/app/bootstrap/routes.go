// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	analyticsfeature "github.com/careerbridge/internhub/internal/app/features/analytics"
	catalogfeature "github.com/careerbridge/internhub/internal/app/features/catalog"
	healthfeature "github.com/careerbridge/internhub/internal/app/features/health"
	reviewfeature "github.com/careerbridge/internhub/internal/app/features/review"
	submissionsfeature "github.com/careerbridge/internhub/internal/app/features/submissions"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The intake POST and the review endpoints
// share the /api/applications base path, so both features register onto the
// same subrouter.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	docStore, err := buildStorage(appCfg, logger)
	if err != nil {
		logger.Error("document storage init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Application intake + review workflow
	submissionsHandler := submissionsfeature.NewHandler(deps.MongoDatabase, docStore, logger)
	reviewHandler := reviewfeature.NewHandler(deps.MongoDatabase, logger)
	r.Route("/api/applications", func(ar chi.Router) {
		submissionsfeature.Register(ar, submissionsHandler)
		reviewfeature.Register(ar, reviewHandler)
	})

	// Posting catalog
	catalogHandler := catalogfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/postings", catalogfeature.Routes(catalogHandler))

	// Organization analytics
	analyticsHandler := analyticsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/analytics", analyticsfeature.Routes(analyticsHandler))

	return r, nil
}
