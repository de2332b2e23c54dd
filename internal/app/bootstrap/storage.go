// internal/app/bootstrap/storage.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

// buildStorage constructs the document store the submission pipeline writes
// applicant files to. Only the local backend is configured today; an S3
// backend can be added here without touching the features.
func buildStorage(appCfg AppConfig, logger *zap.Logger) (storage.Store, error) {
	switch appCfg.StorageType {
	case "local":
		store, err := storage.NewLocal(storage.LocalConfig{
			BasePath: appCfg.StorageLocalPath,
			BaseURL:  appCfg.StorageLocalURL,
		})
		if err != nil {
			return nil, fmt.Errorf("local storage init: %w", err)
		}
		logger.Info("document storage ready",
			zap.String("type", "local"),
			zap.String("path", appCfg.StorageLocalPath))
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage_type %q", appCfg.StorageType)
	}
}
