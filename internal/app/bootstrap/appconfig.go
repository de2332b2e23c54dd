// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// CORS). AppConfig is everything specific to the intake service: database
// connection, document storage, and the submission time budget.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Document storage configuration
	StorageType      string // Storage backend: "local" (S3 can be added later)
	StorageLocalPath string // Local storage path (e.g., "./uploads/applications")
	StorageLocalURL  string // URL prefix for serving stored documents

	// SubmissionTimeout bounds a full submission including attachment I/O.
	SubmissionTimeout time.Duration
}
