// internal/app/system/limits/limits.go
package limits

// Request body size limits for the intake endpoints.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxAttachmentSize is the largest single attachment (resume or
	// transcript) accepted with a submission. Exactly this size passes;
	// one byte over is rejected with 413.
	MaxAttachmentSize = 5 << 20 // 5 MB

	// MaxSubmissionFormSize bounds the whole multipart submission: two
	// attachments plus the JSON sections and cover letter text.
	MaxSubmissionFormSize = 12 << 20 // 12 MB

	// MaxStatusBodySize bounds the review status-transition request body.
	MaxStatusBodySize = 64 << 10 // 64 KB
)
