package testutil

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/careerbridge/internhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreatePosting creates an open posting for the given organization.
// Returns the created posting with its generated ID.
func (f *Fixtures) CreatePosting(ctx context.Context, organization, title string) models.Posting {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Posting{
		ID:               primitive.NewObjectID(),
		Title:            title,
		TitleCI:          text.Fold(title),
		OrganizationName: organization,
		OrganizationCI:   text.Fold(organization),
		Location:         "Remote",
		Description:      "Test posting",
		Status:           models.PostingOpen,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := f.db.Collection("postings").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test posting: %v", err)
	}
	return p
}

// CreateApplication inserts an application directly, bypassing the intake
// pipeline, for tests that need pre-existing records. The email is derived
// from n so repeated calls against the same posting never collide.
func (f *Fixtures) CreateApplication(ctx context.Context, posting models.Posting, n int) models.Application {
	f.t.Helper()
	return f.CreateApplicationWithStatus(ctx, posting, n, models.StatusPending)
}

// CreateApplicationWithStatus is CreateApplication with an explicit review status.
func (f *Fixtures) CreateApplicationWithStatus(ctx context.Context, posting models.Posting, n int, status string) models.Application {
	f.t.Helper()
	return f.CreateApplicationDetailed(ctx, posting, n, status, []string{"Go", "MongoDB"}, models.DefaultSource, time.Now().UTC())
}

// CreateApplicationDetailed controls the fields analytics aggregates over:
// status, skill tags, referral source, and submission time.
func (f *Fixtures) CreateApplicationDetailed(ctx context.Context, posting models.Posting, n int, status string, skills []string, source string, submittedAt time.Time) models.Application {
	f.t.Helper()

	now := submittedAt
	app := models.Application{
		ID:               primitive.NewObjectID(),
		PostingID:        posting.ID,
		PostingTitle:     posting.Title,
		OrganizationName: posting.OrganizationName,
		OrganizationCI:   text.Fold(posting.OrganizationName),
		Applicant: models.Applicant{
			FullName: fmt.Sprintf("Applicant %d", n),
			Email:    fmt.Sprintf("applicant%d@test.com", n),
			Phone:    "+1 555 0100",
			Address:  "1 Test Street",
		},
		Education: models.Education{
			Institution: "Test University",
			Degree:      "bachelor",
			Year:        "third_year",
			Score:       "3.5",
			Department:  "Computer Science",
		},
		Experience: models.Experience{
			PriorExperience: "None",
			Skills:          skills,
		},
		Documents: models.Documents{
			CoverLetter: "A cover letter long enough to pass the intake validation rules.",
		},
		AdditionalInfo: models.AdditionalInfo{
			Availability: "immediate",
			Duration:     "three_months",
			Motivation:   "Motivated enough for the test fixtures.",
			Source:       source,
		},
		Status:      status,
		SubmittedAt: now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("applications").InsertOne(ctx, app); err != nil {
		f.t.Fatalf("failed to create test application: %v", err)
	}
	return app
}
