// internal/app/store/applications/applicationstore.go
package applicationstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/careerbridge/internhub/internal/app/system/paging"
	"github.com/careerbridge/internhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store owns the applications collection, including the status state machine
// and the uniqueness guarantee over (posting_id, applicant.email).
//
// Uniqueness is enforced by the unique index ensured at startup, not by a
// read-then-write check: concurrent submissions for the same pair race at the
// index and exactly one insert wins. ExistsForPosting is only a fast-path
// courtesy check for friendlier error timing.
type Store struct {
	c *mongo.Collection
}

var (
	// ErrDuplicateApplication means this applicant already applied to this posting.
	ErrDuplicateApplication = errors.New("an application for this posting and email already exists")

	// ErrNotFound means the application identifier did not resolve.
	ErrNotFound = errors.New("application not found")

	// ErrInvalidStatus means the requested status is outside the closed set.
	ErrInvalidStatus = errors.New("status is not a recognized value")

	// ErrTerminalStatus means the record is accepted or rejected and the
	// requested transition would leave that state.
	ErrTerminalStatus = errors.New("application review is already concluded")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("applications")}
}

// Create persists a new application. The store owns identity, initial status,
// and timestamps; callers supply everything else (validated and with the
// posting snapshot filled in).
func (s *Store) Create(ctx context.Context, app models.Application) (models.Application, error) {
	now := time.Now().UTC()
	app.ID = primitive.NewObjectID()
	app.Applicant.Email = strings.ToLower(strings.TrimSpace(app.Applicant.Email))
	app.OrganizationCI = text.Fold(app.OrganizationName)
	app.Status = models.StatusPending
	app.SubmittedAt = now
	app.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, app); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Application{}, ErrDuplicateApplication
		}
		return models.Application{}, err
	}
	return app, nil
}

// ExistsForPosting reports whether an application already exists for the
// (posting, email) pair. Optimization only; Create remains the authority.
func (s *Store) ExistsForPosting(ctx context.Context, postingID primitive.ObjectID, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"posting_id":      postingID,
		"applicant.email": strings.ToLower(strings.TrimSpace(email)),
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByID loads one application in full.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Application, error) {
	var app models.Application
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err == mongo.ErrNoDocuments {
		return models.Application{}, ErrNotFound
	}
	if err != nil {
		return models.Application{}, err
	}
	return app, nil
}

// SetStatus drives the review state machine.
//
//	pending → under_review → accepted | rejected
//	pending → accepted | rejected
//
// Setting the current status again is a no-op success (updated_at still
// refreshes). Leaving a terminal state fails with ErrTerminalStatus; the
// guard is part of the update filter, so it holds even when transitions
// race. When notes is non-nil the review notes are overwritten, markup
// already stripped by the caller. Non-terminal transitions are
// last-writer-wins.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, newStatus string, notes *string) (models.Application, error) {
	if !models.IsValidStatus(newStatus) {
		return models.Application{}, ErrInvalidStatus
	}

	set := bson.M{
		"status":     newStatus,
		"updated_at": time.Now().UTC(),
	}
	if notes != nil {
		set["review_notes"] = *notes
	}

	// Match only when the record is not in a terminal state, or when the
	// requested status is the one it already has (idempotent re-apply).
	filter := bson.M{
		"_id": id,
		"$or": []bson.M{
			{"status": newStatus},
			{"status": bson.M{"$nin": []string{models.StatusAccepted, models.StatusRejected}}},
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Application
	err := s.c.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// Either the record is gone or the guard refused the transition.
		if _, gerr := s.GetByID(ctx, id); gerr != nil {
			return models.Application{}, gerr
		}
		return models.Application{}, ErrTerminalStatus
	}
	if err != nil {
		return models.Application{}, err
	}
	return updated, nil
}

// Delete hard-deletes an application. This is an administrative operation,
// not a workflow transition; the review workflow never removes records.
// Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Filter narrows review listings. Empty fields match everything.
type Filter struct {
	Organization string
	Status       string
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if f.Organization != "" {
		q["organization_ci"] = text.Fold(f.Organization)
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	return q
}

// List returns one page of application summaries ordered by submission time,
// most recent first, plus the total match count for page metadata.
func (s *Store) List(ctx context.Context, f Filter, p paging.Params) ([]models.ApplicationSummary, int64, error) {
	query := f.query()

	total, err := s.c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{
			{Key: "submitted_at", Value: -1},
			{Key: "_id", Value: -1},
		}).
		SetSkip(p.Offset()).
		SetLimit(p.Limit()).
		SetProjection(bson.M{
			"documents":       0,
			"experience":      0,
			"additional_info": 0,
		})
	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var rows []models.Application
	if err := cur.All(ctx, &rows); err != nil {
		return nil, 0, err
	}

	summaries := make([]models.ApplicationSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.Summary())
	}
	return summaries, total, nil
}

// CountByStatus returns the number of applications for an organization in the
// given status; an empty status counts everything in scope.
func (s *Store) CountByStatus(ctx context.Context, organization, status string) (int64, error) {
	return s.c.CountDocuments(ctx, Filter{Organization: organization, Status: status}.query())
}

