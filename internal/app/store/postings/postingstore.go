// internal/app/store/postings/postingstore.go
package postingstore

import (
	"context"
	"errors"
	"time"

	"github.com/careerbridge/internhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the posting catalog. The intake engine reads postings and bumps
// their application counter; posting CRUD beyond Create (used by admin tooling
// and test fixtures) lives elsewhere.
type Store struct {
	c *mongo.Collection
}

// ErrNotFound is returned when a posting identifier does not resolve.
var ErrNotFound = errors.New("posting not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("postings")}
}

// Create inserts a posting with normalized search fields and fresh timestamps.
func (s *Store) Create(ctx context.Context, p models.Posting) (models.Posting, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.TitleCI = text.Fold(p.Title)
	p.OrganizationCI = text.Fold(p.OrganizationName)
	if p.Status == "" {
		p.Status = models.PostingOpen
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Posting{}, err
	}
	return p, nil
}

// GetByID loads one posting.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Posting, error) {
	var p models.Posting
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Posting{}, ErrNotFound
	}
	if err != nil {
		return models.Posting{}, err
	}
	return p, nil
}

// ListByOrganization returns open postings for an organization, newest first.
func (s *Store) ListByOrganization(ctx context.Context, organization string) ([]models.Posting, error) {
	filter := bson.M{
		"organization_ci": text.Fold(organization),
		"status":          models.PostingOpen,
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var postings []models.Posting
	if err := cur.All(ctx, &postings); err != nil {
		return nil, err
	}
	return postings, nil
}

// CountByOrganization returns the number of open postings for an organization.
func (s *Store) CountByOrganization(ctx context.Context, organization string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{
		"organization_ci": text.Fold(organization),
		"status":          models.PostingOpen,
	})
}

// IncrementApplicationCount atomically bumps the posting's counter and
// refreshes updated_at. Returns ErrNotFound if the posting no longer exists:
// callers treat the whole operation as best-effort.
func (s *Store) IncrementApplicationCount(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"application_count": 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
