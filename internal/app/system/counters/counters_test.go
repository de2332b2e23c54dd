package counters_test

import (
	"errors"
	"testing"

	postingstore "github.com/careerbridge/internhub/internal/app/store/postings"
	"github.com/careerbridge/internhub/internal/app/system/counters"
	"github.com/careerbridge/internhub/internal/domain/models"
	"github.com/careerbridge/internhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestIncrementer_Sync(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := postingstore.New(db)
	inc := counters.New(store, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting, err := store.Create(ctx, models.Posting{
		Title:            "Backend Intern",
		OrganizationName: "Acme Robotics",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := inc.Sync(ctx, posting.ID); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if err := inc.Sync(ctx, posting.ID); err != nil {
		t.Fatalf("second Sync failed: %v", err)
	}

	found, err := store.GetByID(ctx, posting.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.ApplicationCount != 2 {
		t.Errorf("expected application count 2, got %d", found.ApplicationCount)
	}
}

func TestIncrementer_Sync_MissingPosting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	inc := counters.New(postingstore.New(db), zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := inc.Sync(ctx, primitive.NewObjectID())
	if !errors.Is(err, postingstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
