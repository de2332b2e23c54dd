package applicationstore_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	applicationstore "github.com/careerbridge/internhub/internal/app/store/applications"
	"github.com/careerbridge/internhub/internal/app/system/paging"
	"github.com/careerbridge/internhub/internal/domain/models"
	"github.com/careerbridge/internhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newApplication builds a valid application value for posting with a unique
// applicant email derived from n.
func newApplication(posting models.Posting, n int) models.Application {
	return models.Application{
		PostingID:        posting.ID,
		PostingTitle:     posting.Title,
		OrganizationName: posting.OrganizationName,
		Applicant: models.Applicant{
			FullName: fmt.Sprintf("Applicant %d", n),
			Email:    fmt.Sprintf("applicant%d@test.com", n),
			Phone:    "+1 555 0100",
		},
		Education: models.Education{
			Institution: "Test University",
			Degree:      "bachelor",
			Year:        "third_year",
		},
		Experience: models.Experience{
			Skills: []string{"Go", "MongoDB"},
		},
		Documents: models.Documents{
			CoverLetter: "A cover letter long enough to satisfy the intake validation rules.",
		},
		AdditionalInfo: models.AdditionalInfo{
			Motivation: "Motivated enough for the store tests.",
		},
	}
}

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")

	app := newApplication(posting, 1)
	app.Applicant.Email = "Applicant1@Test.COM" // stored lower-cased

	created, err := store.Create(ctx, app)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Applicant.Email != "applicant1@test.com" {
		t.Errorf("expected lower-cased email, got %q", created.Applicant.Email)
	}
	if created.Status != models.StatusPending {
		t.Errorf("expected status %q, got %q", models.StatusPending, created.Status)
	}
	if created.SubmittedAt.IsZero() {
		t.Error("expected SubmittedAt to be set")
	}
	if !created.SubmittedAt.Equal(created.UpdatedAt) {
		t.Error("expected SubmittedAt and UpdatedAt to match on a fresh record")
	}
}

func TestStore_Create_DuplicatePair(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")
	other := fx.CreatePosting(ctx, "Acme Robotics", "Data Intern")

	if _, err := store.Create(ctx, newApplication(posting, 1)); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Same posting, same email: refused. Case differences do not help.
	dup := newApplication(posting, 1)
	dup.Applicant.Email = "APPLICANT1@test.com"
	if _, err := store.Create(ctx, dup); !errors.Is(err, applicationstore.ErrDuplicateApplication) {
		t.Errorf("expected ErrDuplicateApplication, got %v", err)
	}

	// Same email against a different posting is a new application.
	if _, err := store.Create(ctx, newApplication(other, 1)); err != nil {
		t.Errorf("same email on another posting should succeed, got %v", err)
	}

	// Different email on the original posting is fine too.
	if _, err := store.Create(ctx, newApplication(posting, 2)); err != nil {
		t.Errorf("different email on same posting should succeed, got %v", err)
	}
}

func TestStore_Create_ConcurrentDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")

	const attempts = 8
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(ctx, newApplication(posting, 1))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, dups int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, applicationstore.ErrDuplicateApplication):
			dups++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("expected exactly one insert to win, got %d", wins)
	}
	if dups != attempts-1 {
		t.Errorf("expected %d duplicate rejections, got %d", attempts-1, dups)
	}
}

func TestStore_ExistsForPosting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")
	if _, err := store.Create(ctx, newApplication(posting, 1)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	exists, err := store.ExistsForPosting(ctx, posting.ID, "Applicant1@Test.com")
	if err != nil {
		t.Fatalf("ExistsForPosting failed: %v", err)
	}
	if !exists {
		t.Error("expected existing pair to be reported")
	}

	exists, err = store.ExistsForPosting(ctx, posting.ID, "someoneelse@test.com")
	if err != nil {
		t.Fatalf("ExistsForPosting failed: %v", err)
	}
	if exists {
		t.Error("expected unknown pair to be absent")
	}
}

func TestStore_SetStatus_Transitions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")
	created, err := store.Create(ctx, newApplication(posting, 1))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	under, err := store.SetStatus(ctx, created.ID, models.StatusUnderReview, nil)
	if err != nil {
		t.Fatalf("pending → under_review failed: %v", err)
	}
	if under.Status != models.StatusUnderReview {
		t.Errorf("expected %q, got %q", models.StatusUnderReview, under.Status)
	}
	if !under.SubmittedAt.Equal(created.SubmittedAt) {
		t.Error("expected SubmittedAt to be immutable")
	}
	if under.UpdatedAt.Before(under.SubmittedAt) {
		t.Error("expected UpdatedAt >= SubmittedAt after a transition")
	}

	notes := "Strong systems background."
	accepted, err := store.SetStatus(ctx, created.ID, models.StatusAccepted, &notes)
	if err != nil {
		t.Fatalf("under_review → accepted failed: %v", err)
	}
	if accepted.ReviewNotes != notes {
		t.Errorf("expected review notes %q, got %q", notes, accepted.ReviewNotes)
	}
}

func TestStore_SetStatus_IdempotentSameStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")
	created, err := store.Create(ctx, newApplication(posting, 1))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := store.SetStatus(ctx, created.ID, models.StatusAccepted, nil); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	// Re-applying a terminal status is a no-op success, not a conflict.
	again, err := store.SetStatus(ctx, created.ID, models.StatusAccepted, nil)
	if err != nil {
		t.Fatalf("idempotent accept failed: %v", err)
	}
	if again.Status != models.StatusAccepted {
		t.Errorf("expected %q, got %q", models.StatusAccepted, again.Status)
	}
}

func TestStore_SetStatus_TerminalIsTerminal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")
	created, err := store.Create(ctx, newApplication(posting, 1))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := store.SetStatus(ctx, created.ID, models.StatusRejected, nil); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if _, err := store.SetStatus(ctx, created.ID, models.StatusUnderReview, nil); !errors.Is(err, applicationstore.ErrTerminalStatus) {
		t.Errorf("expected ErrTerminalStatus, got %v", err)
	}
}

func TestStore_SetStatus_TerminalEnforcedAtWrite(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")
	created, err := store.Create(ctx, newApplication(posting, 1))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Conclude the review behind the store's back, as a racing transition
	// would. The guard lives in the update filter, so the stale caller is
	// still refused.
	if _, err := db.Collection("applications").UpdateByID(ctx, created.ID,
		bson.M{"$set": bson.M{"status": models.StatusRejected}}); err != nil {
		t.Fatalf("direct status write failed: %v", err)
	}

	if _, err := store.SetStatus(ctx, created.ID, models.StatusUnderReview, nil); !errors.Is(err, applicationstore.ErrTerminalStatus) {
		t.Errorf("expected ErrTerminalStatus, got %v", err)
	}

	// Re-applying the terminal status still succeeds.
	again, err := store.SetStatus(ctx, created.ID, models.StatusRejected, nil)
	if err != nil {
		t.Fatalf("idempotent reject failed: %v", err)
	}
	if again.Status != models.StatusRejected {
		t.Errorf("expected %q, got %q", models.StatusRejected, again.Status)
	}
}

func TestStore_SetStatus_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")
	created, err := store.Create(ctx, newApplication(posting, 1))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := store.SetStatus(ctx, created.ID, "archived", nil); !errors.Is(err, applicationstore.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := store.SetStatus(ctx, primitive.NewObjectID(), models.StatusAccepted, nil); !errors.Is(err, applicationstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_List_Pagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")
	for i := 0; i < 45; i++ {
		if _, err := store.Create(ctx, newApplication(posting, i)); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	rows, total, err := store.List(ctx, applicationstore.Filter{}, paging.Params{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 45 {
		t.Errorf("expected total 45, got %d", total)
	}
	if len(rows) != 20 {
		t.Errorf("expected 20 rows on page 1, got %d", len(rows))
	}

	meta := paging.NewMeta(total, paging.Params{Page: 1, PageSize: 20})
	if meta.Pages != 3 {
		t.Errorf("expected 3 pages for 45 records at page size 20, got %d", meta.Pages)
	}

	last, _, err := store.List(ctx, applicationstore.Filter{}, paging.Params{Page: 3, PageSize: 20})
	if err != nil {
		t.Fatalf("List page 3 failed: %v", err)
	}
	if len(last) != 5 {
		t.Errorf("expected 5 rows on page 3, got %d", len(last))
	}

	past, pastTotal, err := store.List(ctx, applicationstore.Filter{}, paging.Params{Page: 4, PageSize: 20})
	if err != nil {
		t.Fatalf("List past the end failed: %v", err)
	}
	if len(past) != 0 || pastTotal != 45 {
		t.Errorf("expected empty page with full total past the end, got %d rows, total %d", len(past), pastTotal)
	}
}

func TestStore_List_Filtered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	acme := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")
	other := fx.CreatePosting(ctx, "Other Corp", "Data Intern")

	a, err := store.Create(ctx, newApplication(acme, 1))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, newApplication(acme, 2)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, newApplication(other, 3)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.SetStatus(ctx, a.ID, models.StatusAccepted, nil); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	rows, total, err := store.List(ctx, applicationstore.Filter{Organization: "ACME Robotics"}, paging.Params{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("List by organization failed: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Errorf("expected 2 rows for Acme, got %d (total %d)", len(rows), total)
	}

	rows, total, err = store.List(ctx, applicationstore.Filter{Organization: "Acme Robotics", Status: models.StatusAccepted}, paging.Params{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("List by status failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("expected 1 accepted row, got %d (total %d)", len(rows), total)
	}
	if rows[0].Status != models.StatusAccepted {
		t.Errorf("expected accepted row, got %q", rows[0].Status)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")
	created, err := store.Create(ctx, newApplication(posting, 1))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 deletion, got %d", deleted)
	}

	deleted, err = store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deletions on repeat, got %d", deleted)
	}
}
