package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careerbridge/internhub/internal/app/features/catalog"
	"github.com/careerbridge/internhub/internal/domain/models"
	"github.com/careerbridge/internhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (chi.Router, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := catalog.NewHandler(db, zap.NewNop())
	return catalog.Routes(h), testutil.NewFixtures(t, db)
}

func TestHandleDetail(t *testing.T) {
	r, fx := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posting := fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")

	req := httptest.NewRequest("GET", "/"+posting.ID.Hex(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got models.Posting
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if got.ID != posting.ID || got.Title != posting.Title {
		t.Errorf("unexpected posting: %+v", got)
	}
}

func TestHandleDetail_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, id := range []string{primitive.NewObjectID().Hex(), "bogus"} {
		req := httptest.NewRequest("GET", "/"+id, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("id %q: expected 404, got %d", id, rec.Code)
		}
	}
}

func TestHandleList(t *testing.T) {
	r, fx := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreatePosting(ctx, "Acme Robotics", "Backend Intern")
	fx.CreatePosting(ctx, "Acme Robotics", "Data Intern")
	fx.CreatePosting(ctx, "Other Corp", "Elsewhere")

	req := httptest.NewRequest("GET", "/?organization=acme%20robotics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Postings []models.Posting `json:"postings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(body.Postings) != 2 {
		t.Errorf("expected 2 postings, got %d", len(body.Postings))
	}
}

func TestHandleList_MissingOrganization(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without organization, got %d", rec.Code)
	}
}
