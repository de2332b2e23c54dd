// internal/domain/models/posting.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Posting statuses.
const (
	PostingOpen   = "open"
	PostingClosed = "closed"
)

// Posting is a published internship listing that applications are submitted
// against. The intake engine treats postings as read-mostly: the only field it
// writes is ApplicationCount, and that via an atomic $inc.
type Posting struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	TitleCI          string             `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped
	OrganizationName string             `bson:"organization_name" json:"organization_name"`
	OrganizationCI   string             `bson:"organization_ci" json:"-"`
	Location         string             `bson:"location,omitempty" json:"location,omitempty"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Status           string             `bson:"status" json:"status"` // open | closed

	// ApplicationCount is maintained best-effort by the intake pipeline and is
	// monotonically non-decreasing outside of administrative corrections.
	ApplicationCount int64 `bson:"application_count" json:"application_count"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
