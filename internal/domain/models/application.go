// internal/domain/models/application.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Applicant holds the personal contact details captured at submission time.
type Applicant struct {
	FullName string `bson:"full_name" json:"full_name"`
	Email    string `bson:"email" json:"email"` // always stored lower-cased
	Phone    string `bson:"phone" json:"phone"`
	Address  string `bson:"address,omitempty" json:"address,omitempty"`
}

// Education describes the applicant's current program.
type Education struct {
	Institution string `bson:"institution" json:"institution"`
	Degree      string `bson:"degree" json:"degree"` // member of DegreeTypes
	Year        string `bson:"year" json:"year"`     // member of YearsInProgram
	Score       string `bson:"score,omitempty" json:"score,omitempty"`
	Department  string `bson:"department,omitempty" json:"department,omitempty"`
}

// Experience holds free-text background plus skill tags. Skills are stored as
// entered (trimmed, empties dropped); analytics deduplicates per record on read.
type Experience struct {
	PriorExperience string   `bson:"prior_experience,omitempty" json:"prior_experience,omitempty"`
	Projects        string   `bson:"projects,omitempty" json:"projects,omitempty"`
	Skills          []string `bson:"skills,omitempty" json:"skills,omitempty"`
}

// Documents holds the required cover letter text and optional storage
// references for uploaded files. References are paths into the document
// store, never raw bytes.
type Documents struct {
	CoverLetter    string `bson:"cover_letter" json:"cover_letter"`
	ResumePath     string `bson:"resume_path,omitempty" json:"resume_path,omitempty"`
	ResumeName     string `bson:"resume_name,omitempty" json:"resume_name,omitempty"`
	TranscriptPath string `bson:"transcript_path,omitempty" json:"transcript_path,omitempty"`
	TranscriptName string `bson:"transcript_name,omitempty" json:"transcript_name,omitempty"`
}

// AdditionalInfo captures availability and motivation.
type AdditionalInfo struct {
	Availability string `bson:"availability,omitempty" json:"availability,omitempty"` // member of Availabilities
	Duration     string `bson:"duration,omitempty" json:"duration,omitempty"`         // member of Durations
	Motivation   string `bson:"motivation" json:"motivation"`
	Source       string `bson:"source,omitempty" json:"source,omitempty"` // "Direct" sentinel applied in analytics
}

// Application is the central entity: one applicant's submission against one
// posting. PostingTitle and OrganizationName are denormalized at submission
// time so the record stays meaningful if the posting is later edited or
// removed.
//
// Invariants:
//   - (PostingID, Applicant.Email) is unique across all records, enforced by
//     a unique index, not by read-then-write.
//   - SubmittedAt is immutable and never after UpdatedAt.
//   - Status moves only along the edges checked in store/applications.
type Application struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostingID        primitive.ObjectID `bson:"posting_id" json:"posting_id"`
	PostingTitle     string             `bson:"posting_title" json:"posting_title"`
	OrganizationName string             `bson:"organization_name" json:"organization_name"`
	OrganizationCI   string             `bson:"organization_ci" json:"-"` // lowercase, diacritics-stripped

	Applicant      Applicant      `bson:"applicant" json:"applicant"`
	Education      Education      `bson:"education" json:"education"`
	Experience     Experience     `bson:"experience" json:"experience"`
	Documents      Documents      `bson:"documents" json:"documents"`
	AdditionalInfo AdditionalInfo `bson:"additional_info" json:"additional_info"`

	Status      string `bson:"status" json:"status"`
	ReviewNotes string `bson:"review_notes,omitempty" json:"review_notes,omitempty"`

	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// ApplicationSummary is the list-view projection. It deliberately omits the
// cover letter body, experience text, and document references so review
// listings stay lean.
type ApplicationSummary struct {
	ID               primitive.ObjectID `json:"id"`
	PostingID        primitive.ObjectID `json:"posting_id"`
	PostingTitle     string             `json:"posting_title"`
	OrganizationName string             `json:"organization_name"`
	ApplicantName    string             `json:"applicant_name"`
	ApplicantEmail   string             `json:"applicant_email"`
	Status           string             `json:"status"`
	SubmittedAt      time.Time          `json:"submitted_at"`
}

// Summary projects an Application onto its list view.
func (a Application) Summary() ApplicationSummary {
	return ApplicationSummary{
		ID:               a.ID,
		PostingID:        a.PostingID,
		PostingTitle:     a.PostingTitle,
		OrganizationName: a.OrganizationName,
		ApplicantName:    a.Applicant.FullName,
		ApplicantEmail:   a.Applicant.Email,
		Status:           a.Status,
		SubmittedAt:      a.SubmittedAt,
	}
}
