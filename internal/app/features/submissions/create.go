// internal/app/features/submissions/create.go
package submissions

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	applicationstore "github.com/careerbridge/internhub/internal/app/store/applications"
	postingstore "github.com/careerbridge/internhub/internal/app/store/postings"
	"github.com/careerbridge/internhub/internal/app/system/limits"
	"github.com/careerbridge/internhub/internal/app/system/respond"
	"github.com/careerbridge/internhub/internal/app/system/submitval"
	"github.com/careerbridge/internhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// attachment is one optional file part of the submission form.
type attachment struct {
	field string // form part name, also used in error messages
	file  multipart.File
	name  string
	size  int64
	ctype string
}

// HandleCreate accepts one internship application.
//
// The pipeline is: parse multipart → size-check attachments → validate and
// normalize fields → resolve the posting → upload documents → insert with the
// duplicate constraint → bump the posting counter off-path → 201.
//
// Validation failures report every violated field at once. A file over the
// attachment limit is rejected before anything is persisted, naming which
// attachment was too large. If the insert fails after documents were
// uploaded, the uploads are deleted best-effort.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Submission())
	defer cancel()

	// Bound the whole request before parsing; attachments are individually
	// size-checked below, but nothing should spool past this cap at all.
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxSubmissionFormSize)

	if err := r.ParseMultipartForm(limits.MaxSubmissionFormSize); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			respond.PayloadTooLarge(w, "The submission exceeds the maximum request size.")
			return
		}
		respond.Error(w, http.StatusBadRequest, "The request is not a valid multipart submission.")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			r.MultipartForm.RemoveAll()
		}
	}()

	var attachments []attachment
	defer func() {
		for _, a := range attachments {
			a.file.Close()
		}
	}()
	for _, field := range []string{"resume", "transcripts"} {
		file, header, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "The "+field+" attachment could not be read.")
			return
		}
		attachments = append(attachments, attachment{
			field: field,
			file:  file,
			name:  header.Filename,
			size:  header.Size,
			ctype: header.Header.Get("Content-Type"),
		})
	}

	// Exactly at the limit is fine; one byte over is not.
	for _, a := range attachments {
		if a.size > limits.MaxAttachmentSize {
			respond.PayloadTooLarge(w, "The "+a.field+" attachment exceeds the 5 MB limit.")
			return
		}
	}

	raw, err := decodeSections(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "The submission sections could not be decoded: "+err.Error())
		return
	}

	app, fieldErrs := submitval.Normalize(raw)
	if fieldErrs.HasErrors() {
		respond.FieldErrors(w, fieldErrs)
		return
	}

	postingID, err := primitive.ObjectIDFromHex(strings.TrimSpace(r.FormValue("postingId")))
	if err != nil {
		respond.NotFound(w, "The posting does not exist or is no longer available.")
		return
	}
	posting, err := h.Postings.GetByID(ctx, postingID)
	if errors.Is(err, postingstore.ErrNotFound) {
		respond.NotFound(w, "The posting does not exist or is no longer available.")
		return
	}
	if err != nil {
		respond.ServerError(w, h.Log, "load posting", err)
		return
	}

	// Fast path in front of the unique index; the index still decides.
	exists, err := h.Applications.ExistsForPosting(ctx, posting.ID, app.Applicant.Email)
	if err != nil {
		respond.ServerError(w, h.Log, "duplicate pre-check", err)
		return
	}
	if exists {
		respond.Conflict(w, "You have already applied to this posting.")
		return
	}

	app.PostingID = posting.ID
	app.PostingTitle = posting.Title
	app.OrganizationName = posting.OrganizationName

	var uploaded []string
	for _, a := range attachments {
		info, err := uploadDocument(ctx, h.Storage, a.name, a.file, a.size, a.ctype)
		if err != nil {
			h.cleanupUploads(uploaded)
			h.Log.Error("document upload failed",
				zap.String("attachment", a.field),
				zap.Error(err))
			respond.Error(w, http.StatusServiceUnavailable,
				"Document storage is temporarily unavailable. Please retry your submission.")
			return
		}
		uploaded = append(uploaded, info.Path)
		switch a.field {
		case "resume":
			app.Documents.ResumePath = info.Path
			app.Documents.ResumeName = info.FileName
		case "transcripts":
			app.Documents.TranscriptPath = info.Path
			app.Documents.TranscriptName = info.FileName
		}
	}

	created, err := h.Applications.Create(ctx, app)
	if errors.Is(err, applicationstore.ErrDuplicateApplication) {
		h.cleanupUploads(uploaded)
		respond.Conflict(w, "You have already applied to this posting.")
		return
	}
	if err != nil {
		h.cleanupUploads(uploaded)
		respond.ServerError(w, h.Log, "insert application", err)
		return
	}

	h.Counters.Async(posting.ID)

	respond.JSON(w, http.StatusCreated, map[string]string{
		"applicationId": created.ID.Hex(),
	})
}

// decodeSections unpacks the JSON form parts into one raw submission.
func decodeSections(r *http.Request) (submitval.RawSubmission, error) {
	raw := submitval.RawSubmission{
		CoverLetter: r.FormValue("coverLetter"),
	}
	sections := []struct {
		field string
		dst   any
	}{
		{"personalInfo", &raw.Personal},
		{"educationInfo", &raw.Education},
		{"experience", &raw.Experience},
		{"additionalInfo", &raw.Additional},
	}
	for _, s := range sections {
		v := r.FormValue(s.field)
		if v == "" {
			continue // Normalize reports the missing required fields
		}
		if err := json.Unmarshal([]byte(v), s.dst); err != nil {
			return raw, errors.New(s.field + " is not valid JSON")
		}
	}
	return raw, nil
}

// cleanupUploads removes documents stored for a submission that did not make
// it into the database. Failures are logged and otherwise ignored; orphaned
// files are harmless compared to a dangling database reference.
func (h *Handler) cleanupUploads(paths []string) {
	if len(paths) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Short())
	defer cancel()
	for _, p := range paths {
		if err := h.Storage.Delete(ctx, p); err != nil {
			h.Log.Warn("orphaned upload cleanup failed",
				zap.String("path", p),
				zap.Error(err))
		}
	}
}
