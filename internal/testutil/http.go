package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

// SubmissionForm builds the multipart body the intake endpoint expects.
// Section values are JSON strings; file parts carry raw bytes.
type SubmissionForm struct {
	PostingID      string
	PersonalInfo   string
	EducationInfo  string
	Experience     string
	AdditionalInfo string
	CoverLetter    string

	ResumeName     string
	Resume         []byte
	TranscriptName string
	Transcript     []byte
}

// NewSubmissionRequest encodes f as a multipart POST request.
func NewSubmissionRequest(t *testing.T, target string, f SubmissionForm) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"postingId":      f.PostingID,
		"personalInfo":   f.PersonalInfo,
		"educationInfo":  f.EducationInfo,
		"experience":     f.Experience,
		"additionalInfo": f.AdditionalInfo,
		"coverLetter":    f.CoverLetter,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			t.Fatalf("failed to write form field %s: %v", name, err)
		}
	}

	if f.Resume != nil {
		fw, err := w.CreateFormFile("resume", f.ResumeName)
		if err != nil {
			t.Fatalf("failed to create resume part: %v", err)
		}
		if _, err := fw.Write(f.Resume); err != nil {
			t.Fatalf("failed to write resume part: %v", err)
		}
	}
	if f.Transcript != nil {
		fw, err := w.CreateFormFile("transcripts", f.TranscriptName)
		if err != nil {
			t.Fatalf("failed to create transcript part: %v", err)
		}
		if _, err := fw.Write(f.Transcript); err != nil {
			t.Fatalf("failed to write transcript part: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("failed to finalize multipart body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
