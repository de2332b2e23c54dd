// Package submitval normalizes and validates incoming submissions.
//
// Normalize is a pure transform: it never touches storage and never stops at
// the first problem. Every violated field is collected so the caller can
// return the full set in a single 400 response.
package submitval

import (
	"encoding/json"
	"strings"

	"github.com/careerbridge/internhub/internal/app/system/textclean"
	"github.com/careerbridge/internhub/internal/domain/models"
)

// Bounds for the free-text fields, in characters.
const (
	CoverLetterMin = 50
	CoverLetterMax = 5000
	MotivationMin  = 20
	MotivationMax  = 2000
)

// PersonalInfo is the decoded personalInfo JSON section.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// EducationInfo is the decoded educationInfo JSON section.
type EducationInfo struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
	Score       string `json:"score"`
	Department  string `json:"department"`
}

// ExperienceInfo is the decoded experience JSON section.
type ExperienceInfo struct {
	PriorExperience string     `json:"priorExperience"`
	Projects        string     `json:"projects"`
	Skills          SkillsList `json:"skills"`
}

// ExtraInfo is the decoded additionalInfo JSON section.
type ExtraInfo struct {
	Availability string `json:"availability"`
	Duration     string `json:"duration"`
	Motivation   string `json:"motivation"`
	Source       string `json:"source"`
}

// SkillsList accepts either a JSON array of strings or a single delimited
// string ("Go, SQL; Writing"); both decode to the same slice.
type SkillsList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *SkillsList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*s = SplitSkills(one)
	return nil
}

// SplitSkills splits a comma- or semicolon-delimited skills string, trimming
// each entry and discarding empties.
func SplitSkills(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// RawSubmission is everything the intake endpoint hands to Normalize after
// decoding the multipart sections. Attachment handling is the caller's job;
// the resulting storage references are attached to the normalized value
// afterwards.
type RawSubmission struct {
	Personal    PersonalInfo
	Education   EducationInfo
	Experience  ExperienceInfo
	Additional  ExtraInfo
	CoverLetter string
}

// FieldErrors maps field names to human-readable violation messages.
type FieldErrors map[string]string

// Add records a violation for a field. The first message per field wins.
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// HasErrors reports whether any violation was recorded.
func (fe FieldErrors) HasErrors() bool { return len(fe) > 0 }

// Normalize validates raw against the structural and semantic rules and
// returns an Application-shaped value with cleaned fields. When the returned
// FieldErrors is non-empty the Application value must be discarded.
//
// Identity, posting snapshot, status, and timestamps are not set here; those
// belong to the store.
func Normalize(raw RawSubmission) (models.Application, FieldErrors) {
	fe := FieldErrors{}

	fullName := textclean.Strip(raw.Personal.FullName)
	email := strings.ToLower(strings.TrimSpace(raw.Personal.Email))
	phone := strings.TrimSpace(raw.Personal.Phone)
	coverLetter := textclean.Strip(raw.CoverLetter)
	motivation := textclean.Strip(raw.Additional.Motivation)
	institution := textclean.Strip(raw.Education.Institution)

	if fullName == "" {
		fe.Add("fullName", "Full name is required.")
	}
	switch {
	case email == "":
		fe.Add("email", "Email is required.")
	case !IsValidEmail(email):
		fe.Add("email", "Email address is not valid.")
	}
	if phone == "" {
		fe.Add("phone", "Phone number is required.")
	}
	if institution == "" {
		fe.Add("institution", "Institution is required.")
	}

	degree := strings.TrimSpace(raw.Education.Degree)
	switch {
	case degree == "":
		fe.Add("degree", "Degree is required.")
	case !member(models.DegreeTypes, degree):
		fe.Add("degree", "Degree is not a recognized value.")
	}

	year := strings.TrimSpace(raw.Education.Year)
	switch {
	case year == "":
		fe.Add("year", "Year in program is required.")
	case !member(models.YearsInProgram, year):
		fe.Add("year", "Year in program is not a recognized value.")
	}

	switch n := len([]rune(coverLetter)); {
	case n == 0:
		fe.Add("coverLetter", "Cover letter is required.")
	case n < CoverLetterMin:
		fe.Add("coverLetter", "Cover letter must be at least 50 characters.")
	case n > CoverLetterMax:
		fe.Add("coverLetter", "Cover letter must be at most 5000 characters.")
	}

	switch n := len([]rune(motivation)); {
	case n == 0:
		fe.Add("motivation", "Motivation is required.")
	case n < MotivationMin:
		fe.Add("motivation", "Motivation must be at least 20 characters.")
	case n > MotivationMax:
		fe.Add("motivation", "Motivation must be at most 2000 characters.")
	}

	availability := strings.TrimSpace(raw.Additional.Availability)
	if availability != "" && !member(models.Availabilities, availability) {
		fe.Add("availability", "Availability is not a recognized value.")
	}
	duration := strings.TrimSpace(raw.Additional.Duration)
	if duration != "" && !member(models.Durations, duration) {
		fe.Add("duration", "Expected duration is not a recognized value.")
	}

	skills := make([]string, 0, len(raw.Experience.Skills))
	for _, s := range raw.Experience.Skills {
		if s = textclean.Strip(s); s != "" {
			skills = append(skills, s)
		}
	}

	app := models.Application{
		Applicant: models.Applicant{
			FullName: fullName,
			Email:    email,
			Phone:    phone,
			Address:  textclean.Strip(raw.Personal.Address),
		},
		Education: models.Education{
			Institution: institution,
			Degree:      degree,
			Year:        year,
			Score:       strings.TrimSpace(raw.Education.Score),
			Department:  textclean.Strip(raw.Education.Department),
		},
		Experience: models.Experience{
			PriorExperience: textclean.Strip(raw.Experience.PriorExperience),
			Projects:        textclean.Strip(raw.Experience.Projects),
			Skills:          skills,
		},
		Documents: models.Documents{
			CoverLetter: coverLetter,
		},
		AdditionalInfo: models.AdditionalInfo{
			Availability: availability,
			Duration:     duration,
			Motivation:   motivation,
			Source:       strings.TrimSpace(raw.Additional.Source),
		},
	}
	return app, fe
}

func member(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
