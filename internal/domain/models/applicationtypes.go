// internal/domain/models/applicationtypes.go
package models

// Canonical application status identifiers.
//
// These values are stored in the database in the Application.Status field and
// are used throughout the application as stable, language-agnostic keys.
//
// The state machine is owned by store/applications:
//
//	pending → under_review → accepted | rejected
//	pending → accepted | rejected        (the intermediate state is advisory)
//
// Accepted and rejected are terminal: once set, further transitions are
// refused.
const (
	StatusPending     = "pending"
	StatusUnderReview = "under_review"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
)

// ApplicationStatuses is the full set of allowed status identifiers and the
// single source of truth for validation and schema enums.
var ApplicationStatuses = []string{
	StatusPending,
	StatusUnderReview,
	StatusAccepted,
	StatusRejected,
}

// IsValidStatus reports whether s is a member of the closed status set.
func IsValidStatus(s string) bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether s is a concluded review outcome.
func IsTerminalStatus(s string) bool {
	return s == StatusAccepted || s == StatusRejected
}

// Canonical degree identifiers for Education.Degree.
const (
	DegreeBachelor = "bachelor"
	DegreeMaster   = "master"
	DegreePhD      = "phd"
	DegreeDiploma  = "diploma"
	DegreeOther    = "other"
)

// DegreeTypes is the full set of allowed degree identifiers.
var DegreeTypes = []string{
	DegreeBachelor,
	DegreeMaster,
	DegreePhD,
	DegreeDiploma,
	DegreeOther,
}

// Canonical year-in-program identifiers for Education.Year.
const (
	YearFirst    = "first_year"
	YearSecond   = "second_year"
	YearThird    = "third_year"
	YearFourth   = "fourth_year"
	YearFinal    = "final_year"
	YearGraduate = "graduate"
)

// YearsInProgram is the full set of allowed year-in-program identifiers.
var YearsInProgram = []string{
	YearFirst,
	YearSecond,
	YearThird,
	YearFourth,
	YearFinal,
	YearGraduate,
}

// Canonical availability identifiers for AdditionalInfo.Availability.
const (
	AvailabilityImmediate = "immediate"
	AvailabilityTwoWeeks  = "two_weeks"
	AvailabilityOneMonth  = "one_month"
	AvailabilityFlexible  = "flexible"
)

// Availabilities is the full set of allowed availability identifiers.
var Availabilities = []string{
	AvailabilityImmediate,
	AvailabilityTwoWeeks,
	AvailabilityOneMonth,
	AvailabilityFlexible,
}

// Canonical expected-duration identifiers for AdditionalInfo.Duration.
const (
	DurationOneMonth    = "one_month"
	DurationTwoMonths   = "two_months"
	DurationThreeMonths = "three_months"
	DurationSixMonths   = "six_months"
	DurationFlexible    = "flexible"
)

// Durations is the full set of allowed expected-duration identifiers.
var Durations = []string{
	DurationOneMonth,
	DurationTwoMonths,
	DurationThreeMonths,
	DurationSixMonths,
	DurationFlexible,
}

// DefaultSource is the sentinel reported by analytics when an application
// carries no declared source.
const DefaultSource = "Direct"
