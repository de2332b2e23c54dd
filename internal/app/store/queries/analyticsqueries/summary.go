// Package analyticsqueries computes the operational summary the reviewing
// organization sees on its dashboard.
//
// Everything is derived by one full scan of the in-scope applications per
// invocation; nothing is maintained incrementally. If volume ever makes the
// scan expensive a cache can sit in front, but the semantics must stay
// identical to a full recompute.
package analyticsqueries

import (
	"context"
	"sort"
	"time"

	"github.com/careerbridge/internhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TopSkillsLimit is where the skills frequency table is truncated.
const TopSkillsLimit = 10

// MonthCount is one bucket of the submission histogram. Month keys are
// calendar months of submitted_at, formatted YYYY-MM, ascending.
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// TagCount is one row of a frequency table (skills or sources), ordered by
// descending frequency with ties broken by first-seen order.
type TagCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Summary is the computed analytics for one organization scope.
type Summary struct {
	TotalApplications    int64        `json:"total_applications"`
	ActivePostings       int64        `json:"active_postings"`
	PendingApplications  int64        `json:"pending_applications"`
	AcceptedApplications int64        `json:"accepted_applications"`
	MonthlySubmissions   []MonthCount `json:"monthly_submissions"`
	TopSkills            []TagCount   `json:"top_skills"`
	Sources              []TagCount   `json:"sources"`
}

// scanRow is the projection pulled for the histogram and frequency tables.
type scanRow struct {
	SubmittedAt time.Time `bson:"submitted_at"`
	Experience  struct {
		Skills []string `bson:"skills"`
	} `bson:"experience"`
	AdditionalInfo struct {
		Source string `bson:"source"`
	} `bson:"additional_info"`
}

// Compute builds the summary for one organization. An organization with no
// postings or applications yields zero counts and empty tables, not an error;
// analytics is a best-effort read, never a critical path.
func Compute(ctx context.Context, db *mongo.Database, organization string) (Summary, error) {
	apps := db.Collection("applications")
	postings := db.Collection("postings")
	scope := bson.M{"organization_ci": text.Fold(organization)}

	var out Summary
	var err error

	if out.TotalApplications, err = apps.CountDocuments(ctx, scope); err != nil {
		return Summary{}, err
	}
	if out.PendingApplications, err = apps.CountDocuments(ctx, withStatus(scope, models.StatusPending)); err != nil {
		return Summary{}, err
	}
	if out.AcceptedApplications, err = apps.CountDocuments(ctx, withStatus(scope, models.StatusAccepted)); err != nil {
		return Summary{}, err
	}
	if out.ActivePostings, err = postings.CountDocuments(ctx, withStatus(scope, models.PostingOpen)); err != nil {
		return Summary{}, err
	}

	// Scan in submission order so first-seen tie-breaks are stable.
	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{
			"submitted_at":           1,
			"experience.skills":      1,
			"additional_info.source": 1,
		})
	cur, err := apps.Find(ctx, scope, opts)
	if err != nil {
		return Summary{}, err
	}
	defer cur.Close(ctx)

	months := map[string]int64{}
	skills := newFreqTable()
	sources := newFreqTable()

	for cur.Next(ctx) {
		var row scanRow
		if err := cur.Decode(&row); err != nil {
			return Summary{}, err
		}

		months[row.SubmittedAt.UTC().Format("2006-01")]++

		// Skills repeated inside one application count once.
		seen := map[string]bool{}
		for _, skill := range row.Experience.Skills {
			if skill == "" || seen[skill] {
				continue
			}
			seen[skill] = true
			skills.add(skill)
		}

		source := row.AdditionalInfo.Source
		if source == "" {
			source = models.DefaultSource
		}
		sources.add(source)
	}
	if err := cur.Err(); err != nil {
		return Summary{}, err
	}

	out.MonthlySubmissions = monthBuckets(months)
	out.TopSkills = skills.ranked(TopSkillsLimit)
	out.Sources = sources.ranked(0)
	return out, nil
}

func withStatus(scope bson.M, status string) bson.M {
	q := bson.M{"status": status}
	for k, v := range scope {
		q[k] = v
	}
	return q
}

func monthBuckets(months map[string]int64) []MonthCount {
	out := make([]MonthCount, 0, len(months))
	for month, count := range months {
		out = append(out, MonthCount{Month: month, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// freqTable counts tags while remembering the order each tag first appeared,
// which breaks frequency ties deterministically.
type freqTable struct {
	counts map[string]int64
	order  map[string]int
	next   int
}

func newFreqTable() *freqTable {
	return &freqTable{counts: map[string]int64{}, order: map[string]int{}}
}

func (t *freqTable) add(name string) {
	if _, ok := t.counts[name]; !ok {
		t.order[name] = t.next
		t.next++
	}
	t.counts[name]++
}

// ranked returns the table ordered by frequency descending, first-seen on
// ties, truncated to limit when limit > 0.
func (t *freqTable) ranked(limit int) []TagCount {
	out := make([]TagCount, 0, len(t.counts))
	for name, count := range t.counts {
		out = append(out, TagCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return t.order[out[i].Name] < t.order[out[j].Name]
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
