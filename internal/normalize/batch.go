package normalize

import (
	"time"

	"github.com/trendsift/trendsift/internal/models"
)

// canonicalTimeFormat is the fixed output pattern for post timestamps.
// Instants are already UTC when formatted, hence the literal Z.
const canonicalTimeFormat = "2006-01-02T15:04:05Z"

// finalize is the batch normalization step: dedup by URL keeping the
// first occurrence in input order, compute derived metrics against
// ref, and collapse every remaining absent value to the canonical
// default (0 for counts, "" for text). An unresolvable URL is the
// empty string and collapses like any other duplicate.
func finalize(platform models.Platform, category string, drafts []draft, ref time.Time) []models.CanonicalRecord {
	records := make([]models.CanonicalRecord, 0, len(drafts))
	seen := make(map[string]struct{}, len(drafts))

	for _, d := range drafts {
		if _, dup := seen[d.URL]; dup {
			continue
		}
		seen[d.URL] = struct{}{}

		m := computeMetrics(d.Likes, d.Comments, d.Shares, d.Saves, d.Upvotes, d.Plays, d.PostedAt, ref)

		records = append(records, models.CanonicalRecord{
			Platform:         platform,
			Caption:          d.Caption,
			Text:             d.Text,
			Hashtags:         d.Hashtags,
			Creator:          d.Creator,
			CreatorFullname:  d.CreatorFullname,
			CreatorFollowers: nonNegative(d.CreatorFollowers),
			Timestamp:        formatTimestamp(d.PostedAt),
			URL:              d.URL,
			Likes:            nonNegative(d.Likes),
			Comments:         nonNegative(d.Comments),
			Shares:           nonNegative(d.Shares),
			Plays:            nonNegative(d.Plays),
			Saves:            nonNegative(d.Saves),
			Upvotes:          nonNegative(d.Upvotes),
			EngagementScore:  m.EngagementScore,
			HoursSincePost:   m.HoursSincePost,
			Velocity:         m.Velocity,
			AudioName:        d.AudioName,
			Category:         category,
		})
	}
	return records
}

func formatTimestamp(t OptTime) string {
	if !t.Present {
		return ""
	}
	return t.Value.UTC().Format(canonicalTimeFormat)
}
