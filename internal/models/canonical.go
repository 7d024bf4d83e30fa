package models

// Platform identifies a supported scraper source.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformReddit    Platform = "reddit"
)

// Known reports whether p is one of the supported platforms.
func (p Platform) Known() bool {
	switch p {
	case PlatformInstagram, PlatformTikTok, PlatformReddit:
		return true
	}
	return false
}

// CanonicalRecord is the unified output row produced by the normalizer.
// Field order is fixed and mirrors the downstream column order, so JSON
// marshaling keeps format compatibility. Do not reorder.
type CanonicalRecord struct {
	Platform         Platform `json:"platform" dynamodbav:"platform"`
	Caption          string   `json:"caption" dynamodbav:"caption"`
	Text             string   `json:"text" dynamodbav:"text"`
	Hashtags         string   `json:"hashtags" dynamodbav:"hashtags"`
	Creator          string   `json:"creator" dynamodbav:"creator"`
	CreatorFullname  string   `json:"creator_fullname" dynamodbav:"creator_fullname"`
	CreatorFollowers int      `json:"creator_followers" dynamodbav:"creator_followers"`
	Timestamp        string   `json:"timestamp" dynamodbav:"timestamp"`
	URL              string   `json:"url" dynamodbav:"url"`
	Likes            int      `json:"likes" dynamodbav:"likes"`
	Comments         int      `json:"comments" dynamodbav:"comments"`
	Shares           int      `json:"shares" dynamodbav:"shares"`
	Plays            int      `json:"plays" dynamodbav:"plays"`
	Saves            int      `json:"saves" dynamodbav:"saves"`
	Upvotes          int      `json:"upvotes" dynamodbav:"upvotes"`
	EngagementScore  float64  `json:"engagement_score" dynamodbav:"engagement_score"`
	HoursSincePost   float64  `json:"hours_since_post" dynamodbav:"hours_since_post"`
	Velocity         float64  `json:"velocity" dynamodbav:"velocity"`
	AudioName        string   `json:"audio_name" dynamodbav:"audio_name"`
	Category         string   `json:"category" dynamodbav:"category"`
}

// RawItem is a loosely-typed scraper export row. Scrapers flatten
// nested structures into slash-separated keys ("authorMeta/name",
// "hashtags/0/name"), so a flat map is the natural shape.
type RawItem map[string]any

// ScoredRecord is a canonical record enriched with VADER sentiment at
// the persistence stage. The enrichment lives outside the canonical
// 20-field schema.
type ScoredRecord struct {
	CanonicalRecord
	SentimentScore float64 `json:"sentiment_score" dynamodbav:"sentiment_score"`
	SentimentLabel string  `json:"sentiment_label" dynamodbav:"sentiment_label"`
}
