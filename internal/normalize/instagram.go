package normalize

import "github.com/trendsift/trendsift/internal/models"

// Instagram export schema (Apify-style flattened rows). Fallback
// chains are declared as data so the field resolution stays testable.
var (
	instagramURLFields   = []string{"url", "displayUrl", "videoUrl"}
	instagramPlaysFields = []string{"videoPlayCount", "igPlayCount", "fbPlayCount"}
)

func normalizeInstagram(items []models.RawItem) []draft {
	drafts := make([]draft, 0, len(items))
	for _, item := range items {
		caption := stringField(item, "caption")

		plays := OptInt{}
		if v, ok := firstPresent(item, instagramPlaysFields); ok {
			plays = ToInt(v)
		}

		// first present field wins, even when it holds an empty string
		url := ""
		if v, ok := firstPresent(item, instagramURLFields); ok {
			url = asString(v)
		}

		d := draft{
			Caption:         caption,
			Text:            caption, // IG exports carry one text field
			Hashtags:        JoinTags(indexedValues(item, "hashtags/", "")...),
			Creator:         stringField(item, "ownerUsername"),
			CreatorFullname: stringField(item, "ownerFullName"),
			// follower counts are not in this export
			URL:       url,
			PostedAt:  ParseTimestamp(item["timestamp"]),
			Likes:     ToInt(item["likesCount"]),
			Comments:  ToInt(item["commentsCount"]),
			Shares:    ToInt(item["reshareCount"]),
			Plays:     plays,
			AudioName: stringField(item, "musicInfo/song_name"),
			// saves and upvotes are not exposed by Instagram
		}
		drafts = append(drafts, d)
	}
	return drafts
}
