package normalize

import (
	"strings"

	"github.com/trendsift/trendsift/internal/models"
)

// TikTok export schema, flattened "authorMeta/..." and
// "hashtags/<i>/name" columns.
var tiktokTimestampFields = []string{"createTimeISO", "createTime"}

func normalizeTikTok(items []models.RawItem) []draft {
	drafts := make([]draft, 0, len(items))
	for _, item := range items {
		text := stringField(item, "text")

		posted := OptTime{}
		if v, ok := firstPresent(item, tiktokTimestampFields); ok {
			posted = ParseTimestamp(v)
		}

		d := draft{
			Caption:          text,
			Text:             text, // TikTok has no separate caption
			Hashtags:         JoinTags(indexedValues(item, "hashtags/", "/name")...),
			Creator:          stringField(item, "authorMeta/name"),
			CreatorFullname:  stringField(item, "authorMeta/nickName"),
			CreatorFollowers: ToInt(item["authorMeta/fans"]),
			PostedAt:         posted,
			URL:              stringField(item, "webVideoUrl"),
			Likes:            ToInt(item["diggCount"]),
			Comments:         ToInt(item["commentCount"]),
			Shares:           ToInt(item["shareCount"]),
			Plays:            ToInt(item["playCount"]),
			Saves:            ToInt(item["collectCount"]),
			AudioName:        stringField(item, "musicMeta/musicName"),
			// upvotes do not apply to TikTok
		}
		drafts = append(drafts, d)
	}

	// When no record in the batch resolved a web URL, fall back to the
	// export's record id so dedup and downstream joins still have a key.
	if allURLsEmpty(drafts) {
		for i, item := range items {
			drafts[i].URL = stringField(item, "id")
		}
	}
	return drafts
}

func allURLsEmpty(drafts []draft) bool {
	for _, d := range drafts {
		if strings.TrimSpace(d.URL) != "" {
			return false
		}
	}
	return true
}
