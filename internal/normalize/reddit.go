package normalize

import (
	"strings"

	"github.com/trendsift/trendsift/internal/models"
)

// Reddit exports have no literal hashtags; tags are synthesized from
// post flair and community name instead.
var redditCaptionFields = []string{"title", "displayName", "communityName"}

func normalizeReddit(items []models.RawItem) []draft {
	drafts := make([]draft, 0, len(items))
	for _, item := range items {
		title := stringField(item, "title")
		body := stringField(item, "body")

		text := strings.TrimSpace(strings.TrimSpace(title) + "\n\n" + strings.TrimSpace(body))
		if text == "" {
			text = stringField(item, "description")
		}

		url := stringField(item, "url")
		if strings.TrimSpace(url) == "" {
			url = stringField(item, "link")
		}

		posted := ParseTimestamp(item["createdAt"])
		if !posted.Present {
			posted = ParseTimestamp(item["scrapedAt"])
		}

		// Reddit has no separate like count; likes mirror upvotes.
		upvotes := ToInt(item["upVotes"])

		d := draft{
			Caption:  firstNonBlank(item, redditCaptionFields),
			Text:     text,
			Hashtags: JoinTags(stringField(item, "flair"), stringField(item, "communityName")),
			Creator:  stringField(item, "username"),
			PostedAt: posted,
			URL:      url,
			Likes:    upvotes,
			Comments: ToInt(item["numberOfComments"]),
			Upvotes:  upvotes,
			// shares, plays, saves and audio do not apply to Reddit
		}
		drafts = append(drafts, d)
	}
	return drafts
}
