package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendsift/trendsift/internal/models"
)

func TestTikTokHashtagAssembly(t *testing.T) {
	records, err := NormalizeBatchAt(models.PlatformTikTok, "beauty", []models.RawItem{{
		"webVideoUrl":     "https://tt/1",
		"hashtags/0/name": "glow",
		"hashtags/1/name": "Glow",
		"hashtags/2/name": "#fyp",
	}}, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "glow, fyp", records[0].Hashtags)
}

func TestTikTokFieldResolution(t *testing.T) {
	ref := time.Date(2023, 11, 15, 22, 13, 20, 0, time.UTC)

	records, err := NormalizeBatchAt(models.PlatformTikTok, "beauty", []models.RawItem{{
		"text":                 "glass skin routine",
		"webVideoUrl":          "https://tt/video",
		"authorMeta/name":      "skinfluencer",
		"authorMeta/nickName":  "Skin Fluencer",
		"authorMeta/fans":      "10,500",
		"createTimeISO":        "2023-11-14T22:13:20Z",
		"diggCount":            100,
		"commentCount":         10,
		"shareCount":           4,
		"playCount":            2000,
		"collectCount":         8,
		"musicMeta/musicName":  "original sound",
	}}, ref)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "glass skin routine", rec.Caption)
	assert.Equal(t, "glass skin routine", rec.Text)
	assert.Equal(t, "skinfluencer", rec.Creator)
	assert.Equal(t, "Skin Fluencer", rec.CreatorFullname)
	assert.Equal(t, 10500, rec.CreatorFollowers)
	assert.Equal(t, "2023-11-14T22:13:20Z", rec.Timestamp)
	assert.Equal(t, 100, rec.Likes)
	assert.Equal(t, 10, rec.Comments)
	assert.Equal(t, 4, rec.Shares)
	assert.Equal(t, 2000, rec.Plays)
	assert.Equal(t, 8, rec.Saves)
	assert.Equal(t, 0, rec.Upvotes)
	assert.Equal(t, "original sound", rec.AudioName)
	// (100 + 2*10 + 3*4 + 2*8 + 0) / 2000
	assert.InDelta(t, 0.074, rec.EngagementScore, 1e-9)
	assert.InDelta(t, 24.0, rec.HoursSincePost, 1e-9)
}

func TestTikTokTimestampPrefersISO(t *testing.T) {
	records, err := NormalizeBatchAt(models.PlatformTikTok, "beauty", []models.RawItem{
		{"webVideoUrl": "a", "createTimeISO": "2023-11-14T22:13:20Z", "createTime": 1500000000},
		{"webVideoUrl": "b", "createTime": 1700000000},
	}, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2023-11-14T22:13:20Z", records[0].Timestamp)
	assert.Equal(t, "2023-11-14T22:13:20Z", records[1].Timestamp)
}

func TestTikTokURLFallsBackToIDWhenBatchHasNone(t *testing.T) {
	// no record resolved a web URL, so ids stand in
	records, err := NormalizeBatchAt(models.PlatformTikTok, "beauty", []models.RawItem{
		{"id": "7311", "text": "one"},
		{"id": 7312, "text": "two"},
	}, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "7311", records[0].URL)
	assert.Equal(t, "7312", records[1].URL)

	// any resolvable web URL in the batch disables the id fallback
	records, err = NormalizeBatchAt(models.PlatformTikTok, "beauty", []models.RawItem{
		{"id": "7311", "text": "one"},
		{"id": "7312", "webVideoUrl": "https://tt/7312", "text": "two"},
	}, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[0].URL)
	assert.Equal(t, "https://tt/7312", records[1].URL)
}
