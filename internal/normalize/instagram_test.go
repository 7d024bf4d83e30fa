package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendsift/trendsift/internal/models"
)

func TestInstagramMinimalRecord(t *testing.T) {
	items := []models.RawItem{{
		"caption":       "Hi",
		"likesCount":    "1,000",
		"commentsCount": 5,
		"timestamp":     1700000000,
		"url":           "https://ig/1",
	}}

	ref := time.Date(2023, 11, 15, 22, 13, 20, 0, time.UTC)
	records, err := NormalizeBatchAt(models.PlatformInstagram, "beauty", items, ref)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, models.PlatformInstagram, rec.Platform)
	assert.Equal(t, "beauty", rec.Category)
	assert.Equal(t, "Hi", rec.Caption)
	assert.Equal(t, "Hi", rec.Text)
	assert.Equal(t, "https://ig/1", rec.URL)
	assert.Equal(t, 1000, rec.Likes)
	assert.Equal(t, 5, rec.Comments)
	assert.Equal(t, 0, rec.Shares)
	assert.Equal(t, 0, rec.Saves)
	assert.Equal(t, 0, rec.Upvotes)
	assert.Equal(t, 0, rec.Plays)
	assert.Equal(t, "2023-11-14T22:13:20Z", rec.Timestamp)
	assert.InDelta(t, 24.0, rec.HoursSincePost, 1e-9)
}

func TestInstagramURLFallbackChain(t *testing.T) {
	ref := time.Now().UTC()

	records, err := NormalizeBatchAt(models.PlatformInstagram, "beauty", []models.RawItem{
		{"displayUrl": "https://ig/display", "videoUrl": "https://ig/video"},
		{"videoUrl": "https://ig/video-only"},
		{"caption": "no url at all"},
	}, ref)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "https://ig/display", records[0].URL)
	assert.Equal(t, "https://ig/video-only", records[1].URL)
	assert.Equal(t, "", records[2].URL)
}

func TestInstagramPlaysFallbackChain(t *testing.T) {
	ref := time.Now().UTC()

	records, err := NormalizeBatchAt(models.PlatformInstagram, "beauty", []models.RawItem{
		{"url": "a", "videoPlayCount": 100, "igPlayCount": 900},
		{"url": "b", "igPlayCount": "2,500"},
		{"url": "c", "fbPlayCount": 7},
		{"url": "d"},
	}, ref)
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, 100, records[0].Plays)
	assert.Equal(t, 2500, records[1].Plays)
	assert.Equal(t, 7, records[2].Plays)
	assert.Equal(t, 0, records[3].Plays)
}

func TestInstagramHashtagColumns(t *testing.T) {
	records, err := NormalizeBatchAt(models.PlatformInstagram, "beauty", []models.RawItem{{
		"url":         "https://ig/tagged",
		"hashtags/0":  "Skincare",
		"hashtags/1":  "#skincare",
		"hashtags/2":  "Makeup",
		"hashtags/10": "glow",
	}}, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Skincare, Makeup, glow", records[0].Hashtags)
}

func TestInstagramCreatorAndAudio(t *testing.T) {
	records, err := NormalizeBatchAt(models.PlatformInstagram, "beauty", []models.RawItem{{
		"url":                 "https://ig/a",
		"ownerUsername":       "glowup",
		"ownerFullName":       "Glow Up",
		"musicInfo/song_name": "Golden Hour",
	}}, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "glowup", records[0].Creator)
	assert.Equal(t, "Glow Up", records[0].CreatorFullname)
	assert.Equal(t, "Golden Hour", records[0].AudioName)
	// not exposed by this source
	assert.Equal(t, 0, records[0].CreatorFollowers)
}

func TestInstagramBadValueDegradesSingleRecord(t *testing.T) {
	records, err := NormalizeBatchAt(models.PlatformInstagram, "beauty", []models.RawItem{
		{"url": "a", "likesCount": "not a number", "timestamp": "garbage"},
		{"url": "b", "likesCount": 3, "timestamp": 1700000000},
	}, time.Date(2023, 11, 14, 23, 13, 20, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 0, records[0].Likes)
	assert.Equal(t, "", records[0].Timestamp)
	assert.Equal(t, 0.01, records[0].HoursSincePost)

	assert.Equal(t, 3, records[1].Likes)
	assert.Equal(t, "2023-11-14T22:13:20Z", records[1].Timestamp)
	assert.InDelta(t, 1.0, records[1].HoursSincePost, 1e-9)
}
