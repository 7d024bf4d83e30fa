package normalize

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendsift/trendsift/internal/models"
)

func TestDedupFirstOccurrenceWins(t *testing.T) {
	ref := time.Now().UTC()
	records, err := NormalizeBatchAt(models.PlatformInstagram, "beauty", []models.RawItem{
		{"url": "https://ig/1", "caption": "first", "likesCount": 10},
		{"url": "https://ig/2", "caption": "other"},
		{"url": "https://ig/1", "caption": "second", "likesCount": 9000},
	}, ref)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Caption)
	assert.Equal(t, 10, records[0].Likes)
	assert.Equal(t, "other", records[1].Caption)
}

func TestDedupIdempotence(t *testing.T) {
	ref := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	base := []models.RawItem{
		{"url": "https://ig/1", "caption": "hello", "likesCount": 3, "timestamp": 1700000000},
	}
	doubled := append(append([]models.RawItem{}, base...), base...)

	once, err := NormalizeBatchAt(models.PlatformInstagram, "beauty", base, ref)
	require.NoError(t, err)
	twice, err := NormalizeBatchAt(models.PlatformInstagram, "beauty", doubled, ref)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestDedupCollapsesEmptyURLs(t *testing.T) {
	records, err := NormalizeBatchAt(models.PlatformInstagram, "beauty", []models.RawItem{
		{"caption": "no url a"},
		{"caption": "no url b"},
	}, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "no url a", records[0].Caption)
}

func TestEmptyBatch(t *testing.T) {
	records, err := NormalizeBatch(models.PlatformReddit, "skincare", nil)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = NormalizeBatch(models.PlatformTikTok, "skincare", []models.RawItem{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUnsupportedPlatform(t *testing.T) {
	_, err := NormalizeBatch(models.Platform("myspace"), "x", []models.RawItem{{"url": "a"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNormalization)
	assert.Contains(t, err.Error(), "myspace")
}

func TestNormalizeOne(t *testing.T) {
	rec, err := NormalizeOneAt(models.PlatformInstagram, "beauty", models.RawItem{
		"url": "https://ig/solo", "caption": "hi",
	}, time.Now().UTC())
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "https://ig/solo", rec.URL)

	_, err = NormalizeOne(models.Platform("friendster"), "x", models.RawItem{})
	assert.ErrorIs(t, err, ErrNormalization)
}

// The canonical column order is part of the output contract; the JSON
// key sequence must match it exactly.
func TestCanonicalFieldOrder(t *testing.T) {
	rec, err := NormalizeOneAt(models.PlatformInstagram, "beauty", models.RawItem{
		"url": "https://ig/1", "caption": "hi", "timestamp": 1700000000,
	}, time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, rec)

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	order := []string{
		"platform", "caption", "text", "hashtags", "creator", "creator_fullname",
		"creator_followers", "timestamp", "url", "likes", "comments", "shares",
		"plays", "saves", "upvotes", "engagement_score", "hours_since_post",
		"velocity", "audio_name", "category",
	}

	payload := string(data)
	last := -1
	for _, key := range order {
		idx := strings.Index(payload, `"`+key+`"`)
		require.Greater(t, idx, last, "field %q out of order", key)
		last = idx
	}
}

func TestMixedTypeColumnDegradesPerRecord(t *testing.T) {
	records, err := NormalizeBatchAt(models.PlatformTikTok, "beauty", []models.RawItem{
		{"webVideoUrl": "a", "diggCount": "1,200"},
		{"webVideoUrl": "b", "diggCount": []any{"broken"}},
		{"webVideoUrl": "c", "diggCount": 7.9},
	}, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 1200, records[0].Likes)
	assert.Equal(t, 0, records[1].Likes)
	assert.Equal(t, 7, records[2].Likes)
}
