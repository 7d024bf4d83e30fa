package normalize

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/trendsift/trendsift/internal/models"
)

// ErrNormalization is the single failure kind the core surfaces.
// Per-field coercion problems degrade to defaults and never reach it;
// only structural problems (unknown platform, a collaborator panic) do.
var ErrNormalization = errors.New("normalization failed")

// draft is an adapter-resolved record before finalization: scalar
// counts stay optional so absence remains distinct from zero until the
// batch step collapses them.
type draft struct {
	Caption          string
	Text             string
	Hashtags         string
	Creator          string
	CreatorFullname  string
	CreatorFollowers OptInt
	PostedAt         OptTime
	URL              string
	Likes            OptInt
	Comments         OptInt
	Shares           OptInt
	Plays            OptInt
	Saves            OptInt
	Upvotes          OptInt
	AudioName        string
}

// adapterFunc maps one platform's raw export rows to drafts. It
// receives the whole batch because some fallbacks (the TikTok URL->id
// rule) are decided batch-wide.
type adapterFunc func(items []models.RawItem) []draft

var adapters = map[models.Platform]adapterFunc{
	models.PlatformInstagram: normalizeInstagram,
	models.PlatformTikTok:    normalizeTikTok,
	models.PlatformReddit:    normalizeReddit,
}

// NormalizeBatch normalizes a scraper export against the current wall
// clock. See NormalizeBatchAt for the injectable-reference form.
func NormalizeBatch(platform models.Platform, category string, items []models.RawItem) ([]models.CanonicalRecord, error) {
	return NormalizeBatchAt(platform, category, items, time.Now().UTC())
}

// NormalizeBatchAt maps a batch of raw records for one platform to
// finalized canonical records: adapter field resolution, derived
// metrics against ref, URL dedup (first occurrence wins), and
// missing-value collapse. An empty batch yields an empty slice.
func NormalizeBatchAt(platform models.Platform, category string, items []models.RawItem, ref time.Time) (records []models.CanonicalRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\n%s", ErrNormalization, r, debug.Stack())
		}
	}()

	adapt, ok := adapters[platform]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported platform %q", ErrNormalization, platform)
	}
	if len(items) == 0 {
		return []models.CanonicalRecord{}, nil
	}
	return finalize(platform, category, adapt(items), ref), nil
}

// NormalizeOne is the single-item convenience form, returning nil when
// normalization produced no record.
func NormalizeOne(platform models.Platform, category string, item models.RawItem) (*models.CanonicalRecord, error) {
	return NormalizeOneAt(platform, category, item, time.Now().UTC())
}

// NormalizeOneAt normalizes exactly one raw record.
func NormalizeOneAt(platform models.Platform, category string, item models.RawItem, ref time.Time) (*models.CanonicalRecord, error) {
	records, err := NormalizeBatchAt(platform, category, []models.RawItem{item}, ref)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}
