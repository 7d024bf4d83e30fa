// Package normalize turns heterogeneous social-media scraper exports
// into canonical records with derived engagement metrics. Adapters
// resolve platform-specific field names, the metric engine computes
// engagement_score / hours_since_post / velocity, and finalization
// dedups by URL and collapses missing values to concrete defaults.
package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// OptInt is an integer that may be absent. Absence is distinct from
// zero until finalization collapses it.
type OptInt struct {
	Value   int
	Present bool
}

// SomeInt wraps a present integer.
func SomeInt(v int) OptInt {
	return OptInt{Value: v, Present: true}
}

// OrZero resolves an absent value to 0.
func (o OptInt) OrZero() int {
	if !o.Present {
		return 0
	}
	return o.Value
}

// OptTime is an instant that may be absent.
type OptTime struct {
	Value   time.Time
	Present bool
}

// intConvertLimit guards the float-to-int conversion; values beyond it
// cannot be represented and coerce to absent.
const intConvertLimit = float64(math.MaxInt64/2)

// ToInt coerces a loosely-typed scalar to an integer. Numeric strings
// may carry thousands separators ("1,234"); fractional values truncate
// toward zero ("12.9" -> 12). Anything unparseable is absent, never an
// error.
func ToInt(v any) OptInt {
	f, ok := toFloat(v, true)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return OptInt{}
	}
	if f >= intConvertLimit || f <= -intConvertLimit {
		return OptInt{}
	}
	return SomeInt(int(f))
}

// ParseTimestamp coerces a scalar to a UTC instant. Numeric values are
// treated as epoch milliseconds above 1e12 and epoch seconds above 1e9;
// everything else goes through the string layouts. The numeric attempt
// runs first so epoch strings are never mistaken for dates, while ISO
// strings fail the float parse and fall through.
func ParseTimestamp(v any) OptTime {
	switch t := v.(type) {
	case nil:
		return OptTime{}
	case time.Time:
		return OptTime{Value: t.UTC(), Present: true}
	}

	if f, ok := toFloat(v, false); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		if f > 1e12 {
			return OptTime{Value: time.UnixMilli(int64(f)).UTC(), Present: true}
		}
		if f > 1e9 {
			return OptTime{Value: time.Unix(int64(f), 0).UTC(), Present: true}
		}
	}

	s := strings.TrimSpace(asString(v))
	if s == "" {
		return OptTime{}
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return OptTime{Value: ts.UTC(), Present: true}
		}
	}
	return OptTime{}
}

// timeLayouts covers the formats seen in scraper exports: RFC3339
// variants with and without fractional seconds or offsets, space
// separated datetimes, and bare dates.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
}

// toFloat interprets a scalar as a float. stripCommas enables the
// thousands-separator handling used by ToInt; timestamp parsing keeps
// commas so "1,700" is not read as an epoch.
func toFloat(v any, stripCommas bool) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint64:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(t)
		if stripCommas {
			s = strings.ReplaceAll(s, ",", "")
		}
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}
