package normalize

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/trendsift/trendsift/internal/models"
)

// Field resolution helpers. Adapters declare their fallback chains as
// ordered candidate-field lists and resolve them here, so the
// per-platform schema knowledge stays in data rather than conditionals.

// isMissing reports whether a raw value counts as not-available:
// absent JSON fields decode to nil, CSV-derived exports carry NaN.
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return true
	}
	return false
}

// firstPresent returns the value of the first candidate field that
// exists in the item and is not missing.
func firstPresent(item models.RawItem, fields []string) (any, bool) {
	for _, name := range fields {
		if v, ok := item[name]; ok && !isMissing(v) {
			return v, true
		}
	}
	return nil, false
}

// firstNonBlank walks the candidate fields until one holds a string
// with non-whitespace content, returning the untrimmed original.
func firstNonBlank(item models.RawItem, fields []string) string {
	for _, name := range fields {
		s := stringField(item, name)
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// stringField resolves one field to a string, "" when missing.
func stringField(item models.RawItem, name string) string {
	v, ok := item[name]
	if !ok || isMissing(v) {
		return ""
	}
	return asString(v)
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if math.IsNaN(t) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	}
	return fmt.Sprint(v)
}

// indexedValues collects the values of sparse indexed columns such as
// "hashtags/0" ... "hashtags/29" or "hashtags/0/name", ordered by
// their numeric index. Map iteration is unordered, so the index in the
// key is the only stable ordering.
func indexedValues(item models.RawItem, prefix, suffix string) []string {
	type entry struct {
		index int
		key   string
	}
	entries := make([]entry, 0, 4)
	for key := range item {
		if !strings.HasPrefix(key, prefix) || !strings.HasSuffix(key, suffix) {
			continue
		}
		mid := strings.TrimSuffix(strings.TrimPrefix(key, prefix), suffix)
		mid = strings.TrimSuffix(mid, "/")
		idx, err := strconv.Atoi(mid)
		if err != nil {
			continue
		}
		entries = append(entries, entry{index: idx, key: key})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	values := make([]string, 0, len(entries))
	for _, e := range entries {
		values = append(values, stringField(item, e.key))
	}
	return values
}
