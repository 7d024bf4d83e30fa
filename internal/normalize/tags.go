package normalize

import "strings"

// JoinTags merges tag-like values into one comma-space separated
// string. Each value is trimmed and loses a single leading '#';
// duplicates collapse case-insensitively, keeping the first-seen
// casing and order. Blank values are skipped.
func JoinTags(values ...string) string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		v = strings.TrimPrefix(v, "#")
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return strings.Join(out, ", ")
}
