package catalogs

import (
	"slices"
	"strconv"
)

// Merge appends newly confirmed endpoints to a copy of existing.
//
// Candidates are sorted first so the output does not depend on discovery
// order. Each one gets a synthesized id and name from its host and the next
// priority after the highest already in use. Candidates already present as a
// baseUrl, or repeated in the input, are skipped. Existing entries are left
// untouched and keep their place ahead of the new ones.
func Merge(existing Catalog, candidates []string, opts ...MergeOption) (Catalog, []Entry) {
	cfg := ParseMergeOptions(opts...)

	sorted := slices.Clone(candidates)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	merged := existing.Clone()
	seen := existing.BaseURLs()
	ids := existing.IDs()
	priority := existing.MaxPriority() + 1

	var added []Entry
	for _, baseURL := range sorted {
		if _, ok := seen[baseURL]; ok {
			continue
		}

		id, name := uniqueIdentity(baseURL, ids)
		entry := Entry{
			ID:       id,
			Name:     name,
			BaseURL:  baseURL,
			Group:    cfg.Group,
			Enabled:  cfg.Enabled,
			Priority: priority,
		}
		priority++

		seen[baseURL] = struct{}{}
		ids[id] = struct{}{}
		merged = append(merged, entry)
		added = append(added, entry)
	}

	return merged, added
}

// uniqueIdentity derives the id and name for baseURL, adding a numeric
// suffix when another entry already owns the id.
func uniqueIdentity(baseURL string, taken map[string]struct{}) (string, string) {
	id, name := Identity(baseURL)
	if _, clash := taken[id]; !clash {
		return id, name
	}
	for n := 2; ; n++ {
		suffix := strconv.Itoa(n)
		candidate := id + "_" + suffix
		if _, clash := taken[candidate]; !clash {
			return candidate, name + " " + suffix
		}
	}
}
