// Package catalogs holds the persisted endpoint catalog: its entry model,
// the JSON file it lives in, and the merge that appends newly confirmed
// endpoints to it.
//
// Example usage:
//
//	existing, status, err := catalogs.Load("test.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	merged, added := catalogs.Merge(existing, live, catalogs.WithGroup("normal"))
//	if err := catalogs.Save("test.json", merged); err != nil {
//	    log.Fatal(err)
//	}
package catalogs

// Catalog is the ordered list of entries stored in the catalog file.
type Catalog []Entry

// Len returns the number of entries.
func (c Catalog) Len() int {
	return len(c)
}

// BaseURLs returns the set of baseUrl values already in the catalog.
func (c Catalog) BaseURLs() map[string]struct{} {
	urls := make(map[string]struct{}, len(c))
	for _, e := range c {
		urls[e.BaseURL] = struct{}{}
	}
	return urls
}

// Has reports whether baseURL is already catalogued.
func (c Catalog) Has(baseURL string) bool {
	for _, e := range c {
		if e.BaseURL == baseURL {
			return true
		}
	}
	return false
}

// MaxPriority returns the highest priority in the catalog, or 0 when empty.
func (c Catalog) MaxPriority() int {
	highest := 0
	for _, e := range c {
		if e.Priority > highest {
			highest = e.Priority
		}
	}
	return highest
}

// IDs returns the set of entry ids already in the catalog.
func (c Catalog) IDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(c))
	for _, e := range c {
		ids[e.ID] = struct{}{}
	}
	return ids
}

// Clone returns a copy that shares no backing array with c.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return Catalog{}
	}
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}
