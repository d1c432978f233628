package search

import "strings"

// Item is one file reference from a code search results page.
type Item struct {
	Name       string     `json:"name"`
	Path       string     `json:"path"`
	HTMLURL    string     `json:"html_url"`
	Repository Repository `json:"repository"`
}

// Repository identifies the repository an Item was found in.
type Repository struct {
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
}

// RawURL returns the address of the file's raw content, derived from the
// browse address by replacing the first "/blob/" segment with "/raw/".
// An address without that segment is returned unchanged.
func (i Item) RawURL() string {
	return strings.Replace(i.HTMLURL, "/blob/", "/raw/", 1)
}

// Response is a code search results page.
type Response struct {
	TotalCount        int    `json:"total_count"`
	IncompleteResults bool   `json:"incomplete_results"`
	Items             []Item `json:"items"`
}
