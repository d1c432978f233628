package catalogs

import (
	"net/url"
	"strings"
	"unicode"
)

// Identity derives an entry id and display name from an endpoint URL.
//
// The id is the URL's host (with port, if any) with each run of
// non-alphanumeric characters replaced by a single underscore; the name is
// the id with underscores shown as spaces. A URL without a host, such as
// one missing its scheme, is normalized whole so it still gets a usable id.
//
//	http://example.com/api.php/provide/vod -> "example_com", "example com"
//	example.org/api.php/provide/vod        -> "example_org_api_php_provide_vod"
func Identity(rawURL string) (id, name string) {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}

	id = normalize(host)
	name = strings.ReplaceAll(id, "_", " ")
	return id, name
}

// normalize collapses separators to single underscores and trims them from
// both ends.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
