package extract

import (
	"encoding/json"
	"io"
	"slices"
	"strings"

	"github.com/agentstation/vodmap/pkg/errors"
)

// Collect walks a decoded JSON value and adds every string containing
// fragment to into. Objects and arrays are descended at any depth; strings
// are matched wherever they appear, including at the top level and as array
// elements. Numbers, booleans, and nulls are ignored.
func Collect(value any, fragment string, into map[string]struct{}) {
	switch v := value.(type) {
	case map[string]any:
		for _, child := range v {
			Collect(child, fragment, into)
		}
	case []any:
		for _, child := range v {
			Collect(child, fragment, into)
		}
	case string:
		if strings.Contains(v, fragment) {
			into[v] = struct{}{}
		}
	}
}

// FromReader decodes one JSON document from r and returns the strings in it
// that contain fragment, sorted.
func FromReader(r io.Reader, fragment string) ([]string, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}

	found := make(map[string]struct{})
	Collect(doc, fragment, found)
	return Sorted(found), nil
}

// Sorted returns the members of a candidate set in lexical order.
func Sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
