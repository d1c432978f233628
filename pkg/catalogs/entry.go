package catalogs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Entry is one confirmed endpoint in the catalog file.
//
// Fields the catalog does not know about are kept in Extra so that entries
// written by other tools survive a load/save cycle. Known fields are decoded
// leniently: a value of the wrong type reads as the zero value, and any
// value whose text differs from how Entry would write it (3.0 for 3, null
// for "") is written back as it was found unless the field is changed.
type Entry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	BaseURL  string `json:"baseUrl"`
	Group    string `json:"group"`
	Enabled  bool   `json:"enabled"`
	Priority int    `json:"priority"`

	Extra map[string]json.RawMessage `json:"-"`

	literals map[string]literal
}

// literal is the file text of a known field together with the value it
// decoded to.
type literal struct {
	raw   json.RawMessage
	value any
}

// entryFields lists the keys owned by Entry, in file order.
var entryFields = []string{"id", "name", "baseUrl", "group", "enabled", "priority"}

// field returns the current value of a known key.
func (e *Entry) field(key string) any {
	switch key {
	case "id":
		return e.ID
	case "name":
		return e.Name
	case "baseUrl":
		return e.BaseURL
	case "group":
		return e.Group
	case "enabled":
		return e.Enabled
	case "priority":
		return e.Priority
	}
	return nil
}

// setField decodes raw into the known key. A value of the wrong type leaves
// the field at its zero value.
func (e *Entry) setField(key string, raw json.RawMessage) {
	switch key {
	case "id":
		_ = json.Unmarshal(raw, &e.ID)
	case "name":
		_ = json.Unmarshal(raw, &e.Name)
	case "baseUrl":
		_ = json.Unmarshal(raw, &e.BaseURL)
	case "group":
		_ = json.Unmarshal(raw, &e.Group)
	case "enabled":
		_ = json.Unmarshal(raw, &e.Enabled)
	case "priority":
		e.Priority = decodePriority(raw)
	}
}

// decodePriority reads a JSON number as an int. Fractions are floored;
// anything that is not a number in int range reads as 0.
func decodePriority(raw json.RawMessage) int {
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
		return int(i)
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
		return 0
	}
	return int(math.Floor(f))
}

// UnmarshalJSON decodes the known keys and keeps the rest in Extra. Only a
// document that is not a JSON object is an error.
func (e *Entry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("catalog entry must be a JSON object, got %.20s", trimmed)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	var entry Entry
	for _, key := range entryFields {
		value, ok := raw[key]
		if !ok {
			continue
		}
		delete(raw, key)

		compact, err := compactJSON(value)
		if err != nil {
			return err
		}
		entry.setField(key, compact)

		canonical, err := encodeNoEscape(entry.field(key))
		if err != nil {
			return err
		}
		if !bytes.Equal(compact, canonical) {
			if entry.literals == nil {
				entry.literals = make(map[string]literal)
			}
			entry.literals[key] = literal{raw: compact, value: entry.field(key)}
		}
	}

	if len(raw) > 0 {
		entry.Extra = make(map[string]json.RawMessage, len(raw))
		for key, value := range raw {
			compact, err := compactJSON(value)
			if err != nil {
				return err
			}
			entry.Extra[key] = compact
		}
	}

	*e = entry
	return nil
}

// MarshalJSON writes the known keys in a fixed order followed by any extra
// keys sorted by name. HTML characters are not escaped.
func (e Entry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range entryFields {
		value, err := e.encodeField(key)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, key, value); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(e.Extra))
	for key := range e.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		buf.WriteByte(',')
		if err := writeMember(&buf, key, e.Extra[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeField returns the file text for a known key, reusing the text it
// was loaded from while the value is unchanged.
func (e *Entry) encodeField(key string) ([]byte, error) {
	current := e.field(key)
	if lit, ok := e.literals[key]; ok && lit.value == current {
		return lit.raw, nil
	}
	return encodeNoEscape(current)
}

func writeMember(buf *bytes.Buffer, key string, value []byte) error {
	name, err := encodeNoEscape(key)
	if err != nil {
		return err
	}
	buf.Write(name)
	buf.WriteByte(':')
	buf.Write(value)
	return nil
}

func compactJSON(value json.RawMessage) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeNoEscape marshals v without HTML escaping and without the trailing
// newline json.Encoder adds.
func encodeNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
