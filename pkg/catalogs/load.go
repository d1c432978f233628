package catalogs

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"

	"github.com/agentstation/vodmap/pkg/errors"
)

// LoadStatus tells how the catalog file was found.
type LoadStatus int

const (
	// Loaded means the file was read and parsed.
	Loaded LoadStatus = iota
	// Missing means there was no file at the path.
	Missing
	// Corrupt means the file exists but is not a JSON array of objects.
	Corrupt
)

// String returns the string representation of the status.
func (s LoadStatus) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Missing:
		return "missing"
	case Corrupt:
		return "corrupt"
	}
	return "unknown"
}

// Load reads the catalog file at path.
//
// A missing or corrupt file yields an empty catalog and a nil error; the
// status tells the two apart. Any other read failure is returned as an
// IOError along with an empty catalog.
func Load(path string) (Catalog, LoadStatus, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator supplied
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Catalog{}, Missing, nil
		}
		return Catalog{}, Corrupt, errors.WrapIO("read", path, err)
	}

	cat, err := Decode(data)
	if err != nil {
		return Catalog{}, Corrupt, nil
	}
	return cat, Loaded, nil
}

// Decode parses a catalog document. The document must be a JSON array of
// objects; null is accepted as an empty catalog.
func Decode(data []byte) (Catalog, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return Catalog{}, nil
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.NewParseError("json", "", "catalog must be a JSON array", nil)
	}

	var cat Catalog
	if err := json.Unmarshal(trimmed, &cat); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	if cat == nil {
		cat = Catalog{}
	}
	return cat, nil
}
