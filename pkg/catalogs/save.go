package catalogs

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/agentstation/vodmap/pkg/constants"
	"github.com/agentstation/vodmap/pkg/errors"
)

// Encode writes the catalog as an indented JSON array. Non-ASCII and HTML
// characters are written literally.
func Encode(w io.Writer, cat Catalog) error {
	if cat == nil {
		cat = Catalog{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.CatalogIndent)
	return enc.Encode(cat)
}

// Save replaces the file at path with the encoded catalog. The data is
// written to a temporary file in the same directory and renamed over the
// target, so readers see either the old file or the new one.
func Save(path string, cat Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tempPath := tempFile.Name()
	defer func() { _ = os.Remove(tempPath) }()

	if err := Encode(tempFile, cat); err != nil {
		_ = tempFile.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := tempFile.Close(); err != nil {
		return errors.WrapIO("close", tempPath, err)
	}
	if err := os.Chmod(tempPath, constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
