package output

import (
	"io"
	"strconv"

	"github.com/agentstation/vodmap/pkg/catalogs"
)

// CatalogToTableData converts catalog entries to table rows. The wide form
// adds the group and enabled columns.
func CatalogToTableData(entries []catalogs.Entry, wide bool) Data {
	headers := []string{"Priority", "ID", "Name", "Base URL"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "Group", "Enabled")
		align = append(align, AlignLeft, AlignCenter)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{strconv.Itoa(e.Priority), e.ID, e.Name, e.BaseURL}
		if wide {
			row = append(row, e.Group, strconv.FormatBool(e.Enabled))
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// FormatCatalog writes catalog entries in the given format. JSON output
// matches the catalog file layout.
func FormatCatalog(w io.Writer, entries []catalogs.Entry, format Format) error {
	switch format {
	case FormatJSON:
		return catalogs.Encode(w, entries)
	case FormatYAML:
		return NewFormatter(format).Format(w, entries)
	default:
		return NewFormatter(format).Format(w, CatalogToTableData(entries, format == FormatWide))
	}
}
