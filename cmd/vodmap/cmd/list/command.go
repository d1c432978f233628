// Package list provides the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/vodmap/cmd/application"
	"github.com/agentstation/vodmap/internal/cmd/output"
	"github.com/agentstation/vodmap/pkg/catalogs"
	"github.com/agentstation/vodmap/pkg/logging"
)

// Flags holds the list command flags.
type Flags struct {
	Group   string
	Enabled bool
}

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "management",
		Short:   "Show the entries in the catalog",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  vodmap list                  # All entries, by priority
  vodmap list --group normal   # Only one group
  vodmap list --enabled -o wide`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())

			cat, status, err := app.Catalog()
			if err != nil {
				return err
			}
			switch status {
			case catalogs.Missing:
				logger.Warn().Str("path", app.CatalogPath()).Msg("Catalog file does not exist")
			case catalogs.Corrupt:
				logger.Warn().Str("path", app.CatalogPath()).Msg("Catalog file is not a valid catalog")
			}

			entries := flags.filter(cat)
			return output.FormatCatalog(cmd.OutOrStdout(), entries, output.Format(app.OutputFormat()))
		},
	}

	cmd.Flags().StringVar(&flags.Group, "group", "", "only show entries in this group")
	cmd.Flags().BoolVar(&flags.Enabled, "enabled", false, "only show enabled entries")

	return cmd
}

// filter returns the entries matching the flags, in catalog order.
func (f *Flags) filter(cat catalogs.Catalog) []catalogs.Entry {
	entries := make([]catalogs.Entry, 0, len(cat))
	for _, e := range cat {
		if f.Group != "" && e.Group != f.Group {
			continue
		}
		if f.Enabled && !e.Enabled {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
