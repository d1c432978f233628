// Package discover provides the discover command.
package discover

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/vodmap/cmd/application"
	"github.com/agentstation/vodmap/internal/cmd/output"
	rundiscover "github.com/agentstation/vodmap/internal/discover"
	"github.com/agentstation/vodmap/pkg/catalogs"
	"github.com/agentstation/vodmap/pkg/pacing"
)

// Flags holds the discover command flags.
type Flags struct {
	Catalog  string
	Query    string
	PerPage  int
	MaxPages int
	Group    string
	DryRun   bool
	NoDelay  bool
	Timeout  time.Duration
}

// NewCommand creates the discover command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "discover",
		GroupID: "core",
		Short:   "Find new live VOD endpoints and add them to the catalog",
		Long: `Discover searches GitHub code search for JSON files mentioning
api.php/provide/vod, extracts every endpoint address they contain, probes the
ones not yet in the catalog, and appends the live ones.

Set GH_TOKEN (or github_token in the config file) to search with a token.
Without one the search runs anonymously and hits rate limits sooner.`,
		Example: `  vodmap discover                        # Update test.json
  vodmap discover --catalog sites.json   # Update another catalog
  vodmap discover --max-pages 1 --dry-run  # Quick look without writing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.Discover(cmd.Context(), flags.options(cmd)...)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), app, result)
		},
	}

	cmd.Flags().StringVar(&flags.Catalog, "catalog", "", "catalog file to update (default from config, test.json)")
	cmd.Flags().StringVar(&flags.Query, "query", "", "code search query")
	cmd.Flags().IntVar(&flags.PerPage, "per-page", 0, "search results per page (1-100)")
	cmd.Flags().IntVar(&flags.MaxPages, "max-pages", 0, "stop after this many search pages (0 for all)")
	cmd.Flags().StringVar(&flags.Group, "group", "", "group for new entries")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "show what would be added without writing")
	cmd.Flags().BoolVar(&flags.NoDelay, "no-delay", false, "skip the pauses between remote calls")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "abort the run after this long (0 for no limit)")

	return cmd
}

// options converts the flags that were set into discovery options.
func (f *Flags) options(cmd *cobra.Command) []rundiscover.Option {
	var opts []rundiscover.Option
	changed := cmd.Flags().Changed

	if changed("catalog") {
		opts = append(opts, rundiscover.WithCatalogPath(f.Catalog))
	}
	if changed("query") {
		opts = append(opts, rundiscover.WithQuery(f.Query))
	}
	if changed("per-page") {
		opts = append(opts, rundiscover.WithPageSize(f.PerPage))
	}
	if changed("max-pages") {
		opts = append(opts, rundiscover.WithMaxPages(f.MaxPages))
	}
	if changed("group") {
		opts = append(opts, rundiscover.WithGroup(f.Group))
	}
	if f.DryRun {
		opts = append(opts, rundiscover.WithDryRun(true))
	}
	if f.NoDelay {
		opts = append(opts, rundiscover.WithPacing(pacing.None()))
	}
	if f.Timeout > 0 {
		opts = append(opts, rundiscover.WithTimeout(f.Timeout))
	}
	return opts
}

// report is the serializable form of a discovery result.
type report struct {
	RunID        string           `json:"run_id"`
	CatalogPath  string           `json:"catalog_path"`
	CatalogState string           `json:"catalog_state"`
	DryRun       bool             `json:"dry_run"`
	FilesScanned int              `json:"files_scanned"`
	FilesFailed  int              `json:"files_failed"`
	Candidates   int              `json:"candidates"`
	Unseen       int              `json:"unseen"`
	Live         int              `json:"live"`
	Added        []catalogs.Entry `json:"added"`
	Duration     string           `json:"duration"`
	Summary      string           `json:"summary"`
}

// printResult writes the run outcome. Table output lists the added entries
// followed by the summary line; json and yaml write the whole report.
func printResult(w io.Writer, app application.Application, result *rundiscover.Result) error {
	format := output.Format(app.OutputFormat())

	switch format {
	case output.FormatJSON, output.FormatYAML:
		added := result.Added
		if added == nil {
			added = []catalogs.Entry{}
		}
		return output.NewFormatter(format).Format(w, report{
			RunID:        result.RunID,
			CatalogPath:  result.CatalogPath,
			CatalogState: result.LoadStatus.String(),
			DryRun:       result.DryRun,
			FilesScanned: result.FilesScanned,
			FilesFailed:  result.FilesFailed,
			Candidates:   result.Candidates,
			Unseen:       result.Unseen,
			Live:         result.Live,
			Added:        added,
			Duration:     result.Duration().Round(time.Millisecond).String(),
			Summary:      result.Summary(),
		})
	default:
		if result.HasChanges() {
			if err := output.FormatCatalog(w, result.Added, format); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w, result.Summary())
		return err
	}
}
