// Package probe provides the probe command.
package probe

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/vodmap/cmd/application"
	"github.com/agentstation/vodmap/internal/cmd/output"
	liveness "github.com/agentstation/vodmap/internal/probe"
	"github.com/agentstation/vodmap/pkg/errors"
	"github.com/agentstation/vodmap/pkg/logging"
	"github.com/agentstation/vodmap/pkg/pacing"
)

// Row is the probe result for one endpoint.
type Row struct {
	URL     string `json:"url" yaml:"url"`
	Outcome string `json:"outcome" yaml:"outcome"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// NewCommand creates the probe command.
func NewCommand(app application.Application) *cobra.Command {
	var failOnDead bool

	cmd := &cobra.Command{
		Use:     "probe <base-url>...",
		GroupID: "core",
		Short:   "Check whether VOD endpoints are live",
		Long: `Probe requests <base-url>/?ac=list for every argument and reports
whether the endpoint answered 200. Redirects are not followed.`,
		Example: `  vodmap probe http://example.com/api.php/provide/vod
  vodmap probe --fail http://a.example/api.php/provide/vod http://b.example/api.php/provide/vod`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := probeAll(cmd, app, args)
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			if err := output.NewFormatter(format).Format(cmd.OutOrStdout(), tableOrRows(format, rows)); err != nil {
				return err
			}

			if failOnDead {
				for _, r := range rows {
					if r.Outcome != liveness.Live.String() {
						return &errors.ValidationError{
							Field:   "url",
							Value:   r.URL,
							Message: "endpoint is not live",
						}
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failOnDead, "fail", false, "exit non-zero if any endpoint is not live")

	return cmd
}

// probeAll checks each URL in order, pausing between probes.
func probeAll(cmd *cobra.Command, app application.Application, urls []string) ([]Row, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	checker := app.Checker()
	delay := app.Pacing().AfterProbe

	rows := make([]Row, 0, len(urls))
	for i, u := range urls {
		if i > 0 {
			if err := pacing.Wait(ctx, delay); err != nil {
				return nil, err
			}
		}

		outcome, err := checker.Check(ctx, u)
		if ctx.Err() != nil {
			return nil, errors.WrapCanceled("probe", ctx.Err())
		}

		row := Row{URL: u, Outcome: outcome.String()}
		if err != nil {
			row.Detail = err.Error()
		}
		logger.Debug().
			Str("url", liveness.URL(u)).
			Stringer("outcome", outcome).
			Msg("Probed endpoint")
		rows = append(rows, row)
	}
	return rows, nil
}

// tableOrRows returns table data for table output and the rows otherwise.
func tableOrRows(format output.Format, rows []Row) any {
	switch format {
	case output.FormatJSON, output.FormatYAML:
		return rows
	}

	data := output.Data{
		Headers:         []string{"URL", "Outcome"},
		ColumnAlignment: []output.Align{output.AlignLeft, output.AlignLeft},
	}
	if format == output.FormatWide {
		data.Headers = append(data.Headers, "Detail")
		data.ColumnAlignment = append(data.ColumnAlignment, output.AlignLeft)
	}
	for _, r := range rows {
		row := []string{r.URL, r.Outcome}
		if format == output.FormatWide {
			row = append(row, r.Detail)
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}
