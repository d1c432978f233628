// Package extract provides the extract command.
package extract

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/vodmap/cmd/application"
	"github.com/agentstation/vodmap/internal/cmd/output"
	walk "github.com/agentstation/vodmap/internal/extract"
	"github.com/agentstation/vodmap/pkg/constants"
	"github.com/agentstation/vodmap/pkg/errors"
)

// NewCommand creates the extract command.
func NewCommand(app application.Application) *cobra.Command {
	var fragment string

	cmd := &cobra.Command{
		Use:     "extract <file|->",
		GroupID: "core",
		Short:   "List the endpoint addresses found in a local JSON file",
		Long: `Extract walks a JSON document the same way discover walks the files
it downloads and prints every string value containing the fragment.
Use - to read standard input.`,
		Example: `  vodmap extract sites.json
  curl -s https://example.com/config.json | vodmap extract -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			urls, err := extractFile(cmd, args[0], fragment)
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), urls)
			}

			data := output.Data{
				Headers:         []string{"URL"},
				ColumnAlignment: []output.Align{output.AlignLeft},
			}
			for _, u := range urls {
				data.Rows = append(data.Rows, []string{u})
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().StringVar(&fragment, "fragment", constants.TargetFragment, "substring a value must contain")

	return cmd
}

// extractFile reads path, or stdin for "-", and collects matching strings.
func extractFile(cmd *cobra.Command, path, fragment string) ([]string, error) {
	if fragment == "" {
		return nil, &errors.ValidationError{
			Field:   "fragment",
			Value:   fragment,
			Message: "fragment must not be empty",
		}
	}

	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.WrapIO("open", path, err)
		}
		defer f.Close()
		r = f
	}

	urls, err := walk.FromReader(r, fragment)
	if err != nil {
		var parseErr *errors.ParseError
		if errors.As(err, &parseErr) && path != "-" {
			parseErr.File = path
		}
		return nil, err
	}
	return urls, nil
}
