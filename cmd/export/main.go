// Command export runs one API search against the canned repository and writes
// the result to a CSV or XLSX file.
// Usage: go run ./cmd/export --version 1 --format xlsx -o apis.xlsx
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"apicatalog/internal/config"
	"apicatalog/internal/domain"
	"apicatalog/internal/export"
	"apicatalog/internal/logging"
	"apicatalog/internal/repository/fixture"
	"apicatalog/internal/service"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type exportOptions struct {
	input  service.SearchApisInput
	state  string
	vis    string
	format string
	output string
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export APIs matching a search to CSV or XLSX",
		Long: `Export runs a single search against the canned API repository and writes
the matching APIs to a file.

Examples:
  # All public APIs as CSV
  export --visibility public

  # Version 1 APIs as a spreadsheet
  export --version 1 --format xlsx -o apis.xlsx`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			log := logging.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
			return runExport(cmd.Context(), log, cfg.Export, &opts, out)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&opts.input.IDs, "ids", nil, "API ids")
	f.StringSliceVar(&opts.input.Groups, "groups", nil, "group ids")
	f.StringVar(&opts.input.Name, "name", "", "API name")
	f.StringVar(&opts.input.Version, "version", "", "API version")
	f.StringVar(&opts.input.View, "view", "", "view tag")
	f.StringVar(&opts.input.Label, "label", "", "label")
	f.StringVar(&opts.state, "state", "", "lifecycle state (started, stopped)")
	f.StringVar(&opts.vis, "visibility", "", "visibility (public, private)")
	f.BoolVar(&opts.input.ExcludeDefinition, "exclude-definition", false, "search without the definition field")
	f.BoolVar(&opts.input.ExcludePicture, "exclude-picture", false, "search without the picture field")
	f.StringVarP(&opts.format, "format", "f", "csv", "output format (csv, xlsx)")
	f.StringVarP(&opts.output, "output", "o", "", "output path (default: <sheet>_<date>.<format>)")

	return cmd
}

func runExport(ctx context.Context, log zerolog.Logger, cfg config.ExportConfig, opts *exportOptions, out io.Writer) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	repo, err := fixture.NewServingApiRepository()
	if err != nil {
		return fmt.Errorf("preparing api repository: %w", err)
	}
	svc := service.NewApiService(repo, log)

	input := opts.input
	input.State = domain.LifecycleState(strings.ToLower(opts.state))
	input.Visibility = domain.Visibility(strings.ToLower(opts.vis))

	result, err := svc.Search(ctx, &input)
	if err != nil {
		return fmt.Errorf("searching apis: %w", err)
	}
	apis := result.Apis
	if len(apis) > cfg.MaxRows {
		log.Warn().Int("found", len(apis)).Int("max_rows", cfg.MaxRows).Msg("truncating export")
		apis = apis[:cfg.MaxRows]
	}

	path := opts.output
	if path == "" {
		path = export.BuildFilename(cfg.SheetName, format, time.Now())
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.Write(file, format, cfg.SheetName, apis); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("rows", len(apis)).Str("format", string(format)).Msg("export written")
	fmt.Fprintf(out, "%d APIs written to %s\n", len(apis), path)
	return nil
}
