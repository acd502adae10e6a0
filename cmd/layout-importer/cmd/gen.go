package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"type-layout-importer/internal/config"
	"type-layout-importer/internal/gen"
	"type-layout-importer/internal/importer"
)

func newGenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gen FILE...",
		Short: "Generate Go layouts from reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			return generate(cmd.Context(), cmd.OutOrStdout(), opts.log, cfg, args)
		},
	}
}

// generate imports the reports and writes one Go file per report. Reports
// that fail to import are skipped; their errors are returned joined.
func generate(ctx context.Context, out io.Writer, log *zap.Logger, cfg *config.File, paths []string) error {
	if err := checkFileNames(paths); err != nil {
		return err
	}

	im, err := newImporter(cfg)
	if err != nil {
		return err
	}

	docs, importErr := im.ImportAll(ctx, importer.OpenFiles(paths))

	generator := gen.NewGenerator(gen.GeneratorConfig{
		PackageName:      cfg.Package,
		OutputDir:        cfg.Output,
		GenerateComments: cfg.Comments,
	})

	var files []gen.GeneratedFile

	errs := []error{importErr}

	for _, doc := range docs {
		// Strict failures still produce a document; they are not generated.
		if doc == nil || doc.Diagnostics.HasErrors() || (cfg.Strict && len(doc.Mismatches()) > 0) {
			continue
		}

		file, err := generator.Generate(doc.Source, doc.Plan())
		if err != nil {
			errs = append(errs, fmt.Errorf("generating %s: %w", doc.Source, err))
			continue
		}

		files = append(files, *file)
	}

	if err := gen.WriteFiles(files, cfg.Output); err != nil {
		return err
	}

	for _, f := range files {
		path := filepath.Join(cfg.Output, f.Filename)
		log.Debug("wrote", zap.String("path", path))
		fmt.Fprintf(out, "wrote %s\n", path)
	}

	return errors.Join(errs...)
}

// checkFileNames rejects reports that would overwrite each other's output.
func checkFileNames(paths []string) error {
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		name := gen.FileName(p)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s both generate %s", prev, p, name)
		}

		seen[name] = p
	}

	return nil
}
