package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"type-layout-importer/internal/importer"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Cross-check reported sizes against rebuilt layouts",
		Long: "Synthesizes every reported type and prints the diagnostics. Fails on grammar\n" +
			"errors, and on size mismatches with --strict.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			im, err := newImporter(cfg)
			if err != nil {
				return err
			}

			docs, importErr := im.ImportAll(cmd.Context(), importer.OpenFiles(args))

			out := cmd.OutOrStdout()
			for i, doc := range docs {
				if doc == nil {
					fmt.Fprintf(out, "%s: not imported\n", args[i])
					continue
				}

				fmt.Fprintf(out, "%s: %d types, %d mismatches\n",
					doc.Source, len(doc.Records), len(doc.Mismatches()))

				for _, d := range doc.Diagnostics.All() {
					fmt.Fprintf(out, "  %s: %s\n", d.Severity, d)
				}
			}

			all := diagnosticsOf(docs)
			fmt.Fprintf(out, "%d errors, %d warnings, %d notes\n",
				len(all.Errors), len(all.Warnings), len(all.Infos))

			return importErr
		},
	}
}
