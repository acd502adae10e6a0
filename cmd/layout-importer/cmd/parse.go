package cmd

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"type-layout-importer/internal/importer"
	"type-layout-importer/internal/report"
)

func newParseCmd(opts *options) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Print the parsed records of reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			// Parsing alone never fails on mismatches.
			cfg.Strict = false

			im, err := newImporter(cfg)
			if err != nil {
				return err
			}

			docs, err := im.ImportAll(cmd.Context(), importer.OpenFiles(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, doc := range docs {
				fmt.Fprintf(out, "# %s\n", doc.Source)

				if dump {
					spew.Fdump(out, doc.Records)
					continue
				}

				for _, rec := range doc.Records {
					printRecord(out, rec)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "dump records with all their fields")

	return cmd
}

func printRecord(out io.Writer, rec report.TypeRecord) {
	kind := "struct"
	if rec.IsSum() {
		kind = fmt.Sprintf("enum, %d variants", len(rec.Variants()))
	}

	fmt.Fprintf(out, "%s: %d bytes, alignment %d (%s)\n", rec.Name, rec.Size, rec.Alignment, kind)

	for _, m := range rec.Members {
		switch m := m.(type) {
		case report.VariantMember:
			fmt.Fprintf(out, "  variant %s: %d bytes\n", m.Name, m.Size)

			for _, item := range m.Members {
				fmt.Fprintf(out, "    %s\n", describeMember(item))
			}
		default:
			fmt.Fprintf(out, "  %s\n", describeMember(m))
		}
	}
}

func describeMember(m report.Member) string {
	switch m := m.(type) {
	case report.FieldMember:
		if m.Alignment != nil {
			return fmt.Sprintf("field %s: %d bytes, alignment %d", m.Name, m.Size, *m.Alignment)
		}

		return fmt.Sprintf("field %s: %d bytes", m.Name, m.Size)
	case report.PaddingMember:
		return fmt.Sprintf("padding: %d bytes", m.Size)
	case report.DiscriminantMember:
		return fmt.Sprintf("discriminant: %d bytes", m.Size)
	case report.VariantMember:
		return fmt.Sprintf("variant %s: %d bytes", m.Name, m.Size)
	default:
		return fmt.Sprintf("%T", m)
	}
}
