package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"type-layout-importer/internal/config"
	"type-layout-importer/internal/diagnostic"
	"type-layout-importer/internal/importer"
	"type-layout-importer/internal/watch"
)

// options holds the flags shared by every command.
type options struct {
	configPath string
	verbose    bool
	logFormat  string

	pkg     string
	output  string
	strict  bool
	workers int

	log *zap.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "layout-importer",
		Short: "Import Rust type-size reports as Go layouts",
		Long: "Parses the output of rustc -Zprint-type-size, rebuilds the byte layout of every\n" +
			"reported type and generates Go declarations with the same layout.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(opts.verbose, opts.logFormat)
			if err != nil {
				return err
			}

			opts.log = log
			importer.SetLogger(log.Named("importer"))
			watch.SetLogger(log.Named("watch"))

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")
	flags.StringVar(&opts.logFormat, "log-format", "console", "log encoding: console or json")
	flags.StringVar(&opts.pkg, "package", "", "package name of generated code")
	flags.StringVarP(&opts.output, "output", "o", "", "output directory of generated code")
	flags.BoolVar(&opts.strict, "strict", false, "treat size mismatches as errors")
	flags.IntVar(&opts.workers, "workers", 0, "documents imported in parallel (0 = GOMAXPROCS)")

	root.AddCommand(newParseCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newGenCmd(opts))
	root.AddCommand(newWatchCmd(opts))
	root.AddCommand(newInitCmd(opts))

	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// loadConfig reads the config file and applies the flags the user set.
func (o *options) loadConfig(cmd *cobra.Command) (*config.File, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("package") {
		cfg.Package = o.pkg
	}

	if flags.Changed("output") {
		cfg.Output = o.output
	}

	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}

	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}

	if d := config.Validate(cfg); d.HasErrors() {
		return nil, d.Error()
	}

	return cfg, nil
}

// newImporter builds an Importer from the effective configuration.
func newImporter(cfg *config.File) (*importer.Importer, error) {
	filter, err := cfg.Filter()
	if err != nil {
		return nil, err
	}

	return importer.New(importer.Options{
		Filter:  filter,
		Strict:  cfg.Strict,
		Workers: cfg.Workers,
	}), nil
}

// diagnosticsOf collects the diagnostics of every imported document.
func diagnosticsOf(docs []*importer.Document) diagnostic.Diagnostics {
	var all diagnostic.Diagnostics
	for _, doc := range docs {
		if doc != nil {
			all.Merge(doc.Diagnostics)
		}
	}

	return all
}
