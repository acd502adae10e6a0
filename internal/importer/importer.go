package importer

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"type-layout-importer/internal/common"
	"type-layout-importer/internal/config"
	"type-layout-importer/internal/diagnostic"
	"type-layout-importer/internal/plan"
	"type-layout-importer/internal/report"
	"type-layout-importer/internal/synth"
)

// ErrStrict is wrapped by the error Import returns when strict mode is on
// and the document has size mismatches.
var ErrStrict = errors.New("layout size mismatches in strict mode")

// Options control an Importer.
type Options struct {
	// Filter selects type names; nil keeps every type.
	Filter *config.Filter
	// Strict turns size mismatches into an error.
	Strict bool
	// Workers bounds ImportAll; 0 means GOMAXPROCS.
	Workers int
}

// Importer runs the import pipeline.
type Importer struct {
	opts Options
}

// New creates an Importer.
func New(opts Options) *Importer {
	return &Importer{opts: opts}
}

// Document is the outcome of importing one Source.
type Document struct {
	Source string
	// Records are the parsed records that passed the filter, in report order.
	Records []report.TypeRecord
	// Results holds one synthesis result per record.
	Results []synth.Result
	// Skipped counts records dropped by the filter.
	Skipped     int
	Diagnostics diagnostic.Diagnostics
}

// Layouts returns the synthesized layouts in record order.
func (d *Document) Layouts() []synth.CompositeLayout {
	layouts := make([]synth.CompositeLayout, len(d.Results))
	for i, res := range d.Results {
		layouts[i] = res.Layout
	}

	return layouts
}

// Mismatches returns every size mismatch of the document.
func (d *Document) Mismatches() []*synth.LayoutSizeMismatch {
	var all []*synth.LayoutSizeMismatch
	for _, res := range d.Results {
		all = append(all, res.Mismatches...)
	}

	return all
}

// Plan returns the materialization plan of the document's layouts.
func (d *Document) Plan() *plan.Plan {
	return plan.Build(d.Layouts())
}

// Import parses and synthesizes one document. Parsing is all-or-nothing:
// on a grammar error the returned Document holds no records, only the
// error diagnostic. In strict mode a document with mismatches is returned
// together with an error wrapping ErrStrict and every mismatch.
func (im *Importer) Import(ctx context.Context, src Source) (*Document, error) {
	log := Logger().With(zap.String("source", src.Name))
	doc := &Document{Source: src.Name}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("importing")

	r, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", src.Name, err)
	}
	defer r.Close()

	records, err := report.Parse(r)
	if err != nil {
		var gErr *report.GrammarError
		if errors.As(err, &gErr) {
			log.Error("grammar error",
				zap.Int("line", gErr.Line),
				zap.Int("column", gErr.Column),
				zap.Strings("expected", gErr.Expected))
			doc.Diagnostics.AddErrorWithSuggestions(diagnostic.CodeGrammarError, gErr.Error(), "", "", suggest(gErr))

			return doc, fmt.Errorf("parsing %s: %w", src.Name, err)
		}

		return nil, fmt.Errorf("reading %s: %w", src.Name, err)
	}

	for _, rec := range records {
		if !im.opts.Filter.Match(rec.Name) {
			doc.Skipped++
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res := synth.Synthesize(rec)
		for _, m := range res.Mismatches {
			log.Warn("layout size mismatch",
				zap.String("type", m.TypeName),
				zap.String("variant", m.Variant),
				zap.Uint64("expected", m.Expected),
				zap.Uint64("actual", m.Actual))
		}

		doc.Records = append(doc.Records, rec)
		doc.Results = append(doc.Results, res)
		doc.Diagnostics.Merge(res.Diagnostics)
	}

	log.Debug("imported",
		zap.Int("types", len(doc.Records)),
		zap.Int("skipped", doc.Skipped),
		zap.Int("warnings", len(doc.Diagnostics.Warnings)))

	if mismatches := doc.Mismatches(); im.opts.Strict && !common.IsEmpty(mismatches) {
		errs := []error{ErrStrict}
		for _, m := range mismatches {
			errs = append(errs, m)
		}

		return doc, fmt.Errorf("%s: %w", src.Name, errors.Join(errs...))
	}

	return doc, nil
}

// ImportAll imports every source, at most Workers at a time. The documents
// keep the order of sources; a failing document does not stop the others.
// The returned error joins every per-document error.
func (im *Importer) ImportAll(ctx context.Context, sources []Source) ([]*Document, error) {
	workers := im.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	docs := make([]*Document, len(sources))
	errs := make([]error, len(sources))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, src := range sources {
		g.Go(func() error {
			docs[i], errs[i] = im.Import(ctx, src)
			return nil
		})
	}

	_ = g.Wait()

	return docs, errors.Join(errs...)
}
