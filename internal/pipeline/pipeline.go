package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nao1215/congestionscan/internal/manic"
	"github.com/nao1215/congestionscan/internal/model"
	"github.com/nao1215/congestionscan/internal/viz"
)

// Querier issues measurement queries for one window of one network pair.
// *manic.Client satisfies this interface.
type Querier interface {
	// Assertions returns the congestion assertions between nearASN and
	// farASN within the window.
	Assertions(ctx context.Context, nearASN, farASN string, w model.Window) (*manic.AsrtResponse, error)
}

// NameResolver provides the registered ASN names shown in the per-pair
// transcript lines. *names.Resolver satisfies this interface.
type NameResolver interface {
	// Resolve returns the registered name for an ASN.
	Resolve(ctx context.Context, asn string) (string, error)
}

// Finder builds congestion reports for network pairs.
//
// The lookback windows are generated once from the anchor time when the
// Finder is created, so every pair in a run queries the same absolute date
// ranges regardless of how long earlier pairs took.
type Finder struct {
	// querier issues the per-window measurement queries.
	querier Querier

	// links derives the per-event visualization links.
	links *viz.Builder

	// names resolves the registered ASN names for the transcript.
	// When nil, the configured display names are used instead.
	names NameResolver

	// windows is the ordered lookback window sequence, oldest first.
	windows []model.Window

	// anchor is the end of the lookback period. Consulted only during
	// construction when the windows are generated.
	anchor time.Time

	// logger reports failures with pair context.
	logger *slog.Logger

	// progress receives human-readable per-pair progress output.
	progress io.Writer

	// printer formats event counts with grouped thousands.
	printer *message.Printer

	// keepGoing narrows failure scope from the whole run to the failing
	// pair: failed pairs are logged and skipped instead of aborting.
	keepGoing bool
}

// Option configures a Finder.
type Option func(*Finder)

// WithAnchor fixes the end of the lookback period.
// Defaults to the wall clock when the Finder is created.
func WithAnchor(anchor time.Time) Option {
	return func(f *Finder) {
		f.anchor = anchor
	}
}

// WithLinkBuilder replaces the visualization link builder.
func WithLinkBuilder(b *viz.Builder) Option {
	return func(f *Finder) {
		f.links = b
	}
}

// WithNameResolver attaches a registered-name resolver for the transcript's
// NETWORK NAME and ASN NAME lines. Without one, the configured display
// names stand in.
func WithNameResolver(r NameResolver) Option {
	return func(f *Finder) {
		f.names = r
	}
}

// WithLogger sets the logger for failure reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Finder) {
		f.logger = logger
	}
}

// WithProgress sets the destination for per-pair progress output.
// Defaults to io.Discard, which keeps tests quiet.
func WithProgress(w io.Writer) Option {
	return func(f *Finder) {
		f.progress = w
	}
}

// WithKeepGoing makes remote failures abort only the current pair instead
// of the whole run. Skipped pairs are logged with their error.
func WithKeepGoing(keepGoing bool) Option {
	return func(f *Finder) {
		f.keepGoing = keepGoing
	}
}

// NewFinder creates a Finder covering months 30-day windows back from the
// anchor time.
func NewFinder(querier Querier, months int, opts ...Option) *Finder {
	f := &Finder{
		querier:  querier,
		links:    viz.NewBuilder(),
		anchor:   time.Now(),
		logger:   slog.Default(),
		progress: io.Discard,
		printer:  message.NewPrinter(language.English),
	}

	for _, opt := range opts {
		opt(f)
	}

	f.windows = model.GenerateWindows(months, f.anchor)
	return f
}

// Windows returns the lookback windows the Finder queries, oldest first.
func (f *Finder) Windows() []model.Window {
	return f.windows
}

// BuildPairSheet queries every lookback window for the (near, far) pair and
// accumulates one row per detected event.
//
// The first failing window fails the whole pair: no partial sheet is
// returned, and nothing is retried. With zero windows the returned sheet is
// empty and no query is issued.
func (f *Finder) BuildPairSheet(ctx context.Context, near, far model.Network) (*model.Sheet, error) {
	sheet := model.NewSheet(far)

	for _, w := range f.windows {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := f.querier.Assertions(ctx, near.ASN, far.ASN, w)
		if err != nil {
			return nil, fmt.Errorf("pair %s/%s: %w", near.ASN, far.ASN, err)
		}

		for _, event := range resp.Events() {
			links, err := f.links.Build(event.Time, near.ASN, far.ASN)
			if err != nil {
				return nil, fmt.Errorf("pair %s/%s: %w", near.ASN, far.ASN, err)
			}

			sheet.Append(model.Row{
				Time:       event.Time,
				Congestion: event.Congestion,
				DayLink:    links.Day,
				MonthLink:  links.Month,
			})
		}
	}

	return sheet, nil
}

// BuildReport processes every far network for the given near network in
// order and aggregates the non-empty pair sheets into one report. The
// returned pair results record one outcome per processed pair for the run
// summary.
//
// The ORG NAME header carries the configured display name (it also names
// the workbook file); the per-pair NETWORK NAME and ASN NAME lines carry
// the registered names from the name resolver when one is attached.
//
// By default the first pair failure aborts the report (and, in the caller,
// the run). With keep-going enabled, failed pairs are logged, recorded with
// their error, and skipped so the remaining pairs still get their chance.
// Context cancellation always aborts, keep-going or not: a cancelled run is
// not a sequence of skipped pairs.
func (f *Finder) BuildReport(ctx context.Context, near model.Network, fars []model.Network) (*model.Report, []model.PairResult, error) {
	report := model.NewReport(near)
	results := make([]model.PairResult, 0, len(fars))

	fmt.Fprintf(f.progress, "\n----------------\n\nORG NAME:\t%s\n", near.Name)

	for _, far := range fars {
		fmt.Fprintf(f.progress, "\n\t----------------\n")

		nearLabel, farLabel, err := f.pairLabels(ctx, near, far)
		if err == nil {
			fmt.Fprintf(f.progress, "\n\tNETWORK NAME:\t%s\n", nearLabel)
			fmt.Fprintf(f.progress, "\t    ASN NAME:\t%s\n", farLabel)

			var sheet *model.Sheet
			if sheet, err = f.BuildPairSheet(ctx, near, far); err == nil {
				f.writePairResult(len(sheet.Rows))
				results = append(results, model.PairResult{Near: near, Far: far, Events: len(sheet.Rows)})
				report.AddSheet(sheet)
				continue
			}
		}

		if !f.keepGoing || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, results, err
		}
		f.logger.Error("pair skipped", "near", near.ASN, "far", far.ASN, "error", err)
		fmt.Fprintf(f.progress, "\n\tRESULT: Pair skipped after query failure.\n")
		results = append(results, model.PairResult{Near: near, Far: far, Err: err})
	}

	return report, results, nil
}

// pairLabels resolves the registered names shown for one pair. Failures are
// remote failures and share the pair's error scope.
func (f *Finder) pairLabels(ctx context.Context, near, far model.Network) (string, string, error) {
	if f.names == nil {
		return near.Name, far.Name, nil
	}

	nearLabel, err := f.names.Resolve(ctx, near.ASN)
	if err != nil {
		return "", "", fmt.Errorf("pair %s/%s: %w", near.ASN, far.ASN, err)
	}
	farLabel, err := f.names.Resolve(ctx, far.ASN)
	if err != nil {
		return "", "", fmt.Errorf("pair %s/%s: %w", near.ASN, far.ASN, err)
	}
	return nearLabel, farLabel, nil
}

// writePairResult emits the human event count for one pair. Singular
// phrasing applies at exactly one event; larger counts get grouped
// thousands. A pair with zero events is reported distinctly from a pair
// that failed.
func (f *Finder) writePairResult(count int) {
	switch count {
	case 0:
		fmt.Fprintf(f.progress, "\n\tRESULT: No instances of congestion found.\n")
	case 1:
		fmt.Fprintf(f.progress, "\n\tRESULT: 1 instance of congestion found.\n")
	default:
		fmt.Fprintf(f.progress, "\n\tRESULT: %s instances of congestion found.\n",
			f.printer.Sprintf("%d", count))
	}
}
