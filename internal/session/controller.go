// Package session runs the interactive analysis loop: acquire filters, load
// and filter a dataset, report statistics, browse raw records, repeat.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/fjaeril/pdsnd-github/internal/domain"
	"github.com/fjaeril/pdsnd-github/internal/report"
)

// FilterSource asks the user for filters and yes/no decisions.
// Defining the interface here (in the consumer package) lets tests script
// the user's answers.
type FilterSource interface {
	AcquireFilters() (domain.FilterSpec, error)
	Confirm(question string, def bool) bool
}

// DatasetLoader returns the records of a city matching a FilterSpec.
type DatasetLoader interface {
	Load(ctx context.Context, spec domain.FilterSpec) (domain.Dataset, error)
}

// StatsEngine reduces a non-empty dataset to a Summary.
type StatsEngine interface {
	Summarize(ctx context.Context, spec domain.FilterSpec, ds domain.Dataset) (domain.Summary, error)
}

// Reporter presents the outcome of a cycle to the user.
type Reporter interface {
	Selection(spec domain.FilterSpec)
	NoRecords(spec domain.FilterSpec)
	Failure(spec domain.FilterSpec, err error)
	Summary(s domain.Summary)
	Page(page domain.Page, cols domain.ColumnSet)
}

// Pager yields pages of a dataset one at a time. *domain.Cursor implements it.
type Pager interface {
	Next() (domain.Page, bool)
}

// Options tunes a Controller.
type Options struct {
	// PageSize is the number of raw records per page. Values below 1 mean 5.
	PageSize int
	// ChartDir, when set, receives one HTML chart per analyzed cycle.
	ChartDir string
	// Paginate builds the pager used for raw-data browsing.
	// Defaults to domain.NewCursor.
	Paginate func(ds domain.Dataset, size int) Pager
}

// Outcome describes how a cycle ended.
type Outcome int

const (
	// OutcomeCancelled means the user backed out of filter acquisition or
	// the context was cancelled mid-cycle.
	OutcomeCancelled Outcome = iota
	// OutcomeFailed means the dataset could not be loaded or analyzed.
	OutcomeFailed
	// OutcomeEmpty means the filters matched no records.
	OutcomeEmpty
	// OutcomeAnalyzed means statistics were reported.
	OutcomeAnalyzed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	case OutcomeEmpty:
		return "empty"
	case OutcomeAnalyzed:
		return "analyzed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Controller drives repeated analysis cycles.
type Controller struct {
	input  FilterSource
	loader DatasetLoader
	stats  StatsEngine
	out    Reporter
	opts   Options
	log    *slog.Logger
}

// NewController constructs a Controller with all its dependencies.
func NewController(input FilterSource, loader DatasetLoader, stats StatsEngine, out Reporter, opts Options, log *slog.Logger) *Controller {
	if opts.PageSize < 1 {
		opts.PageSize = 5
	}
	if opts.Paginate == nil {
		opts.Paginate = func(ds domain.Dataset, size int) Pager { return domain.NewCursor(ds, size) }
	}
	return &Controller{input: input, loader: loader, stats: stats, out: out, opts: opts, log: log}
}

// Run repeats analysis cycles until the user declines another one or ctx is
// done. Failed, empty and cancelled cycles do not stop the loop.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.RunCycle(ctx)
		if err := ctx.Err(); err != nil {
			return err
		}
		if !c.input.Confirm("Do you want to analyze another set of data?", true) {
			return nil
		}
	}
}

// RunCycle performs one acquire, load, report and browse pass.
// Statistics and browsing are skipped entirely when no records match.
func (c *Controller) RunCycle(ctx context.Context) Outcome {
	id := uuid.New()
	log := c.log.With("cycle_id", id.String())

	spec, err := c.input.AcquireFilters()
	if err != nil {
		if !errors.Is(err, domain.ErrCancelled) {
			log.ErrorContext(ctx, "filter acquisition failed", "error", err)
			return OutcomeFailed
		}
		log.DebugContext(ctx, "cycle cancelled")
		return OutcomeCancelled
	}
	if ctx.Err() != nil {
		log.DebugContext(ctx, "cycle interrupted", "error", ctx.Err())
		return OutcomeCancelled
	}

	c.out.Selection(spec)
	ds, err := c.loader.Load(ctx, spec)
	if err != nil {
		log.WarnContext(ctx, "dataset load failed", "city", spec.City, "error", err)
		c.out.Failure(spec, err)
		return OutcomeFailed
	}
	if ds.IsEmpty() {
		log.DebugContext(ctx, "no records matched", "city", spec.City, "month", spec.Month, "weekday", spec.Weekday)
		c.out.NoRecords(spec)
		return OutcomeEmpty
	}

	sum, err := c.stats.Summarize(ctx, spec, ds)
	if err != nil {
		log.ErrorContext(ctx, "statistics failed", "error", err)
		c.out.Failure(spec, err)
		return OutcomeFailed
	}
	c.out.Summary(sum)
	log.DebugContext(ctx, "cycle analyzed", "city", spec.City, "records", sum.Records)

	if c.opts.ChartDir != "" {
		if path, err := c.writeChart(id, sum); err != nil {
			log.WarnContext(ctx, "chart not written", "error", err)
		} else {
			log.InfoContext(ctx, "chart written", "path", path)
		}
	}

	if ctx.Err() != nil {
		return OutcomeCancelled
	}
	c.browse(ctx, ds)
	return OutcomeAnalyzed
}

// browse offers the raw records page by page until the user declines, the
// dataset is exhausted or ctx is done.
func (c *Controller) browse(ctx context.Context, ds domain.Dataset) {
	size := c.opts.PageSize
	if !c.input.Confirm(fmt.Sprintf("Do you want to see %d lines of raw data?", size), false) {
		return
	}
	pager := c.opts.Paginate(ds, size)
	cols := ds.Columns()
	for {
		page, ok := pager.Next()
		if !ok {
			return
		}
		c.out.Page(page, cols)
		if page.Offset+len(page.Records) >= ds.Len() {
			return
		}
		if ctx.Err() != nil {
			return
		}
		if !c.input.Confirm(fmt.Sprintf("Do you want to see the next %d lines of raw data?", size), true) {
			return
		}
	}
}

func (c *Controller) writeChart(id uuid.UUID, sum domain.Summary) (string, error) {
	name := fmt.Sprintf("%s-%s.html", strings.ReplaceAll(sum.Filter.City, " ", "_"), id)
	path := filepath.Join(c.opts.ChartDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("session.Controller.writeChart: %w", err)
	}
	if err := report.WriteChart(f, sum); err != nil {
		f.Close()
		return "", fmt.Errorf("session.Controller.writeChart: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("session.Controller.writeChart: %w", err)
	}
	return path, nil
}
