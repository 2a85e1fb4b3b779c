// Package batch loads and parses many PNG files concurrently.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/meigma/pngchunk"
	"github.com/meigma/pngchunk/internal/fileops"
)

// Result is the outcome of loading one file.
// Exactly one of PNG and Err is set.
type Result struct {
	Path string
	PNG  *pngchunk.PNG
	Err  error
}

// Processor reads and parses files with a bounded number of workers.
type Processor struct {
	workers      int // 0 = GOMAXPROCS, <0 = serial, >0 = fixed count
	maxFileSize  uint64
	parseOptions []pngchunk.ParseOption
	logger       *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithWorkers sets the number of files loaded at once.
// Values < 0 force serial processing. Zero uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		p.workers = n
	}
}

// WithMaxFileSize limits the size of each file read.
// Set limit to 0 to disable the limit.
func WithMaxFileSize(limit uint64) Option {
	return func(p *Processor) {
		p.maxFileSize = limit
	}
}

// WithParseOptions passes options through to pngchunk.Parse.
func WithParseOptions(opts ...pngchunk.ParseOption) Option {
	return func(p *Processor) {
		p.parseOptions = append(p.parseOptions, opts...)
	}
}

// WithLogger sets the logger for per-file progress.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor creates a processor. Files default to fileops.DefaultMaxFileSize.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{maxFileSize: fileops.DefaultMaxFileSize}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// log returns the logger, falling back to a discard logger if nil.
func (p *Processor) log() *slog.Logger {
	if p.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.logger
}

// Summarize loads every path and returns one Result per path, in input order.
//
// A file that cannot be read or parsed is reported on its Result; the other
// files are still processed. The only error returned is the context's.
func (p *Processor) Summarize(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.workerCount(len(paths)))

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.load(path)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Load reads and parses a single file.
func (p *Processor) Load(path string) (*pngchunk.PNG, error) {
	r := p.load(path)
	return r.PNG, r.Err
}

func (p *Processor) load(path string) Result {
	data, err := fileops.ReadFile(path, p.maxFileSize)
	if err != nil {
		p.log().Debug("read failed", slog.String("path", path), slog.Any("error", err))
		return Result{Path: path, Err: err}
	}

	opts := append([]pngchunk.ParseOption{
		pngchunk.WithLogger(p.log().With(slog.String("path", path))),
	}, p.parseOptions...)
	img, err := pngchunk.Parse(data, opts...)
	if err != nil {
		p.log().Debug("parse failed", slog.String("path", path), slog.Any("error", err))
		return Result{Path: path, Err: fmt.Errorf("%s: %w", path, err)}
	}

	p.log().Debug("loaded",
		slog.String("path", path),
		slog.Int("bytes", len(data)),
		slog.Int("chunks", img.Len()))
	return Result{Path: path, PNG: img}
}

func (p *Processor) workerCount(n int) int {
	if n < 2 || p.workers < 0 {
		return 1
	}
	workers := p.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return max(1, min(workers, n))
}
