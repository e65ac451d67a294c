package coordinator

import (
	"context"
	"fmt"
	"os"

	"github.com/sourcegraph/conc/stream"

	"simfinclient/internal/fetcher"
	"simfinclient/internal/ratelimit"
)

const defaultConcurrency = 4

// Coordinator runs fetchers concurrently and reports their results in
// the order the fetchers were given.
type Coordinator struct {
	fetchers    []fetcher.Fetcher
	concurrency int
	limiter     *ratelimit.Limiter
	printer     *Printer
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithConcurrency bounds the number of fetches in flight.
func WithConcurrency(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLimiter paces the start of each fetch.
func WithLimiter(l *ratelimit.Limiter) Option {
	return func(c *Coordinator) { c.limiter = l }
}

// WithPrinter sets where and how results are printed.
func WithPrinter(p *Printer) Option {
	return func(c *Coordinator) { c.printer = p }
}

// New creates a new Coordinator with the given fetchers
func New(fetchers []fetcher.Fetcher, opts ...Option) *Coordinator {
	c := &Coordinator{
		fetchers:    fetchers,
		concurrency: defaultConcurrency,
		printer:     NewPrinter(os.Stdout, FormatJSON),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect executes all fetchers and returns one result per fetcher, in
// fetcher order. Individual failures are reported in the results.
func (c *Coordinator) Collect(ctx context.Context) ([]fetcher.Result, error) {
	results := make([]fetcher.Result, 0, len(c.fetchers))
	err := c.each(ctx, func(r fetcher.Result) {
		results = append(results, r)
	})
	return results, err
}

// Run executes all fetchers and prints each result as soon as it and every
// result before it are available.
//   - Success: "KEY: VALUE"
//   - Error: "KEY: ERROR - error message"
//
// It returns the number of fetches that failed.
func (c *Coordinator) Run(ctx context.Context) (int, error) {
	failed := 0
	var printErr error
	err := c.each(ctx, func(r fetcher.Result) {
		if r.Error != nil {
			failed++
		}
		if printErr == nil {
			printErr = c.printer.Print(r)
		}
	})
	if err != nil {
		return failed, err
	}
	if printErr != nil {
		return failed, fmt.Errorf("failed to write result: %w", printErr)
	}
	return failed, nil
}

// each runs the fetchers on a bounded stream. Callbacks are invoked one at a
// time in fetcher order.
func (c *Coordinator) each(ctx context.Context, fn func(fetcher.Result)) error {
	if len(c.fetchers) == 0 {
		return fmt.Errorf("no fetchers configured")
	}

	s := stream.New().WithMaxGoroutines(c.concurrency)
	for _, f := range c.fetchers {
		s.Go(func() stream.Callback {
			result := c.fetch(ctx, f)
			return func() { fn(result) }
		})
	}
	s.Wait()

	return nil
}

func (c *Coordinator) fetch(ctx context.Context, f fetcher.Fetcher) fetcher.Result {
	if err := c.limiter.Wait(ctx); err != nil {
		return fetcher.Result{Key: f.Key(), Error: fmt.Errorf("rate limiter: %w", err)}
	}

	value, err := f.Fetch(ctx)
	return fetcher.Result{
		Key:   f.Key(),
		Value: value,
		Error: err,
	}
}
