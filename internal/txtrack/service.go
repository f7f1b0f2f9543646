// Package txtrack walks a collection's paginated transaction history and
// returns the transactions newer than the collection's watermark, i.e. the
// hash of the last transaction already processed.
package txtrack

import (
	"context"
	"fmt"
	"slices"

	"github.com/gabapcia/salestracker/internal/pkg/logger"
)

const (
	// defaultPageSize is the page size observed on the upstream indexer.
	defaultPageSize = 100

	// defaultMaxPages bounds the pages read for one collection in one run.
	defaultMaxPages = 50
)

// Result is the outcome of tracking one collection.
type Result struct {
	// Transactions holds the unseen transactions, oldest first.
	Transactions []Transaction

	// Watermark is the hash of the newest transaction in Transactions, or the
	// input watermark when nothing new was found.
	Watermark string

	// Pages is the number of pages fetched.
	Pages int

	// Exhausted is set when pagination stopped at the page cap before the
	// watermark or the bottom of the history was reached.
	Exhausted bool
}

// Service finds the transactions a collection received since its watermark.
type Service interface {
	// Track returns the collection's transactions strictly newer than
	// watermark, in chronological order, together with the new watermark.
	//
	// An empty watermark means the collection was never tracked: only the
	// first page is read, history is not backfilled.
	Track(ctx context.Context, collection, watermark string) (Result, error)
}

type service struct {
	source   TransactionSource
	pageSize int
	maxPages int
}

var _ Service = (*service)(nil)

func (s *service) Track(ctx context.Context, collection, watermark string) (Result, error) {
	var (
		newestFirst []Transaction
		result      = Result{Watermark: watermark}
	)

	for page := 1; ; page++ {
		if page > s.maxPages {
			result.Exhausted = true
			logger.Warn(ctx, "page cap reached before finding the watermark",
				"collection", collection,
				"watermark", watermark,
				"tracker.max_pages", s.maxPages,
			)
			break
		}

		txs, err := s.source.FetchTransactions(ctx, collection, page)
		if err != nil {
			return Result{}, fmt.Errorf("fetch page %d of collection %s: %w", page, collection, err)
		}
		result.Pages = page

		unseen, found := takeUntil(txs, watermark)
		newestFirst = append(newestFirst, unseen...)

		if found || watermark == "" || len(txs) < s.pageSize {
			break
		}
	}

	slices.Reverse(newestFirst)
	result.Transactions = newestFirst
	if n := len(newestFirst); n > 0 {
		result.Watermark = newestFirst[n-1].Hash
	}

	logger.Debug(ctx, "collection tracked",
		"collection", collection,
		"watermark.previous", watermark,
		"watermark.current", result.Watermark,
		"tracker.pages", result.Pages,
		"tracker.transactions", len(newestFirst),
	)

	return result, nil
}

// takeUntil returns the leading entries of a newest-first page up to, and
// excluding, the entry whose hash equals watermark. found reports whether
// the watermark was on the page.
func takeUntil(page []Transaction, watermark string) (unseen []Transaction, found bool) {
	if watermark == "" {
		return page, false
	}

	i := slices.IndexFunc(page, func(tx Transaction) bool { return tx.Hash == watermark })
	if i < 0 {
		return page, false
	}
	return page[:i], true
}

type config struct {
	pageSize int
	maxPages int
}

// Option configures the tracker.
type Option func(*config)

// New creates a tracker reading from source. The page size must match the
// source's own page size, since a shorter page marks the end of history.
func New(source TransactionSource, opts ...Option) *service {
	cfg := config{
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		source:   source,
		pageSize: cfg.pageSize,
		maxPages: cfg.maxPages,
	}
}

// WithPageSize sets the number of entries a full source page holds.
func WithPageSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithMaxPages sets the hard cap of pages fetched per collection.
func WithMaxPages(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxPages = n
		}
	}
}
