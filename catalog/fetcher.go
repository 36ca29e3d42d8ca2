package catalog

import (
	"context"
	"log/slog"
)

// Source retrieves character records matching a free-text query and filter.
// client.ComfyClient is the production implementation.
type Source interface {
	GetAnimeNames(ctx context.Context, query string, filter string) ([]CharacterRecord, error)
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithCache makes the fetcher record successful results in c instead of the
// process-wide cache.
func WithCache(c *Cache) FetcherOption {
	return func(f *Fetcher) {
		f.cache = c
	}
}

// WithLogger sets the logger used to report swallowed transport failures.
func WithLogger(l *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = l
	}
}

// Fetcher turns a Source into the picker's catalog feed. Failures never reach the
// caller: they are logged and produce an empty catalog.
type Fetcher struct {
	source Source
	cache  *Cache
	logger *slog.Logger
}

// NewFetcher creates a Fetcher reading from source.
func NewFetcher(source Source, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		source: source,
		cache:  defaultCache,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Fetch returns the records matching query and filter in server order. The
// result is never nil; any error yields an empty slice and leaves the cache
// untouched.
func (f *Fetcher) Fetch(ctx context.Context, query string, filter string) []CharacterRecord {
	records, err := f.source.GetAnimeNames(ctx, query, filter)
	if err != nil {
		f.logger.Warn("fetching anime characters failed", "query", query, "filter", filter, "error", err)
		return []CharacterRecord{}
	}
	if records == nil {
		records = []CharacterRecord{}
	}
	f.cache.Set(records)
	return records
}

// Last returns the most recent successful result.
func (f *Fetcher) Last() []CharacterRecord {
	return f.cache.Records()
}

// Lookup finds a record in the most recent successful result.
func (f *Fetcher) Lookup(key string) (CharacterRecord, bool) {
	return f.cache.Lookup(key)
}
