package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/meridianpr/pr-tracker/pkg/dataset"
	"github.com/meridianpr/pr-tracker/pkg/upstream"
)

// Fetcher loads the full spreadsheet dataset from upstream.
type Fetcher func(ctx context.Context) (*dataset.Dataset, error)

// Config holds the cache configuration.
type Config struct {
	// TTL is how long a successful fetch serves as fresh. Zero means
	// entries never expire on their own and are only replaced by a forced
	// refresh or cleared by Invalidate.
	TTL time.Duration

	// FetchTimeout bounds a single upstream fetch. A fetch that exceeds it
	// is reported as a timeout and its eventual result is discarded.
	FetchTimeout time.Duration

	// Logger for cache events.
	Logger zerolog.Logger
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{
		TTL:          5 * time.Minute,
		FetchTimeout: 45 * time.Second,
		Logger:       zerolog.Nop(),
	}
}

// Result carries a served payload together with the cache metadata the HTTP
// layer surfaces to the dashboard.
type Result struct {
	// Payload is the served dataset.
	Payload *dataset.Dataset

	// FetchedAt is when the served payload was fetched from upstream.
	FetchedAt time.Time

	// FromCache is true when the payload was served from an existing entry
	// without a new upstream call completing for this caller.
	FromCache bool

	// Stale is true when the payload outlived its TTL but was served anyway
	// because the refresh attempt failed recoverably.
	Stale bool

	// StaleReason names why a stale payload was served ("quota_exceeded").
	StaleReason string
}

// Age returns how old the served payload is at time now.
func (r Result) Age(now time.Time) time.Duration {
	if r.FetchedAt.IsZero() {
		return 0
	}
	return now.Sub(r.FetchedAt)
}

// entry is the single cached dataset. At most one exists per cache.
type entry struct {
	payload   *dataset.Dataset
	fetchedAt time.Time
	ttl       time.Duration
}

// expired reports whether the entry is past its TTL for fresh-serve
// purposes. Expired entries stay available for stale serving until replaced.
func (e *entry) expired(now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.fetchedAt) > e.ttl
}

// fetchOutcome carries a fetch's result from its goroutine to the flight.
type fetchOutcome struct {
	payload *dataset.Dataset
	err     error
}

// flight is a single in-flight upstream fetch that concurrent callers join.
// The result fields are set exactly once, before done is closed.
type flight struct {
	done      chan struct{}
	payload   *dataset.Dataset
	fetchedAt time.Time
	err       error
}

// Cache is a single-entry, quota-aware cache that coalesces concurrent
// fetches of the spreadsheet dataset. At most one upstream fetch is in
// flight at any time; callers arriving while one runs join it instead of
// issuing their own. Quota failures are absorbed by serving the previous
// entry when one exists.
type Cache struct {
	fetch        Fetcher
	ttl          time.Duration
	fetchTimeout time.Duration
	logger       zerolog.Logger

	mu     sync.Mutex
	entry  *entry
	flight *flight

	// now is swapped in tests to drive TTL expiry.
	now func() time.Time
}

// New creates a cache around the given upstream fetch function.
func New(fetch Fetcher, cfg Config) *Cache {
	if fetch == nil {
		panic("fetch function cannot be nil")
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultConfig().FetchTimeout
	}
	return &Cache{
		fetch:        fetch,
		ttl:          cfg.TTL,
		fetchTimeout: cfg.FetchTimeout,
		logger:       cfg.Logger,
		now:          time.Now,
	}
}

// Get returns the dataset, serving the cached entry when it is fresh,
// joining an in-flight fetch when one exists, and issuing a new upstream
// fetch otherwise. With forceRefresh the cached entry is bypassed.
//
// A caller that joined someone else's failing fetch makes one more attempt
// before giving up. On a quota-classified failure the previous entry, even
// an expired one, is served as stale instead of the error.
func (c *Cache) Get(ctx context.Context, forceRefresh bool) (Result, error) {
	c.mu.Lock()
	if !forceRefresh {
		if e := c.entry; e != nil && !e.expired(c.now()) {
			c.mu.Unlock()
			CacheHits.WithLabelValues("fresh").Inc()
			return Result{Payload: e.payload, FetchedAt: e.fetchedAt, FromCache: true}, nil
		}
	}
	CacheMisses.Inc()
	fl, started := c.joinOrStartLocked()
	c.mu.Unlock()

	payload, fetchedAt, err := c.wait(ctx, fl)
	if err == nil {
		return Result{Payload: payload, FetchedAt: fetchedAt}, nil
	}
	if ctx.Err() != nil {
		// The caller gave up; the shared fetch keeps running for others.
		return Result{}, fmt.Errorf("await fetch: %w", ctx.Err())
	}

	if !started {
		// We joined a fetch that failed for its initiator. One retry: by
		// now a newer attempt may have populated the entry or be in
		// flight, so re-check before fetching again.
		c.mu.Lock()
		if e := c.entry; e != nil && !forceRefresh && !e.expired(c.now()) {
			c.mu.Unlock()
			CacheHits.WithLabelValues("fresh").Inc()
			return Result{Payload: e.payload, FetchedAt: e.fetchedAt, FromCache: true}, nil
		}
		fl, _ = c.joinOrStartLocked()
		c.mu.Unlock()

		c.logger.Debug().Msg("Joined fetch failed, retrying once")
		payload, fetchedAt, err = c.wait(ctx, fl)
		if err == nil {
			return Result{Payload: payload, FetchedAt: fetchedAt}, nil
		}
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("await fetch: %w", ctx.Err())
		}
	}

	return c.failureResult(err)
}

// Invalidate clears the cached entry unconditionally. An in-flight fetch is
// left to settle; its result is newer than anything invalidated here.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()

	Invalidations.Inc()
	c.logger.Info().Msg("Cache invalidated")
}

// joinOrStartLocked returns the current in-flight fetch, starting one if
// none exists. Caller must hold c.mu; this is the check-then-create step
// that keeps the single-flight invariant.
func (c *Cache) joinOrStartLocked() (*flight, bool) {
	if c.flight != nil {
		CoalescedWaiters.Inc()
		return c.flight, false
	}
	fl := &flight{done: make(chan struct{})}
	c.flight = fl
	go c.run(fl)
	return fl, true
}

// run executes the upstream fetch for a flight, racing it against the fetch
// timeout. If the timeout wins, the flight settles as a timeout and the
// fetch's eventual result is discarded without touching the entry.
func (c *Cache) run(fl *flight) {
	fctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()

	start := time.Now()

	resCh := make(chan fetchOutcome, 1)
	go func() {
		payload, err := c.fetch(fctx)
		resCh <- fetchOutcome{payload: payload, err: err}
	}()

	select {
	case res := <-resCh:
		if res.err == nil && res.payload == nil {
			res.err = errors.New("upstream returned no dataset")
		}
		c.settle(fl, res.payload, res.err, time.Since(start))
	case <-fctx.Done():
		err := upstream.NewError(upstream.KindTimeout,
			fmt.Errorf("upstream fetch exceeded %s: %w", c.fetchTimeout, fctx.Err()))
		c.settle(fl, nil, err, time.Since(start))
		go c.drain(resCh, start)
	}
}

// drain consumes the eventual result of a fetch whose flight already settled
// as a timeout. The result is discarded: waiters were released with the
// timeout and a success this late must not populate the entry retroactively.
func (c *Cache) drain(resCh <-chan fetchOutcome, start time.Time) {
	res := <-resCh
	if res.err == nil {
		c.logger.Warn().
			Dur("duration", time.Since(start)).
			Msg("Fetch settled after timeout, result discarded")
	}
}

// settle records a flight's outcome, updates the entry on success, and
// releases all waiters. It runs exactly once per flight; a timed-out flight
// settles with the timeout error and its fetch's eventual result goes to
// drain, never here.
func (c *Cache) settle(fl *flight, payload *dataset.Dataset, err error, elapsed time.Duration) {
	FetchDuration.Observe(elapsed.Seconds())

	c.mu.Lock()
	fetchedAt := c.now()
	c.flight = nil
	if err == nil {
		c.entry = &entry{payload: payload, fetchedAt: fetchedAt, ttl: c.ttl}
	}
	c.mu.Unlock()

	if err == nil {
		UpstreamFetches.WithLabelValues("success").Inc()
		c.logger.Info().
			Dur("duration", elapsed).
			Int("row_count", payload.RowCount()).
			Msg("Upstream fetch succeeded")
	} else {
		kind := upstream.Classify(err)
		UpstreamFetches.WithLabelValues(string(kind)).Inc()
		c.logger.Warn().
			Err(err).
			Str("error_kind", string(kind)).
			Dur("duration", elapsed).
			Msg("Upstream fetch failed")
	}

	fl.payload = payload
	fl.fetchedAt = fetchedAt
	fl.err = err
	close(fl.done)
}

// wait blocks until the flight settles or the caller's context ends.
func (c *Cache) wait(ctx context.Context, fl *flight) (*dataset.Dataset, time.Time, error) {
	select {
	case <-fl.done:
		if fl.err != nil {
			return nil, time.Time{}, fl.err
		}
		return fl.payload, fl.fetchedAt, nil
	case <-ctx.Done():
		return nil, time.Time{}, ctx.Err()
	}
}

// failureResult applies the failure policy: quota failures are absorbed by
// serving the previous entry when one exists, everything else is surfaced
// with its classification.
func (c *Cache) failureResult(err error) (Result, error) {
	kind := upstream.Classify(err)

	if kind == upstream.KindQuota {
		c.mu.Lock()
		e := c.entry
		c.mu.Unlock()
		if e != nil {
			CacheHits.WithLabelValues("stale").Inc()
			StaleServes.Inc()
			c.logger.Warn().
				Time("fetched_at", e.fetchedAt).
				Msg("Quota exceeded, serving stale entry")
			return Result{
				Payload:     e.payload,
				FetchedAt:   e.fetchedAt,
				FromCache:   true,
				Stale:       true,
				StaleReason: string(upstream.KindQuota),
			}, nil
		}
	}

	var uerr *upstream.Error
	if !errors.As(err, &uerr) {
		err = upstream.NewError(kind, err)
	}
	return Result{}, err
}
