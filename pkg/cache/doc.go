// Package cache provides a single-entry, quota-aware cache that coalesces
// concurrent fetches of the spreadsheet dataset.
//
// The cache guarantees at most one upstream fetch in flight at a time: the
// Sheets API enforces a low read quota, and concurrent page loads would
// otherwise each trigger their own fetch. Callers arriving while a fetch
// runs join it and observe the same outcome.
//
// Behavior on failures:
//
//   - Quota failures are absorbed by serving the previous entry (even one
//     past its TTL) as stale, tagged with the reason.
//   - Timeouts are surfaced distinctly; the in-flight slot is cleared so the
//     next caller starts a fresh attempt, and a late result from the
//     timed-out fetch is discarded rather than cached.
//   - A caller that joined someone else's failing fetch retries once before
//     applying the failure policy.
//
// # Basic Usage
//
//	source, _ := sheets.New(ctx, sheets.Config{SpreadsheetID: id})
//	c := cache.New(source.Fetch, cache.DefaultConfig())
//
//	res, err := c.Get(ctx, false)
//	if err != nil {
//		// upstream.Classify(err) distinguishes quota/timeout/generic
//	}
//	if res.Stale {
//		// served old data because the refresh hit the quota
//	}
//
//	// When the spreadsheet changes (webhook or manual control):
//	c.Invalidate()
//
// # Metrics
//
// The package exports Prometheus metrics:
//
//   - prtracker_cache_hits_total{freshness} - served payloads (fresh/stale)
//   - prtracker_cache_misses_total - requests needing an upstream fetch
//   - prtracker_coalesced_waiters_total - callers that joined a fetch
//   - prtracker_upstream_fetches_total{outcome} - fetch settlements
//   - prtracker_upstream_fetch_duration_seconds - fetch duration
//   - prtracker_stale_serves_total - quota failures absorbed
//   - prtracker_cache_invalidations_total - explicit invalidations
package cache
