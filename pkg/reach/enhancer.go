package reach

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// LookupFunc resolves an outlet's audience reach through an external search.
// It is only consulted for names the curated table does not know.
type LookupFunc func(ctx context.Context, name string) (int, error)

// Enhancer is the optional async upgrade path for unknown outlets: it runs
// the injected lookup, derives the tier from the looked-up reach, and tags
// the result as web_search with medium confidence. Results are memoized
// per name for the process lifetime and concurrent lookups for the same
// name are deduplicated. The synchronous Estimator never depends on it.
type Enhancer struct {
	estimator *Estimator
	lookup    LookupFunc
	memo      *lru.Cache[string, PublicationInfo]
	group     singleflight.Group
	logger    zerolog.Logger
}

// NewEnhancer wraps an estimator with a lookup. memoSize bounds the per-name
// result cache.
func NewEnhancer(estimator *Estimator, lookup LookupFunc, memoSize int, logger zerolog.Logger) (*Enhancer, error) {
	if lookup == nil {
		return nil, fmt.Errorf("lookup function is required")
	}
	memo, err := lru.New[string, PublicationInfo](memoSize)
	if err != nil {
		return nil, fmt.Errorf("create memo cache: %w", err)
	}
	return &Enhancer{
		estimator: estimator,
		lookup:    lookup,
		memo:      memo,
		logger:    logger,
	}, nil
}

// Estimate resolves an outlet name, upgrading unknown names through the
// lookup when it succeeds. Any lookup failure falls back to the synchronous
// estimate, so this never errors either.
func (h *Enhancer) Estimate(ctx context.Context, outletName string) PublicationInfo {
	base := h.estimator.Estimate(outletName)
	if base.DataSource == SourceDatabase {
		return base
	}

	key := strings.ToLower(strings.TrimSpace(outletName))
	if key == "" {
		return base
	}
	if info, ok := h.memo.Get(key); ok {
		EnhancerLookups.WithLabelValues("memo").Inc()
		return info
	}

	v, err, _ := h.group.Do(key, func() (interface{}, error) {
		if info, ok := h.memo.Get(key); ok {
			return info, nil
		}
		reach, err := h.lookup(ctx, outletName)
		if err != nil {
			return nil, err
		}
		if reach < 0 {
			return nil, fmt.Errorf("lookup returned negative reach %d", reach)
		}
		info := base
		info.EstimatedReach = reach
		info.Tier = TierForReach(reach)
		info.DataSource = SourceWebSearch
		info.Confidence = ConfidenceMedium
		h.memo.Add(key, info)
		return info, nil
	})
	if err != nil {
		EnhancerLookups.WithLabelValues("error").Inc()
		h.logger.Debug().
			Err(err).
			Str("outlet", outletName).
			Msg("Reach lookup failed, using pattern estimate")
		return base
	}

	EnhancerLookups.WithLabelValues("hit").Inc()
	return v.(PublicationInfo)
}
