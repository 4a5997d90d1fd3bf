package reach

import (
	"hash/fnv"
	"strings"
)

// patternRule maps name tokens to a reach range and category for outlets
// missing from the curated table.
type patternRule struct {
	label    string
	tokens   []string
	minReach int
	maxReach int
	category Category
}

// fallbackRules are scanned in order, first match wins. Small-outlet tokens
// rank first so a name containing "blog" or "newsletter" always lands in the
// lowest tier, whatever else the name contains.
var fallbackRules = []patternRule{
	{label: "small_outlet", tokens: []string{"blog", "newsletter", "substack", "podcast"}, minReach: 1_000, maxReach: 15_000, category: CategoryOther},
	{label: "local", tokens: []string{"local", "city", "county", "gazette"}, minReach: 20_000, maxReach: 100_000, category: CategoryGeneral},
	{label: "large_outlet", tokens: []string{"times", "post", "journal", "herald", "tribune"}, minReach: 500_000, maxReach: 2_000_000, category: CategoryGeneral},
	{label: "tech", tokens: []string{"tech", "digital", "wire", "byte"}, minReach: 200_000, maxReach: 800_000, category: CategoryTech},
	{label: "business", tokens: []string{"business", "finance", "market", "econom"}, minReach: 150_000, maxReach: 600_000, category: CategoryBusiness},
	{label: "trade", tokens: []string{"trade", "industry", "weekly", "review"}, minReach: 50_000, maxReach: 250_000, category: CategoryTrade},
}

// defaultRule catches names matching no pattern.
var defaultRule = patternRule{label: "default", minReach: 10_000, maxReach: 50_000, category: CategoryOther}

// Estimator resolves outlet names to reach estimates against the curated
// publication table, degrading to pattern heuristics for unknown names.
type Estimator struct {
	table []PublicationInfo
}

// NewEstimator creates an estimator over the curated publication table.
func NewEstimator() *Estimator {
	return &Estimator{table: knownPublications}
}

// Estimate resolves an outlet name to a reach estimate. It never fails:
// resolution runs exact match, case-insensitive match, substring match in
// table order, then pattern fallback. Category and tier are always a pure
// function of the name; the reach for unmatched names is a bounded value
// derived from the name itself, so repeated calls agree.
func (e *Estimator) Estimate(outletName string) PublicationInfo {
	name := strings.TrimSpace(outletName)

	for _, p := range e.table {
		if p.Name == name {
			EstimateResults.WithLabelValues("exact").Inc()
			return p
		}
	}

	lower := strings.ToLower(name)
	for _, p := range e.table {
		if strings.ToLower(p.Name) == lower {
			EstimateResults.WithLabelValues("case_insensitive").Inc()
			return p
		}
	}

	// Substring match runs both directions: the table name containing the
	// query or the query containing the table name. First table entry wins.
	if lower != "" {
		for _, p := range e.table {
			tableName := strings.ToLower(p.Name)
			if strings.Contains(tableName, lower) || strings.Contains(lower, tableName) {
				EstimateResults.WithLabelValues("substring").Inc()
				return p
			}
		}
	}

	return e.fallback(name, lower)
}

// fallback produces a pattern-based estimate for a name the table does not
// know.
func (e *Estimator) fallback(name, lower string) PublicationInfo {
	rule := defaultRule
	for _, r := range fallbackRules {
		if containsAny(lower, r.tokens) {
			rule = r
			break
		}
	}
	EstimateResults.WithLabelValues("pattern_" + rule.label).Inc()

	reach := boundedReach(lower, rule.minReach, rule.maxReach)
	return PublicationInfo{
		Name:           name,
		EstimatedReach: reach,
		Tier:           TierForReach(reach),
		Category:       rule.category,
		DataSource:     SourceEstimated,
		Confidence:     ConfidenceLow,
	}
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

// boundedReach derives a reach value inside [min, max] from the name itself.
// Name-stable so repeated renders of the same row agree.
func boundedReach(name string, min, max int) int {
	h := fnv.New64a()
	h.Write([]byte(name))
	span := uint64(max - min + 1)
	return min + int(h.Sum64()%span)
}
