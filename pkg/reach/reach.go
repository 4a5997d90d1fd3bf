// Package reach estimates audience reach for publication outlets. The
// estimator is a total, pure function over the outlet name: unknown or
// malformed input degrades to a low-confidence estimate instead of erroring,
// so row-rendering code can call it inline for every coverage row.
package reach

// Tier buckets publications by estimated influence, tier1 highest.
type Tier string

const (
	Tier1 Tier = "tier1"
	Tier2 Tier = "tier2"
	Tier3 Tier = "tier3"
)

// Category is a coarse publication type.
type Category string

const (
	CategoryTech     Category = "tech"
	CategoryBusiness Category = "business"
	CategoryGeneral  Category = "general"
	CategoryTrade    Category = "trade"
	CategoryOther    Category = "other"
)

// DataSource tags where an estimate came from.
type DataSource string

const (
	// SourceDatabase marks entries from the curated publication table.
	SourceDatabase DataSource = "database"

	// SourceWebSearch marks estimates upgraded by the async lookup path.
	SourceWebSearch DataSource = "web_search"

	// SourceEstimated marks heuristic pattern-based estimates.
	SourceEstimated DataSource = "estimated"
)

// Confidence grades an estimate, correlated with its DataSource.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// PublicationInfo is a structured reach estimate for one outlet.
type PublicationInfo struct {
	Name           string     `json:"name"`
	EstimatedReach int        `json:"estimatedReach"`
	Tier           Tier       `json:"tier"`
	Category       Category   `json:"category"`
	DataSource     DataSource `json:"dataSource"`
	Confidence     Confidence `json:"confidence"`
}

// Tier thresholds. Monotonic by construction: tier1 reach strictly exceeds
// any tier2 reach, which strictly exceeds any tier3 reach.
const (
	tier1MinReach = 5_000_000
	tier2MinReach = 500_000
)

// TierForReach maps an audience count to its tier bucket.
func TierForReach(reach int) Tier {
	switch {
	case reach >= tier1MinReach:
		return Tier1
	case reach >= tier2MinReach:
		return Tier2
	default:
		return Tier3
	}
}
