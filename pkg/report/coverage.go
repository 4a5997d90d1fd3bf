// Package report builds page view-models from the normalized dataset,
// annotating coverage rows with reach estimates before aggregation.
package report

import (
	"strings"

	"github.com/meridianpr/pr-tracker/pkg/dataset"
	"github.com/meridianpr/pr-tracker/pkg/reach"
)

// Column header candidates, checked in order. The tracker spreadsheet is
// hand-maintained and header names drift between tabs.
var (
	outletColumns   = []string{"Outlet", "Publication", "Outlet Name", "Media Outlet"}
	headlineColumns = []string{"Headline", "Title", "Article Title"}
	urlColumns      = []string{"Link", "URL", "Article Link"}
	dateColumns     = []string{"Date", "Published", "Publication Date"}
)

// CoverageItem is one coverage row annotated with its reach estimate.
type CoverageItem struct {
	Outlet     string           `json:"outlet"`
	Headline   string           `json:"headline,omitempty"`
	URL        string           `json:"url,omitempty"`
	Date       string           `json:"date,omitempty"`
	Reach      int              `json:"reach"`
	Tier       reach.Tier       `json:"tier"`
	Category   reach.Category   `json:"category"`
	DataSource reach.DataSource `json:"dataSource"`
	Confidence reach.Confidence `json:"confidence"`
}

// Coverage is the coverage page view-model.
type Coverage struct {
	Items      []CoverageItem     `json:"items"`
	TotalReach int                `json:"totalReach"`
	TierCounts map[reach.Tier]int `json:"tierCounts"`
}

// BuildCoverage annotates the named sheet's rows with reach estimates and
// aggregates totals. Rows without an outlet are skipped.
func BuildCoverage(ds *dataset.Dataset, estimator *reach.Estimator, sheetName string) Coverage {
	cov := Coverage{
		Items:      []CoverageItem{},
		TierCounts: make(map[reach.Tier]int),
	}

	for _, row := range ds.Rows(sheetName) {
		outlet := firstNonEmpty(row, outletColumns)
		if outlet == "" {
			continue
		}

		info := estimator.Estimate(outlet)
		item := CoverageItem{
			Outlet:     outlet,
			Headline:   firstNonEmpty(row, headlineColumns),
			URL:        firstNonEmpty(row, urlColumns),
			Date:       firstNonEmpty(row, dateColumns),
			Reach:      info.EstimatedReach,
			Tier:       info.Tier,
			Category:   info.Category,
			DataSource: info.DataSource,
			Confidence: info.Confidence,
		}
		cov.Items = append(cov.Items, item)
		cov.TotalReach += item.Reach
		cov.TierCounts[item.Tier]++
	}

	return cov
}

func firstNonEmpty(row dataset.Row, columns []string) string {
	for _, col := range columns {
		if v := strings.TrimSpace(row[col]); v != "" {
			return v
		}
	}
	return ""
}
