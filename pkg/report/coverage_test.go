package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianpr/pr-tracker/pkg/dataset"
	"github.com/meridianpr/pr-tracker/pkg/reach"
)

func TestBuildCoverage(t *testing.T) {
	ds := dataset.New()
	ds.AddSheet("Coverage", []dataset.Row{
		{"Outlet": "TechCrunch", "Headline": "Launch story", "Link": "https://example.com/tc"},
		{"Outlet": "Random Blog", "Headline": "Review"},
		{"Outlet": "", "Headline": "orphan row"},
	})

	cov := BuildCoverage(ds, reach.NewEstimator(), "Coverage")

	require.Len(t, cov.Items, 2, "rows without an outlet are skipped")
	assert.Equal(t, "TechCrunch", cov.Items[0].Outlet)
	assert.Equal(t, reach.Tier1, cov.Items[0].Tier)
	assert.Equal(t, reach.SourceDatabase, cov.Items[0].DataSource)
	assert.Equal(t, "https://example.com/tc", cov.Items[0].URL)
	assert.Equal(t, reach.Tier3, cov.Items[1].Tier)

	sum := 0
	for _, item := range cov.Items {
		sum += item.Reach
	}
	assert.Equal(t, sum, cov.TotalReach)
	assert.Equal(t, 1, cov.TierCounts[reach.Tier1])
	assert.Equal(t, 1, cov.TierCounts[reach.Tier3])
}

func TestBuildCoverage_HeaderAliases(t *testing.T) {
	ds := dataset.New()
	ds.AddSheet("Coverage", []dataset.Row{
		{"Publication": "Forbes", "Title": "Profile", "URL": "https://example.com/f", "Published": "2026-07-14"},
	})

	cov := BuildCoverage(ds, reach.NewEstimator(), "Coverage")
	require.Len(t, cov.Items, 1)
	assert.Equal(t, "Forbes", cov.Items[0].Outlet)
	assert.Equal(t, "Profile", cov.Items[0].Headline)
	assert.Equal(t, "https://example.com/f", cov.Items[0].URL)
	assert.Equal(t, "2026-07-14", cov.Items[0].Date)
}

func TestBuildCoverage_MissingSheet(t *testing.T) {
	cov := BuildCoverage(dataset.New(), reach.NewEstimator(), "Coverage")
	assert.Empty(t, cov.Items)
	assert.Zero(t, cov.TotalReach)
}
