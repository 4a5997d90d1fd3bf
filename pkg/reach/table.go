package reach

// knownPublications is the curated publication table. It is a slice, not a
// map: the substring fallback scans it in order and the first matching entry
// wins, so iteration order is part of the observable contract. Reach figures
// are estimated monthly audience per outlet; tiers follow TierForReach.
var knownPublications = []PublicationInfo{
	{Name: "TechCrunch", EstimatedReach: 9_200_000, Tier: Tier1, Category: CategoryTech, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "The Verge", EstimatedReach: 8_500_000, Tier: Tier1, Category: CategoryTech, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Wired", EstimatedReach: 5_600_000, Tier: Tier1, Category: CategoryTech, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Ars Technica", EstimatedReach: 2_400_000, Tier: Tier2, Category: CategoryTech, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Engadget", EstimatedReach: 3_100_000, Tier: Tier2, Category: CategoryTech, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "VentureBeat", EstimatedReach: 1_800_000, Tier: Tier2, Category: CategoryTech, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Mashable", EstimatedReach: 6_200_000, Tier: Tier1, Category: CategoryTech, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Gizmodo", EstimatedReach: 4_500_000, Tier: Tier2, Category: CategoryTech, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "ZDNet", EstimatedReach: 2_800_000, Tier: Tier2, Category: CategoryTech, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "TechRadar", EstimatedReach: 28_000_000, Tier: Tier1, Category: CategoryTech, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "The Information", EstimatedReach: 600_000, Tier: Tier2, Category: CategoryTech, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "The New York Times", EstimatedReach: 91_000_000, Tier: Tier1, Category: CategoryGeneral, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "The Washington Post", EstimatedReach: 70_000_000, Tier: Tier1, Category: CategoryGeneral, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "The Guardian", EstimatedReach: 42_000_000, Tier: Tier1, Category: CategoryGeneral, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "USA Today", EstimatedReach: 60_000_000, Tier: Tier1, Category: CategoryGeneral, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Reuters", EstimatedReach: 46_000_000, Tier: Tier1, Category: CategoryGeneral, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Associated Press", EstimatedReach: 49_000_000, Tier: Tier1, Category: CategoryGeneral, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "CNN", EstimatedReach: 120_000_000, Tier: Tier1, Category: CategoryGeneral, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "BBC News", EstimatedReach: 110_000_000, Tier: Tier1, Category: CategoryGeneral, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Axios", EstimatedReach: 14_000_000, Tier: Tier1, Category: CategoryGeneral, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "The Wall Street Journal", EstimatedReach: 42_000_000, Tier: Tier1, Category: CategoryBusiness, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Bloomberg", EstimatedReach: 35_000_000, Tier: Tier1, Category: CategoryBusiness, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Forbes", EstimatedReach: 74_000_000, Tier: Tier1, Category: CategoryBusiness, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Business Insider", EstimatedReach: 48_000_000, Tier: Tier1, Category: CategoryBusiness, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Fortune", EstimatedReach: 9_000_000, Tier: Tier1, Category: CategoryBusiness, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Fast Company", EstimatedReach: 12_000_000, Tier: Tier1, Category: CategoryBusiness, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Inc.", EstimatedReach: 8_000_000, Tier: Tier1, Category: CategoryBusiness, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "CNBC", EstimatedReach: 54_000_000, Tier: Tier1, Category: CategoryBusiness, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "MarketWatch", EstimatedReach: 17_000_000, Tier: Tier1, Category: CategoryBusiness, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Computerworld", EstimatedReach: 1_200_000, Tier: Tier2, Category: CategoryTrade, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "InformationWeek", EstimatedReach: 900_000, Tier: Tier2, Category: CategoryTrade, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "CIO", EstimatedReach: 800_000, Tier: Tier2, Category: CategoryTrade, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "Adweek", EstimatedReach: 2_000_000, Tier: Tier2, Category: CategoryTrade, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "PRWeek", EstimatedReach: 300_000, Tier: Tier3, Category: CategoryTrade, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
	{Name: "SC Magazine", EstimatedReach: 450_000, Tier: Tier3, Category: CategoryTrade, DataSource: SourceDatabase, Confidence: ConfidenceHigh},
}
