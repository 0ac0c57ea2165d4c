package scoring

// Result is the outcome of comparing one resume with one job description.
type Result struct {
	Score              float64  `json:"score"`
	CoveragePercentage float64  `json:"coverage_percentage"`
	MatchedKeywords    []string `json:"matched_keywords"`
	MissingKeywords    []string `json:"missing_keywords"`
	ConsideredKeywords []string `json:"considered_keywords"`
	Suggestions        []string `json:"suggestions"`
}
