package model

// Analysis is the structured result of a coach review of the user's finances.
// It is replaced wholesale on each successful call and never persisted.
type Analysis struct {
	QuickAnalysis string   `json:"quickAnalysis"`
	Alert         string   `json:"alert"`
	ActionPlan    []string `json:"actionPlan"`
	GoldenTip     string   `json:"goldenTip"`
}

// Summary holds derived budget figures. Recomputed on demand, never stored.
type Summary struct {
	TotalExpenses   int64
	Balance         int64
	ProgressPercent float64 // 0-100, unrounded
}
