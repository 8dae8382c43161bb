package models

// Winner marks which side of a comparison field is better, if either
type Winner int

const (
	WinnerNone Winner = iota
	WinnerA
	WinnerB
)

// ComparisonField is one metric compared between two companies. Formatted
// values keep their unit suffix; the winner marker follows higher-is-better
// semantics except where noted on Comparison.
type ComparisonField struct {
	Label  string `json:"label"`
	ValueA string `json:"value_a"`
	ValueB string `json:"value_b"`
	Winner Winner `json:"winner"`
}

// RiskSummary is the per-side risk tally used in a comparison.
// Score = 10*critical + 3*high.
type RiskSummary struct {
	CriticalCount int `json:"critical_count"`
	HighCount     int `json:"high_count"`
	Score         int `json:"score"`
}

// Comparison is the full side-by-side result for two organisations
type Comparison struct {
	NameA   string            `json:"name_a"`
	NameB   string            `json:"name_b"`
	OrgA    string            `json:"org_a"`
	OrgB    string            `json:"org_b"`
	Size    []ComparisonField `json:"size"`
	Profit  []ComparisonField `json:"profitability"`
	Finance []ComparisonField `json:"financial_strength"`
	RiskA   RiskSummary       `json:"risk_a"`
	RiskB   RiskSummary       `json:"risk_b"`
	// RiskWinner marks the side with the lower risk score
	RiskWinner Winner `json:"risk_winner"`
}
