package ixbrl

import "fmt"

// MaxPeriods is the number of reporting periods Swedish filings tag in their
// multi-year overview: the current year plus up to three prior years.
const MaxPeriods = 4

// PeriodContext returns the duration-context identifier for a period index,
// 0 being the most recent fiscal year. The document's own context labelling
// is trusted; no calendar arithmetic is done.
func PeriodContext(index int) string {
	return fmt.Sprintf("period%d", index)
}

// BalanceContext returns the instant-context identifier paired with the same
// period index: periodN and balansN refer to the same fiscal year's flow and
// stock data respectively.
func BalanceContext(index int) string {
	return fmt.Sprintf("balans%d", index)
}
