package risk

import (
	"fmt"

	"github.com/svenskadata/bolagskollen/internal/models"
)

// Severity thresholds for the rule set. Percent values compare against the
// truncated solvency and the derived profit margin.
const (
	solvencyLowLimit  = 20.0
	solvencyWeakLimit = 30.0
	marginLossLimit   = -10.0
	marginThinLimit   = 3.0
	leverageLimit     = 3.0
	declineHighLimit  = -20.0
	declineLimit      = -10.0
)

// Classify runs every rule against the extracted metrics and returns the
// flags that fired, in the fixed rule sequence: critical capital rules first,
// then the high-severity findings, the medium ones, the workforce note and
// finally the revenue trend. Rules are independent: one condition can raise
// several flags. A rule whose inputs were not tagged in the filing is
// skipped, never guessed, except the workforce rule where an untagged
// headcount reads the same as zero.
func Classify(m *models.KeyMetrics, bs *models.BalanceSheet, overview models.Overview) []models.RiskFlag {
	var flags []models.RiskFlag
	add := func(f models.RiskFlag) { flags = append(flags, f) }

	if m.Equity != nil && *m.Equity < 0 {
		add(models.RiskFlag{
			Level:          models.RiskCritical,
			Category:       "Capital structure",
			Description:    "Negative equity",
			Value:          fmt.Sprintf("%d SEK", *m.Equity),
			Recommendation: "The company may be obliged to prepare a control balance sheet. Verify whether liquidation rules have been triggered.",
		})
	}

	if m.Equity != nil && bs != nil && bs.ShareCapital != nil && float64(*m.Equity) < float64(*bs.ShareCapital)/2 {
		add(models.RiskFlag{
			Level:          models.RiskCritical,
			Category:       "Capital structure",
			Description:    "Equity below half the registered share capital",
			Value:          fmt.Sprintf("equity %d SEK, share capital %d SEK", *m.Equity, *bs.ShareCapital),
			Recommendation: "Control balance sheet rules apply when more than half the share capital is consumed. Review the board's duty to act.",
		})
	}

	if m.Solvency != nil && *m.Solvency < 0 {
		add(models.RiskFlag{
			Level:          models.RiskCritical,
			Category:       "Financial strength",
			Description:    "Negative solvency",
			Value:          fmt.Sprintf("%.1f%%", *m.Solvency),
			Recommendation: "Liabilities exceed assets. Assess going-concern risk before extending credit.",
		})
	}

	if m.Solvency != nil && *m.Solvency > 0 && *m.Solvency < solvencyLowLimit {
		add(models.RiskFlag{
			Level:          models.RiskHigh,
			Category:       "Financial strength",
			Description:    "Low solvency",
			Value:          fmt.Sprintf("%.1f%%", *m.Solvency),
			Recommendation: "A thin equity buffer leaves little room for setbacks. Compare with the industry norm.",
		})
	}

	if m.NetResult != nil && *m.NetResult < 0 {
		add(models.RiskFlag{
			Level:          models.RiskHigh,
			Category:       "Profitability",
			Description:    "Loss for the year",
			Value:          fmt.Sprintf("%d SEK", *m.NetResult),
			Recommendation: "Check whether the loss is recurring or a one-off, and how it was financed.",
		})
	}

	if m.ProfitMargin != nil && *m.ProfitMargin < marginLossLimit {
		add(models.RiskFlag{
			Level:          models.RiskHigh,
			Category:       "Profitability",
			Description:    "Heavily negative profit margin",
			Value:          fmt.Sprintf("%.1f%%", *m.ProfitMargin),
			Recommendation: "Operations consume significantly more than they earn. Review the cost base.",
		})
	}

	if m.Equity != nil && m.TotalAssets != nil && *m.Equity > 0 {
		leverage := float64(*m.TotalAssets-*m.Equity) / float64(*m.Equity)
		if leverage > leverageLimit {
			add(models.RiskFlag{
				Level:          models.RiskHigh,
				Category:       "Leverage",
				Description:    "High debt-to-equity ratio",
				Value:          fmt.Sprintf("%.1fx", leverage),
				Recommendation: "Debt is more than three times equity. Assess refinancing and interest-rate exposure.",
			})
		}
	}

	if m.ProfitMargin != nil && *m.ProfitMargin > 0 && *m.ProfitMargin < marginThinLimit {
		add(models.RiskFlag{
			Level:          models.RiskMedium,
			Category:       "Profitability",
			Description:    "Thin profit margin",
			Value:          fmt.Sprintf("%.1f%%", *m.ProfitMargin),
			Recommendation: "Little margin for price pressure or cost increases.",
		})
	}

	if m.Solvency != nil && *m.Solvency >= solvencyLowLimit && *m.Solvency < solvencyWeakLimit {
		add(models.RiskFlag{
			Level:          models.RiskMedium,
			Category:       "Financial strength",
			Description:    "Below-average solvency",
			Value:          fmt.Sprintf("%.1f%%", *m.Solvency),
			Recommendation: "Solvency is under the common 30% benchmark. Watch the trend over coming years.",
		})
	}

	if m.Employees == nil || *m.Employees == 0 {
		value := "not tagged"
		if m.Employees != nil {
			value = "0"
		}
		add(models.RiskFlag{
			Level:          models.RiskInfo,
			Category:       "Workforce",
			Description:    "No employees reported",
			Value:          value,
			Recommendation: "May be a holding or dormant company. Verify that operations match expectations.",
		})
	}

	flags = append(flags, classifyTrend(overview)...)

	return flags
}

// classifyTrend compares the newest and oldest overview periods. It only
// fires when both revenues are tagged and the oldest is positive.
func classifyTrend(overview models.Overview) []models.RiskFlag {
	newest, okNew := overview[0]
	oldest, oldestIdx := oldestPeriod(overview)
	if !okNew || oldestIdx <= 0 {
		return nil
	}
	if newest.Revenue == nil || oldest.Revenue == nil || *oldest.Revenue <= 0 {
		return nil
	}

	change := (float64(*newest.Revenue) - float64(*oldest.Revenue)) / float64(*oldest.Revenue) * 100
	value := fmt.Sprintf("%.1f%% over %d years", change, oldestIdx)

	switch {
	case change < declineHighLimit:
		return []models.RiskFlag{{
			Level:          models.RiskHigh,
			Category:       "Revenue trend",
			Description:    "Sharp revenue decline",
			Value:          value,
			Recommendation: "Revenue has dropped by more than a fifth. Investigate lost customers or markets.",
		}}
	case change < declineLimit:
		return []models.RiskFlag{{
			Level:          models.RiskMedium,
			Category:       "Revenue trend",
			Description:    "Declining revenue",
			Value:          value,
			Recommendation: "A sustained downward trend. Compare against the sector before drawing conclusions.",
		}}
	}
	return nil
}

// oldestPeriod returns the metrics of the highest tagged period index
func oldestPeriod(overview models.Overview) (models.KeyMetrics, int) {
	best := -1
	var metrics models.KeyMetrics
	for idx, m := range overview {
		if idx > best {
			best = idx
			metrics = m
		}
	}
	return metrics, best
}

// Overall reduces a flag list to the single highest severity. An empty list
// means no risks were identified and reports as low.
func Overall(flags []models.RiskFlag) models.RiskLevel {
	if len(flags) == 0 {
		return models.RiskLow
	}
	highest := flags[0].Level
	for _, f := range flags[1:] {
		if f.Level > highest {
			highest = f.Level
		}
	}
	return highest
}

// Score weighs flags into a comparable number: critical findings dominate
func Score(flags []models.RiskFlag) int {
	score := 0
	for _, f := range flags {
		switch f.Level {
		case models.RiskCritical:
			score += 10
		case models.RiskHigh:
			score += 3
		}
	}
	return score
}

// Counts tallies critical and high findings for comparison summaries
func Counts(flags []models.RiskFlag) (critical, high int) {
	for _, f := range flags {
		switch f.Level {
		case models.RiskCritical:
			critical++
		case models.RiskHigh:
			high++
		}
	}
	return critical, high
}
