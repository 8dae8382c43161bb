package compare

import (
	"fmt"

	"github.com/svenskadata/bolagskollen/internal/models"
	"github.com/svenskadata/bolagskollen/internal/services/risk"
)

// Compare builds a side-by-side comparison of two annual reports. Most
// fields follow higher-is-better; leverage and the risk score invert that.
// A field missing on either side gets no winner marker.
func Compare(a, b *models.AnnualReport) *models.Comparison {
	ma, mb := &a.KeyMetrics, &b.KeyMetrics

	comparison := &models.Comparison{
		NameA: a.CompanyName,
		NameB: b.CompanyName,
		OrgA:  a.OrgNumber,
		OrgB:  b.OrgNumber,
	}

	comparison.Size = []models.ComparisonField{
		amountField("Revenue", ma.Revenue, mb.Revenue),
		amountField("Total assets", ma.TotalAssets, mb.TotalAssets),
		amountField("Employees", ma.Employees, mb.Employees),
	}

	comparison.Profit = []models.ComparisonField{
		amountField("Net result", ma.NetResult, mb.NetResult),
		percentField("Profit margin", ma.ProfitMargin, mb.ProfitMargin),
		percentField("Return on equity", ma.ReturnOnEquity, mb.ReturnOnEquity),
	}

	comparison.Finance = []models.ComparisonField{
		amountField("Equity", ma.Equity, mb.Equity),
		percentField("Solvency", ma.Solvency, mb.Solvency),
		leverageField(ma, mb),
	}

	flagsA := risk.Classify(ma, &a.BalanceSheet, nil)
	flagsB := risk.Classify(mb, &b.BalanceSheet, nil)
	comparison.RiskA = riskSummary(flagsA)
	comparison.RiskB = riskSummary(flagsB)

	// Lower risk score wins
	switch {
	case comparison.RiskA.Score < comparison.RiskB.Score:
		comparison.RiskWinner = models.WinnerA
	case comparison.RiskB.Score < comparison.RiskA.Score:
		comparison.RiskWinner = models.WinnerB
	}

	return comparison
}

func riskSummary(flags []models.RiskFlag) models.RiskSummary {
	critical, high := risk.Counts(flags)
	return models.RiskSummary{
		CriticalCount: critical,
		HighCount:     high,
		Score:         risk.Score(flags),
	}
}

func amountField(label string, a, b *int64) models.ComparisonField {
	field := models.ComparisonField{
		Label:  label,
		ValueA: formatAmount(a),
		ValueB: formatAmount(b),
	}
	if a != nil && b != nil {
		switch {
		case *a > *b:
			field.Winner = models.WinnerA
		case *b > *a:
			field.Winner = models.WinnerB
		}
	}
	return field
}

func percentField(label string, a, b *float64) models.ComparisonField {
	field := models.ComparisonField{
		Label:  label,
		ValueA: formatPercent(a),
		ValueB: formatPercent(b),
	}
	if a != nil && b != nil {
		switch {
		case *a > *b:
			field.Winner = models.WinnerA
		case *b > *a:
			field.Winner = models.WinnerB
		}
	}
	return field
}

// leverageField compares debt-to-equity, where lower wins
func leverageField(a, b *models.KeyMetrics) models.ComparisonField {
	la := leverage(a)
	lb := leverage(b)

	field := models.ComparisonField{
		Label:  "Debt-to-equity",
		ValueA: formatLeverage(la),
		ValueB: formatLeverage(lb),
	}
	if la != nil && lb != nil {
		switch {
		case *la < *lb:
			field.Winner = models.WinnerA
		case *lb < *la:
			field.Winner = models.WinnerB
		}
	}
	return field
}

func leverage(m *models.KeyMetrics) *float64 {
	if m.Equity == nil || m.TotalAssets == nil || *m.Equity <= 0 {
		return nil
	}
	return models.Float64Ptr(float64(*m.TotalAssets-*m.Equity) / float64(*m.Equity))
}

func formatAmount(v *int64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d", *v)
}

func formatPercent(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *v)
}

func formatLeverage(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", *v)
}
