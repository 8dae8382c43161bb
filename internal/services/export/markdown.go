package export

import (
	"fmt"
	"strings"

	"github.com/svenskadata/bolagskollen/internal/models"
	"github.com/svenskadata/bolagskollen/internal/services/risk"
)

// Markdown renders the canonical report document: metadata, key metrics,
// statements, signatories and the risk assessment. This is the same rendering
// the PDF export is generated from.
func (s *Service) Markdown(report *models.AnnualReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", report.CompanyName)
	fmt.Fprintf(&b, "**Organisation number:** %s\n\n", report.OrgNumber)
	fmt.Fprintf(&b, "**Fiscal year:** %s to %s\n\n", report.FiscalYearStart, report.FiscalYearEnd)
	if seat := report.Metadata["seat"]; seat != "" {
		fmt.Fprintf(&b, "**Registered seat:** %s\n\n", seat)
	}
	if date := report.Metadata["signing_date"]; date != "" {
		fmt.Fprintf(&b, "**Signed:** %s\n\n", date)
	}

	writeKeyMetrics(&b, &report.KeyMetrics)
	writeIncomeStatement(&b, &report.IncomeStatement)
	writeBalanceSheet(&b, &report.BalanceSheet)
	writePeople(&b, report.People)
	writeRisks(&b, risk.Classify(&report.KeyMetrics, &report.BalanceSheet, nil))

	return b.String()
}

// MarkdownOverview renders the multi-year overview as a year-by-year table
func (s *Service) MarkdownOverview(report *models.AnnualReport, overview models.Overview) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s: Multi-year overview\n\n", report.CompanyName)
	fmt.Fprintf(&b, "**Organisation number:** %s\n\n", report.OrgNumber)

	b.WriteString("| Years back | Revenue | Net result | Equity | Solvency | Margin |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for i := 0; i < 4; i++ {
		m, ok := overview[i]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			i, sek(m.Revenue), sek(m.NetResult), sek(m.Equity),
			percent(m.Solvency), percent(m.ProfitMargin))
	}
	b.WriteString("\n")

	if change, years, ok := revenueGrowth(overview); ok {
		fmt.Fprintf(&b, "Revenue change over %d years: %.1f%%\n", years, change)
	}

	return b.String()
}

// revenueGrowth compares the newest and oldest overview periods, when both
// tag a revenue and the older one is positive
func revenueGrowth(overview models.Overview) (change float64, years int, ok bool) {
	newest, okNew := overview[0]
	oldestIdx := -1
	for idx := range overview {
		if idx > oldestIdx {
			oldestIdx = idx
		}
	}
	if !okNew || oldestIdx <= 0 {
		return 0, 0, false
	}

	oldest := overview[oldestIdx]
	if newest.Revenue == nil || oldest.Revenue == nil || *oldest.Revenue <= 0 {
		return 0, 0, false
	}

	change = (float64(*newest.Revenue) - float64(*oldest.Revenue)) / float64(*oldest.Revenue) * 100
	return change, oldestIdx, true
}

func writeKeyMetrics(b *strings.Builder, m *models.KeyMetrics) {
	b.WriteString("## Key metrics\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(b, "| Revenue | %s |\n", sek(m.Revenue))
	fmt.Fprintf(b, "| Result after financial items | %s |\n", sek(m.ResultAfterFinancial))
	fmt.Fprintf(b, "| Net result | %s |\n", sek(m.NetResult))
	fmt.Fprintf(b, "| Equity | %s |\n", sek(m.Equity))
	fmt.Fprintf(b, "| Total assets | %s |\n", sek(m.TotalAssets))
	fmt.Fprintf(b, "| Solvency | %s |\n", percent(m.Solvency))
	fmt.Fprintf(b, "| Profit margin | %s |\n", percent(m.ProfitMargin))
	fmt.Fprintf(b, "| Return on equity | %s |\n", percent(m.ReturnOnEquity))
	fmt.Fprintf(b, "| Average employees | %s |\n", count(m.Employees))
	b.WriteString("\n")
}

func writeIncomeStatement(b *strings.Builder, is *models.IncomeStatement) {
	rows := []struct {
		label string
		value *int64
	}{
		{"Revenue", is.Revenue},
		{"Other operating income", is.OtherOperatingIncome},
		{"Total income", is.TotalIncome},
		{"Goods costs", is.GoodsCosts},
		{"Other external costs", is.OtherExternalCosts},
		{"Personnel costs", is.PersonnelCosts},
		{"Depreciation", is.Depreciation},
		{"Operating result", is.OperatingResult},
		{"Financial income", is.FinancialIncome},
		{"Financial costs", is.FinancialCosts},
		{"Result after financial items", is.ResultAfterFinancial},
		{"Tax", is.Tax},
		{"Net result", is.NetResult},
	}
	writeStatement(b, "Income statement", rows)
}

func writeBalanceSheet(b *strings.Builder, bs *models.BalanceSheet) {
	rows := []struct {
		label string
		value *int64
	}{
		{"Intangible assets", bs.IntangibleAssets},
		{"Tangible assets", bs.TangibleAssets},
		{"Financial assets", bs.FinancialAssets},
		{"Inventory", bs.Inventory},
		{"Accounts receivable", bs.AccountsReceivable},
		{"Cash and bank", bs.CashAndBank},
		{"Total current assets", bs.TotalCurrentAssets},
		{"Total assets", bs.TotalAssets},
		{"Share capital", bs.ShareCapital},
		{"Retained earnings", bs.RetainedEarnings},
		{"Net result", bs.NetResult},
		{"Total equity", bs.TotalEquity},
		{"Long-term liabilities", bs.LongTermLiabilities},
		{"Current liabilities", bs.CurrentLiabilities},
		{"Accounts payable", bs.AccountsPayable},
		{"Total liabilities", bs.TotalLiabilities},
	}
	writeStatement(b, "Balance sheet", rows)
}

func writeStatement(b *strings.Builder, title string, rows []struct {
	label string
	value *int64
}) {
	tagged := false
	for _, row := range rows {
		if row.value != nil {
			tagged = true
			break
		}
	}
	if !tagged {
		return
	}

	fmt.Fprintf(b, "## %s\n\n", title)
	b.WriteString("| Item | Amount |\n|---|---|\n")
	for _, row := range rows {
		if row.value == nil {
			continue
		}
		fmt.Fprintf(b, "| %s | %s |\n", row.label, sek(row.value))
	}
	b.WriteString("\n")
}

func writePeople(b *strings.Builder, people []models.Person) {
	if len(people) == 0 {
		return
	}

	b.WriteString("## Signatories\n\n")
	b.WriteString("| Name | Role |\n|---|---|\n")
	for _, p := range people {
		fmt.Fprintf(b, "| %s | %s |\n", p.FullName(), p.Role)
	}
	b.WriteString("\n")
}

func writeRisks(b *strings.Builder, flags []models.RiskFlag) {
	b.WriteString("## Risk assessment\n\n")

	if len(flags) == 0 {
		b.WriteString("No risks identified.\n")
		return
	}

	fmt.Fprintf(b, "**Overall level:** %s\n\n", risk.Overall(flags))
	for _, f := range flags {
		fmt.Fprintf(b, "- **%s** (%s): %s", f.Level, f.Category, f.Description)
		if f.Value != "" {
			fmt.Fprintf(b, " (%s)", f.Value)
		}
		b.WriteString("\n")
		if f.Recommendation != "" {
			fmt.Fprintf(b, "  %s\n", f.Recommendation)
		}
	}
}

// sek formats an amount with thin-space digit grouping, Swedish style
func sek(v *int64) string {
	if v == nil {
		return "n/a"
	}
	return groupDigits(*v) + " SEK"
}

func percent(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *v)
}

func count(v *int64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d", *v)
}

func groupDigits(v int64) string {
	s := fmt.Sprintf("%d", v)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, " ")
	if negative {
		out = "-" + out
	}
	return out
}
