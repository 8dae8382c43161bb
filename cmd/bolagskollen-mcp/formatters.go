package main

import (
	"fmt"
	"strings"

	"github.com/svenskadata/bolagskollen/internal/common"
	"github.com/svenskadata/bolagskollen/internal/models"
	svcreport "github.com/svenskadata/bolagskollen/internal/services/report"
	"github.com/svenskadata/bolagskollen/internal/services/risk"
)

// formatCompanyInfo formats registry data as markdown
func formatCompanyInfo(info *models.CompanyInfo) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", info.Name))
	sb.WriteString(fmt.Sprintf("**Organisation number:** %s\n", common.FormatOrgNumber(info.OrgNumber)))
	sb.WriteString(fmt.Sprintf("**Form:** %s\n", info.OrganisationForm))
	if info.LegalForm != "" {
		sb.WriteString(fmt.Sprintf("**Legal form:** %s\n", info.LegalForm))
	}
	sb.WriteString(fmt.Sprintf("**Registered:** %s\n", info.RegistrationDate))
	sb.WriteString(fmt.Sprintf("**Status:** %s\n", info.Status))
	if info.DeregistrationDate != "" {
		sb.WriteString(fmt.Sprintf("**Deregistered:** %s\n", info.DeregistrationDate))
	}
	if info.Seat != "" {
		sb.WriteString(fmt.Sprintf("**Seat:** %s\n", info.Seat))
	}

	if info.Address.Street != "" || info.Address.City != "" {
		sb.WriteString(fmt.Sprintf("\n**Address:** %s, %s %s\n",
			info.Address.Street, info.Address.PostCode, info.Address.City))
	}

	if info.BusinessActivity != "" {
		sb.WriteString(fmt.Sprintf("\n## Business activity\n\n%s\n", info.BusinessActivity))
	}

	if len(info.SNICodes) > 0 {
		sb.WriteString("\n## Industry codes\n\n")
		for _, sni := range info.SNICodes {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", sni.Code, sni.Text))
		}
	}

	return sb.String()
}

// formatFilings formats the filing list as markdown
func formatFilings(orgNumber string, filings []models.Filing) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Annual reports for %s (%d found)\n\n", orgNumber, len(filings)))

	if len(filings) == 0 {
		sb.WriteString("No annual reports have been filed digitally.\n")
		return sb.String()
	}

	sb.WriteString("| Index | Fiscal period | Filed |\n|---|---|---|\n")
	for _, f := range filings {
		sb.WriteString(fmt.Sprintf("| %d | %s to %s | %s |\n", f.Index, f.PeriodFrom, f.PeriodTo, f.FiledDate))
	}
	sb.WriteString("\nUse the index with get_key_metrics or export_report to read a specific year.\n")

	return sb.String()
}

// formatBoard formats the signatory list as markdown
func formatBoard(report *models.AnnualReport) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Signatories of %s (%s)\n\n", report.CompanyName, report.FiscalYear()))

	if len(report.People) == 0 {
		sb.WriteString("No signatories are tagged in this filing.\n")
		return sb.String()
	}

	for _, group := range svcreport.GroupByRole(report.People) {
		sb.WriteString(fmt.Sprintf("### %s\n\n", group.Category))
		for _, p := range group.People {
			sb.WriteString(fmt.Sprintf("- %s (%s)", p.FullName(), p.Role))
			if p.Date != "" {
				sb.WriteString(fmt.Sprintf(", signed %s", p.Date))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRiskAnalysis formats classifier findings as markdown, grouped into
// severity sections under the overall banner
func formatRiskAnalysis(report *models.AnnualReport, flags []models.RiskFlag) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Risk analysis: %s (%s)\n\n", report.CompanyName, report.FiscalYear()))

	if len(flags) == 0 {
		sb.WriteString("No risks identified. All screened indicators are within normal ranges.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("**Overall level:** %s (%d findings)\n\n", risk.Overall(flags), len(flags)))

	severities := []models.RiskLevel{
		models.RiskCritical, models.RiskHigh, models.RiskMedium, models.RiskLow, models.RiskInfo,
	}
	for _, level := range severities {
		section := false
		for _, f := range flags {
			if f.Level != level {
				continue
			}
			if !section {
				sb.WriteString(fmt.Sprintf("### %s\n\n", level))
				section = true
			}
			sb.WriteString(fmt.Sprintf("- **%s** (%s)", f.Description, f.Category))
			if f.Value != "" {
				sb.WriteString(fmt.Sprintf(": %s", f.Value))
			}
			sb.WriteString("\n")
			if f.Recommendation != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", f.Recommendation))
			}
		}
		if section {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// formatComparison formats a side-by-side comparison as markdown
func formatComparison(c *models.Comparison) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s vs %s\n\n", c.NameA, c.NameB))

	writeComparisonSection(&sb, "Size", c, c.Size)
	writeComparisonSection(&sb, "Profitability", c, c.Profit)
	writeComparisonSection(&sb, "Financial strength", c, c.Finance)

	sb.WriteString("### Risk\n\n")
	sb.WriteString(fmt.Sprintf("| | %s | %s |\n|---|---|---|\n", c.NameA, c.NameB))
	sb.WriteString(fmt.Sprintf("| Critical findings | %d | %d |\n", c.RiskA.CriticalCount, c.RiskB.CriticalCount))
	sb.WriteString(fmt.Sprintf("| High findings | %d | %d |\n", c.RiskA.HighCount, c.RiskB.HighCount))
	sb.WriteString(fmt.Sprintf("| Risk score | %d | %d |\n\n", c.RiskA.Score, c.RiskB.Score))

	switch c.RiskWinner {
	case models.WinnerA:
		sb.WriteString(fmt.Sprintf("Lower risk: **%s**\n", c.NameA))
	case models.WinnerB:
		sb.WriteString(fmt.Sprintf("Lower risk: **%s**\n", c.NameB))
	default:
		sb.WriteString("Both companies carry the same risk score.\n")
	}

	return sb.String()
}

func writeComparisonSection(sb *strings.Builder, title string, c *models.Comparison, fields []models.ComparisonField) {
	sb.WriteString(fmt.Sprintf("### %s\n\n", title))
	sb.WriteString(fmt.Sprintf("| Metric | %s | %s | Better |\n|---|---|---|---|\n", c.NameA, c.NameB))
	for _, f := range fields {
		better := "-"
		switch f.Winner {
		case models.WinnerA:
			better = c.NameA
		case models.WinnerB:
			better = c.NameB
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", f.Label, f.ValueA, f.ValueB, better))
	}
	sb.WriteString("\n")
}

// formatBatchResults formats batch lookup rows as markdown
func formatBatchResults(results []models.BatchResult) string {
	var sb strings.Builder

	failed := 0
	for _, r := range results {
		if r.Err != "" {
			failed++
		}
	}
	sb.WriteString(fmt.Sprintf("## Batch lookup (%d organisations, %d failed)\n\n", len(results), failed))

	sb.WriteString("| Organisation | Name | Form | Status | Result |\n|---|---|---|---|---|\n")
	for _, r := range results {
		if r.Err != "" {
			sb.WriteString(fmt.Sprintf("| %s | - | - | - | %s |\n", r.OrgNumber, r.Err))
			continue
		}
		result := "OK"
		if r.KeyMetrics != nil && r.KeyMetrics.Revenue != nil {
			result = fmt.Sprintf("Revenue %d SEK", *r.KeyMetrics.Revenue)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n", r.OrgNumber, r.Name, r.Form, r.Status, result))
	}

	return sb.String()
}
