package export

import (
	"fmt"
	"strings"

	"github.com/svenskadata/bolagskollen/internal/models"
)

// CSV renders key metrics as a semicolon-separated table, the delimiter
// Swedish spreadsheet locales expect. Untagged metrics render empty cells.
func (s *Service) CSV(metrics *models.KeyMetrics) string {
	var b strings.Builder
	b.WriteString("Metric;Value;Unit\n")

	writeCSVAmount(&b, "Revenue", metrics.Revenue)
	writeCSVAmount(&b, "Result after financial items", metrics.ResultAfterFinancial)
	writeCSVAmount(&b, "Net result", metrics.NetResult)
	writeCSVAmount(&b, "Equity", metrics.Equity)
	writeCSVAmount(&b, "Total assets", metrics.TotalAssets)
	writeCSVPercent(&b, "Solvency", metrics.Solvency)
	writeCSVPercent(&b, "Profit margin", metrics.ProfitMargin)
	writeCSVPercent(&b, "Return on equity", metrics.ReturnOnEquity)

	if metrics.Employees != nil {
		fmt.Fprintf(&b, "Average employees;%d;\n", *metrics.Employees)
	} else {
		b.WriteString("Average employees;;\n")
	}

	return b.String()
}

func writeCSVAmount(b *strings.Builder, label string, v *int64) {
	if v == nil {
		fmt.Fprintf(b, "%s;;SEK\n", label)
		return
	}
	fmt.Fprintf(b, "%s;%d;SEK\n", label, *v)
}

func writeCSVPercent(b *strings.Builder, label string, v *float64) {
	if v == nil {
		fmt.Fprintf(b, "%s;;%%\n", label)
		return
	}
	fmt.Fprintf(b, "%s;%.2f;%%\n", label, *v)
}
