package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svenskadata/bolagskollen/internal/common"
	"github.com/svenskadata/bolagskollen/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(&common.ExportConfig{OutputDir: t.TempDir()}, common.GetLogger())
}

func sampleReport() *models.AnnualReport {
	return &models.AnnualReport{
		OrgNumber:       "5567671267",
		CompanyName:     "Exempelbolaget AB",
		FiscalYearStart: "2024-01-01",
		FiscalYearEnd:   "2024-12-31",
		KeyMetrics: models.KeyMetrics{
			Revenue:      models.Int64Ptr(4_711_000),
			NetResult:    models.Int64Ptr(-250_000),
			Equity:       models.Int64Ptr(400_000),
			TotalAssets:  models.Int64Ptr(1_000_000),
			Solvency:     models.Float64Ptr(40),
			ProfitMargin: models.Float64Ptr(-5.31),
			Employees:    models.Int64Ptr(5),
		},
		People: []models.Person{
			{FirstName: "Anna", LastName: "Svensson", Role: "Styrelseledamot"},
		},
		Metadata: map[string]string{"seat": "Stockholm"},
	}
}

func TestMarkdownReport(t *testing.T) {
	s := newTestService(t)
	md := s.Markdown(sampleReport())

	assert.Contains(t, md, "# Exempelbolaget AB")
	assert.Contains(t, md, "**Organisation number:** 5567671267")
	assert.Contains(t, md, "| Revenue | 4 711 000 SEK |")
	assert.Contains(t, md, "| Net result | -250 000 SEK |")
	assert.Contains(t, md, "| Solvency | 40.0% |")
	assert.Contains(t, md, "| Average employees | 5 |")
	assert.Contains(t, md, "| Anna Svensson | Styrelseledamot |")
	assert.Contains(t, md, "**Registered seat:** Stockholm")

	// The loss shows up in the risk section
	assert.Contains(t, md, "## Risk assessment")
	assert.Contains(t, md, "Loss for the year")
	assert.NotContains(t, md, "No risks identified")
}

func TestMarkdownNoRisks(t *testing.T) {
	s := newTestService(t)
	report := sampleReport()
	report.KeyMetrics = models.KeyMetrics{
		Revenue:      models.Int64Ptr(5_000_000),
		NetResult:    models.Int64Ptr(500_000),
		Equity:       models.Int64Ptr(2_000_000),
		TotalAssets:  models.Int64Ptr(4_000_000),
		Solvency:     models.Float64Ptr(50),
		ProfitMargin: models.Float64Ptr(10),
		Employees:    models.Int64Ptr(12),
	}

	md := s.Markdown(report)
	assert.Contains(t, md, "No risks identified.")
}

func TestMarkdownSkipsUntaggedStatements(t *testing.T) {
	s := newTestService(t)
	report := sampleReport()

	md := s.Markdown(report)
	assert.NotContains(t, md, "## Income statement")
	assert.NotContains(t, md, "## Balance sheet")

	report.IncomeStatement.Revenue = models.Int64Ptr(4_711_000)
	md = s.Markdown(report)
	assert.Contains(t, md, "## Income statement")
}

func TestMarkdownOverview(t *testing.T) {
	s := newTestService(t)
	overview := models.Overview{
		0: {Revenue: models.Int64Ptr(1_000_000), Solvency: models.Float64Ptr(45)},
		2: {Revenue: models.Int64Ptr(1_400_000)},
	}

	md := s.MarkdownOverview(sampleReport(), overview)
	assert.Contains(t, md, "Multi-year overview")
	assert.Contains(t, md, "| 0 | 1 000 000 SEK |")
	assert.Contains(t, md, "| 2 | 1 400 000 SEK |")
	assert.NotContains(t, md, "| 1 |")
	assert.Contains(t, md, "Revenue change over 2 years: -28.6%")
}

func TestMarkdownOverviewNoGrowthWithoutBase(t *testing.T) {
	s := newTestService(t)
	overview := models.Overview{
		0: {Revenue: models.Int64Ptr(1_000_000)},
	}

	md := s.MarkdownOverview(sampleReport(), overview)
	assert.NotContains(t, md, "Revenue change")
}

func TestCSV(t *testing.T) {
	s := newTestService(t)
	csv := s.CSV(&sampleReport().KeyMetrics)

	lines := strings.Split(strings.TrimSpace(csv), "\n")
	assert.Equal(t, "Metric;Value;Unit", lines[0])
	assert.Contains(t, csv, "Revenue;4711000;SEK\n")
	assert.Contains(t, csv, "Solvency;40.00;%\n")
	assert.Contains(t, csv, "Average employees;5;\n")

	// Untagged metrics keep their row with an empty value
	assert.Contains(t, csv, "Return on equity;;%\n")
}

func TestJSON(t *testing.T) {
	s := newTestService(t)
	out, err := s.JSON(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, out, `"org_number": "5567671267"`)
	assert.Contains(t, out, `"revenue": 4711000`)
}

func TestPDF(t *testing.T) {
	s := newTestService(t)
	md := s.Markdown(sampleReport())

	pdf, err := s.PDF(md)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.Greater(t, len(pdf), 1000)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	s := NewService(&common.ExportConfig{OutputDir: filepath.Join(dir, "exports")}, common.GetLogger())

	path, err := s.WriteFile("5567671267_2024.md", []byte("# Report"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Report", string(data))
}

func TestWriteFileSanitizesName(t *testing.T) {
	s := newTestService(t)

	path, err := s.WriteFile("a/b:c d.md", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "a-b-c_d.md", filepath.Base(path))
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "5567671267_2024.pdf", ExportFilename(sampleReport(), "pdf"))
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "0", groupDigits(0))
	assert.Equal(t, "999", groupDigits(999))
	assert.Equal(t, "1 000", groupDigits(1000))
	assert.Equal(t, "4 711 000", groupDigits(4711000))
	assert.Equal(t, "-250 000", groupDigits(-250000))
}
