package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svenskadata/bolagskollen/internal/ixbrl"
	"github.com/svenskadata/bolagskollen/internal/models"
)

const sampleFiling = `<!DOCTYPE html>
<html xmlns:ix="http://www.xbrl.org/2013/inlineXBRL">
<body>
  <ix:nonnumeric name="se-cd-base:ForetagetsNamn">Exempelbolaget AB</ix:nonnumeric>
  <ix:nonnumeric name="se-cd-base:Organisationsnummer">556767-1267</ix:nonnumeric>
  <ix:nonnumeric name="se-cd-base:RakenskapsarForstaDag">2024-01-01</ix:nonnumeric>
  <ix:nonnumeric name="se-cd-base:RakenskapsarSistaDag">2024-12-31</ix:nonnumeric>
  <ix:nonnumeric name="se-bol-base:UndertecknandeDatum">2025-02-15</ix:nonnumeric>
  <ix:nonnumeric name="se-cd-base:ForetagetsSate">Stockholm</ix:nonnumeric>

  <ix:nonfraction name="se-gen-base:Nettoomsattning" contextref="period0" scale="3">1 000</ix:nonfraction>
  <ix:nonfraction name="se-gen-base:ResultatEfterFinansiellaPoster" contextref="period0" scale="0">120000</ix:nonfraction>
  <ix:nonfraction name="se-gen-base:AretsResultat" contextref="period0" scale="0">100000</ix:nonfraction>
  <ix:nonfraction name="se-gen-base:SkattAretsResultat" contextref="period0" scale="0">-20000</ix:nonfraction>
  <ix:nonfraction name="se-gen-base:Rorelseresultat" contextref="period0" scale="0">130000</ix:nonfraction>
  <ix:nonfraction name="se-gen-base:MedelantalAnstallda" contextref="period0" scale="0">5</ix:nonfraction>

  <ix:nonfraction name="se-gen-base:Nettoomsattning" contextref="period1" scale="3">800</ix:nonfraction>
  <ix:nonfraction name="se-gen-base:AretsResultat" contextref="period1" scale="0">-50000</ix:nonfraction>

  <ix:nonfraction name="se-gen-base:EgetKapital" contextref="balans0" scale="0">400000</ix:nonfraction>
  <ix:nonfraction name="se-gen-base:AretsResultatEgetKapital" contextref="balans0" scale="0">100000</ix:nonfraction>
  <ix:nonfraction name="se-gen-base:Soliditet" contextref="balans0" scale="0">40,0</ix:nonfraction>
  <ix:nonfraction name="se-gen-base:Aktiekapital" contextref="balans0" scale="0">50000</ix:nonfraction>
  <ix:nonfraction name="se-gen-base:KassaBank" contextref="balans0" scale="0">200000</ix:nonfraction>
  <ix:nonfraction name="se-gen-base:KortfristigaSkulder" contextref="balans0" scale="0">300000</ix:nonfraction>
  <ix:nonfraction name="se-gen-base:SummaEgetKapitalSkulder" contextref="balans0" scale="0">1000000</ix:nonfraction>

  <ix:nonnumeric name="se-bol-base:UnderskriftFaststallelseintygForetradareTilltalsnamn" tupleref="f1">Erik</ix:nonnumeric>
  <ix:nonnumeric name="se-bol-base:UnderskriftFaststallelseintygForetradareEfternamn" tupleref="f1">Karlsson</ix:nonnumeric>
  <ix:nonnumeric name="se-bol-base:UnderskriftFaststallelseintygForetradareForetradarroll" tupleref="f1">Verkställande direktör</ix:nonnumeric>

  <ix:nonnumeric name="se-bol-base:UnderskriftHandlingTilltalsnamn" tupleref="s1">Erik</ix:nonnumeric>
  <ix:nonnumeric name="se-bol-base:UnderskriftHandlingEfternamn" tupleref="s1">Karlsson</ix:nonnumeric>
  <ix:nonnumeric name="se-bol-base:UnderskriftHandlingDatum" tupleref="s1">2025-02-10</ix:nonnumeric>
  <ix:nonnumeric name="se-bol-base:UnderskriftHandlingTilltalsnamn" tupleref="s2">Maria</ix:nonnumeric>
  <ix:nonnumeric name="se-bol-base:UnderskriftHandlingEfternamn" tupleref="s2">Lind</ix:nonnumeric>
  <ix:nonnumeric name="se-bol-base:UnderskriftHandlingTilltalsnamn" tupleref="s3">Maria</ix:nonnumeric>
  <ix:nonnumeric name="se-bol-base:UnderskriftHandlingEfternamn" tupleref="s3">Lind</ix:nonnumeric>

  <ix:nonnumeric name="se-bol-base:UnderskriftRevisionsberattelseRevisorTilltalsnamn" tupleref="r1">Johan</ix:nonnumeric>
  <ix:nonnumeric name="se-bol-base:UnderskriftRevisionsberattelseRevisorEfternamn" tupleref="r1">Berg</ix:nonnumeric>
  <ix:nonnumeric name="se-bol-base:UnderskriftRevisionsberattelseRevisorTitel" tupleref="r1">Auktoriserad revisor</ix:nonnumeric>
</body>
</html>`

func buildSample(t *testing.T) *models.AnnualReport {
	t.Helper()
	doc, err := ixbrl.Parse(strings.NewReader(sampleFiling))
	require.NoError(t, err)
	return BuildReport(doc, 0)
}

func TestBuildReportMetadata(t *testing.T) {
	report := buildSample(t)

	assert.Equal(t, "Exempelbolaget AB", report.CompanyName)
	assert.Equal(t, "556767-1267", report.OrgNumber)
	assert.Equal(t, "2024-01-01", report.FiscalYearStart)
	assert.Equal(t, "2024-12-31", report.FiscalYearEnd)
	assert.Equal(t, "2024", report.FiscalYear())
	assert.Equal(t, "2025-02-15", report.Metadata["signing_date"])
	assert.Equal(t, "Stockholm", report.Metadata["seat"])
}

func TestBuildReportKeyMetrics(t *testing.T) {
	m := buildSample(t).KeyMetrics

	require.NotNil(t, m.Revenue)
	assert.Equal(t, int64(1_000_000), *m.Revenue)
	require.NotNil(t, m.ResultAfterFinancial)
	assert.Equal(t, int64(120_000), *m.ResultAfterFinancial)
	require.NotNil(t, m.NetResult)
	assert.Equal(t, int64(100_000), *m.NetResult)
	require.NotNil(t, m.Equity)
	assert.Equal(t, int64(400_000), *m.Equity)
	require.NotNil(t, m.Employees)
	assert.Equal(t, int64(5), *m.Employees)

	// Soliditet truncates through the integer fact path
	require.NotNil(t, m.Solvency)
	assert.Equal(t, 40.0, *m.Solvency)

	// No Tillgangar fact tagged, so total assets come from the fallback
	require.NotNil(t, m.TotalAssets)
	assert.Equal(t, int64(1_000_000), *m.TotalAssets)
}

func TestBuildReportDerivedRatios(t *testing.T) {
	m := buildSample(t).KeyMetrics

	require.NotNil(t, m.ProfitMargin)
	assert.Equal(t, 10.0, *m.ProfitMargin)
	require.NotNil(t, m.ReturnOnEquity)
	assert.Equal(t, 25.0, *m.ReturnOnEquity)
}

func TestBuildReportPeople(t *testing.T) {
	people := buildSample(t).People

	// Erik appears in two groups under different roles, so both survive.
	// The duplicate Maria tuple collapses to one entry.
	require.Len(t, people, 4)

	assert.Equal(t, models.Person{FirstName: "Erik", LastName: "Karlsson", Role: "Verkställande direktör"}, people[0])
	assert.Equal(t, models.Person{FirstName: "Erik", LastName: "Karlsson", Role: "Styrelseledamot", Date: "2025-02-10"}, people[1])
	assert.Equal(t, models.Person{FirstName: "Maria", LastName: "Lind", Role: "Styrelseledamot"}, people[2])
	assert.Equal(t, models.Person{FirstName: "Johan", LastName: "Berg", Role: "Auktoriserad revisor"}, people[3])
	assert.Equal(t, "Johan Berg", people[3].FullName())
}

func TestBuildReportStatements(t *testing.T) {
	report := buildSample(t)

	require.NotNil(t, report.IncomeStatement.OperatingResult)
	assert.Equal(t, int64(130_000), *report.IncomeStatement.OperatingResult)
	require.NotNil(t, report.IncomeStatement.Tax)
	assert.Equal(t, int64(-20_000), *report.IncomeStatement.Tax)
	require.NotNil(t, report.IncomeStatement.NetResult)
	assert.Equal(t, int64(100_000), *report.IncomeStatement.NetResult)
	assert.Nil(t, report.IncomeStatement.PersonnelCosts)

	require.NotNil(t, report.BalanceSheet.ShareCapital)
	assert.Equal(t, int64(50_000), *report.BalanceSheet.ShareCapital)
	require.NotNil(t, report.BalanceSheet.CashAndBank)
	assert.Equal(t, int64(200_000), *report.BalanceSheet.CashAndBank)
	require.NotNil(t, report.BalanceSheet.NetResult)
	assert.Equal(t, int64(100_000), *report.BalanceSheet.NetResult)
	require.NotNil(t, report.BalanceSheet.TotalEquity)
	assert.Equal(t, int64(400_000), *report.BalanceSheet.TotalEquity)
	assert.Nil(t, report.BalanceSheet.Inventory)
}

func TestBuildReportPriorPeriod(t *testing.T) {
	doc, err := ixbrl.Parse(strings.NewReader(sampleFiling))
	require.NoError(t, err)

	report := BuildReport(doc, 1)

	// Company metadata is period independent
	assert.Equal(t, "Exempelbolaget AB", report.CompanyName)

	m := report.KeyMetrics
	require.NotNil(t, m.Revenue)
	assert.Equal(t, int64(800_000), *m.Revenue)
	require.NotNil(t, m.NetResult)
	assert.Equal(t, int64(-50_000), *m.NetResult)
	require.NotNil(t, m.ProfitMargin)
	assert.Equal(t, -6.25, *m.ProfitMargin)

	// No balans1 facts are tagged in this filing
	assert.Nil(t, m.Equity)
	assert.Nil(t, m.Solvency)
	assert.Nil(t, report.BalanceSheet.TotalEquity)
}

func TestBuildOverview(t *testing.T) {
	doc, err := ixbrl.Parse(strings.NewReader(sampleFiling))
	require.NoError(t, err)

	overview := BuildOverview(doc)

	// Only periods with tagged revenue are included
	require.Len(t, overview, 2)

	require.NotNil(t, overview[0].Revenue)
	assert.Equal(t, int64(1_000_000), *overview[0].Revenue)

	require.NotNil(t, overview[1].Revenue)
	assert.Equal(t, int64(800_000), *overview[1].Revenue)
	require.NotNil(t, overview[1].NetResult)
	assert.Equal(t, int64(-50_000), *overview[1].NetResult)
	require.NotNil(t, overview[1].ProfitMargin)
	assert.Equal(t, -6.25, *overview[1].ProfitMargin)

	_, hasPeriod2 := overview[2]
	assert.False(t, hasPeriod2)
}

func TestBuildReportEmptyDocument(t *testing.T) {
	doc, err := ixbrl.Parse(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)

	report := BuildReport(doc, 0)

	assert.Empty(t, report.CompanyName)
	assert.Nil(t, report.KeyMetrics.Revenue)
	assert.Empty(t, report.People)
	assert.Equal(t, "unknown", report.FiscalYear())
}
