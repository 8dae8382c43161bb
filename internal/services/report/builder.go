package report

import (
	"github.com/svenskadata/bolagskollen/internal/ixbrl"
	"github.com/svenskadata/bolagskollen/internal/models"
)

// BuildReport extracts the annual report for one period of a parsed filing
// document, period 0 being the filing's own year. Every fact is optional: an
// untagged line item stays nil rather than failing the build.
func BuildReport(doc *ixbrl.Document, period int) *models.AnnualReport {
	report := &models.AnnualReport{
		Metadata: map[string]string{},
	}

	if name, ok := doc.TextFact("", conceptCompanyName); ok {
		report.CompanyName = name
	}
	if orgNr, ok := doc.TextFact("", conceptOrgNumber); ok {
		report.OrgNumber = orgNr
	}
	if start, ok := doc.TextFact("", conceptFiscalYearStart); ok {
		report.FiscalYearStart = start
	}
	if end, ok := doc.TextFact("", conceptFiscalYearEnd); ok {
		report.FiscalYearEnd = end
	}
	if date, ok := doc.TextFact("", conceptSigningDate); ok {
		report.Metadata["signing_date"] = date
	}
	if seat, ok := doc.TextFact("", conceptSeat); ok {
		report.Metadata["seat"] = seat
	}

	report.KeyMetrics = extractKeyMetrics(doc, period)
	CalculateRatios(&report.KeyMetrics)
	report.People = extractPeople(doc)
	report.BalanceSheet = extractBalanceSheet(doc, period)
	report.IncomeStatement = extractIncomeStatement(doc, period)

	return report
}

// BuildOverview extracts key metrics for every tagged period in the filing's
// multi-year overview. Periods without tagged revenue are left out entirely.
func BuildOverview(doc *ixbrl.Document) models.Overview {
	overview := models.Overview{}
	for i := 0; i < ixbrl.MaxPeriods; i++ {
		metrics := extractKeyMetrics(doc, i)
		if metrics.Revenue == nil {
			continue
		}
		CalculateRatios(&metrics)
		overview[i] = metrics
	}
	return overview
}

func extractKeyMetrics(doc *ixbrl.Document, period int) models.KeyMetrics {
	pctx := ixbrl.PeriodContext(period)
	bctx := ixbrl.BalanceContext(period)

	var m models.KeyMetrics
	m.Revenue = numFact(doc, pctx, "Nettoomsattning")
	m.ResultAfterFinancial = numFact(doc, pctx, "ResultatEfterFinansiellaPoster")
	m.NetResult = numFact(doc, pctx, "AretsResultat")
	m.Employees = numFact(doc, pctx, "MedelantalAnstallda")
	m.Equity = numFact(doc, bctx, "EgetKapital")
	m.TotalAssets = numFact(doc, bctx, "Tillgangar", "SummaEgetKapitalSkulder")

	// Soliditet is tagged with decimals but read through the shared integer
	// path, so the stored percentage is truncated
	if v, ok := doc.NumericFact(bctx, "Soliditet"); ok {
		m.Solvency = models.Float64Ptr(float64(v))
	}

	return m
}

func extractPeople(doc *ixbrl.Document) []models.Person {
	var people []models.Person
	seen := map[models.Person]bool{}

	for _, group := range signatoryGroups {
		for _, fact := range doc.TextFacts(group.firstName) {
			person := models.Person{
				FirstName: fact.Text,
				Role:      group.defaultRole,
			}
			if person.FirstName == "" {
				continue
			}

			if fact.TupleRef != "" {
				if last, ok := doc.TextFactByTuple(group.lastName, fact.TupleRef); ok {
					person.LastName = last
				}
				if group.role != "" {
					if role, ok := doc.TextFactByTuple(group.role, fact.TupleRef); ok && role != "" {
						person.Role = role
					}
				}
				if group.date != "" {
					if date, ok := doc.TextFactByTuple(group.date, fact.TupleRef); ok {
						person.Date = date
					}
				}
			}

			key := models.Person{FirstName: person.FirstName, LastName: person.LastName, Role: person.Role}
			if seen[key] {
				continue
			}
			seen[key] = true
			people = append(people, person)
		}
	}

	return people
}

func extractBalanceSheet(doc *ixbrl.Document, period int) models.BalanceSheet {
	ctx := ixbrl.BalanceContext(period)
	return models.BalanceSheet{
		IntangibleAssets:    numFact(doc, ctx, "ImmateriellAnlaggningstillgangar"),
		TangibleAssets:      numFact(doc, ctx, "MateriellaAnlaggningstillgangar"),
		FinancialAssets:     numFact(doc, ctx, "FinansiellaAnlaggningstillgangar"),
		Inventory:           numFact(doc, ctx, "VarulagerMm"),
		AccountsReceivable:  numFact(doc, ctx, "Kundfordringar"),
		CashAndBank:         numFact(doc, ctx, "KassaBank"),
		TotalCurrentAssets:  numFact(doc, ctx, "Omsattningstillgangar"),
		TotalAssets:         numFact(doc, ctx, "Tillgangar"),
		ShareCapital:        numFact(doc, ctx, "Aktiekapital"),
		RetainedEarnings:    numFact(doc, ctx, "BalanseratResultat"),
		NetResult:           numFact(doc, ctx, "AretsResultatEgetKapital"),
		TotalEquity:         numFact(doc, ctx, "EgetKapital"),
		LongTermLiabilities: numFact(doc, ctx, "LangfristigaSkulder"),
		CurrentLiabilities:  numFact(doc, ctx, "KortfristigaSkulder"),
		AccountsPayable:     numFact(doc, ctx, "Leverantorsskulder"),
		TotalLiabilities:    numFact(doc, ctx, "Skulder"),
	}
}

func extractIncomeStatement(doc *ixbrl.Document, period int) models.IncomeStatement {
	ctx := ixbrl.PeriodContext(period)
	return models.IncomeStatement{
		Revenue:              numFact(doc, ctx, "Nettoomsattning"),
		OtherOperatingIncome: numFact(doc, ctx, "OvrigaRorelseintakter"),
		TotalIncome:          numFact(doc, ctx, "RorelseintakterLagerforandringarMm"),
		GoodsCosts:           numFact(doc, ctx, "HandelsvarorKostnader"),
		OtherExternalCosts:   numFact(doc, ctx, "OvrigaExternaKostnader"),
		PersonnelCosts:       numFact(doc, ctx, "Personalkostnader"),
		Depreciation:         numFact(doc, ctx, "AvskrivningarNedskrivningarMateriellaImmateriellaAnlaggningstillgangar"),
		OperatingResult:      numFact(doc, ctx, "Rorelseresultat"),
		FinancialIncome:      numFact(doc, ctx, "FinansiellaIntakter"),
		FinancialCosts:       numFact(doc, ctx, "FinansiellaKostnader"),
		ResultAfterFinancial: numFact(doc, ctx, "ResultatEfterFinansiellaPoster"),
		Tax:                  numFact(doc, ctx, "SkattAretsResultat"),
		NetResult:            numFact(doc, ctx, "AretsResultat"),
	}
}

// numFact wraps the document lookup into an optional amount
func numFact(doc *ixbrl.Document, context string, names ...string) *int64 {
	if v, ok := doc.NumericFact(context, names...); ok {
		return models.Int64Ptr(v)
	}
	return nil
}
