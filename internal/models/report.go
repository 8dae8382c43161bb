package models

import "strings"

// KeyMetrics holds the nyckeltal block of an annual report. Amounts are in SEK.
// Nil means the fact was not tagged in the filing; a missing value is valid.
// ProfitMargin and ReturnOnEquity are derived, never extracted.
type KeyMetrics struct {
	Revenue              *int64   `json:"revenue"`                // Nettoomsattning
	ResultAfterFinancial *int64   `json:"result_after_financial"` // Resultat efter finansiella poster
	NetResult            *int64   `json:"net_result"`             // Arets resultat
	Equity               *int64   `json:"equity"`                 // Eget kapital
	TotalAssets          *int64   `json:"total_assets"`           // Balansomslutning
	Solvency             *float64 `json:"solvency"`               // Soliditet, percent
	Employees            *int64   `json:"employees"`              // Medelantal anstallda
	ProfitMargin         *float64 `json:"profit_margin"`          // Vinstmarginal, percent
	ReturnOnEquity       *float64 `json:"return_on_equity"`       // ROE, percent
}

// Person is a signatory extracted from the filing: board members, company
// representatives and auditors.
type Person struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Date      string `json:"date,omitempty"`
}

// FullName returns "First Last", trimmed when either part is missing
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// BalanceSheet is the fixed-shape balance sheet extracted per balance date.
// Every line item is optional; absent items stay nil.
type BalanceSheet struct {
	IntangibleAssets    *int64 `json:"intangible_assets"`
	TangibleAssets      *int64 `json:"tangible_assets"`
	FinancialAssets     *int64 `json:"financial_assets"`
	Inventory           *int64 `json:"inventory"`
	AccountsReceivable  *int64 `json:"accounts_receivable"`
	CashAndBank         *int64 `json:"cash_and_bank"`
	TotalCurrentAssets  *int64 `json:"total_current_assets"`
	TotalAssets         *int64 `json:"total_assets"`
	ShareCapital        *int64 `json:"share_capital"`
	RetainedEarnings    *int64 `json:"retained_earnings"`
	NetResult           *int64 `json:"net_result"`
	TotalEquity         *int64 `json:"total_equity"`
	LongTermLiabilities *int64 `json:"long_term_liabilities"`
	CurrentLiabilities  *int64 `json:"current_liabilities"`
	AccountsPayable     *int64 `json:"accounts_payable"`
	TotalLiabilities    *int64 `json:"total_liabilities"`
}

// IncomeStatement is the fixed-shape income statement extracted per period.
type IncomeStatement struct {
	Revenue              *int64 `json:"revenue"`
	OtherOperatingIncome *int64 `json:"other_operating_income"`
	TotalIncome          *int64 `json:"total_income"`
	GoodsCosts           *int64 `json:"goods_costs"`
	OtherExternalCosts   *int64 `json:"other_external_costs"`
	PersonnelCosts       *int64 `json:"personnel_costs"`
	Depreciation         *int64 `json:"depreciation"`
	OperatingResult      *int64 `json:"operating_result"`
	FinancialIncome      *int64 `json:"financial_income"`
	FinancialCosts       *int64 `json:"financial_costs"`
	ResultAfterFinancial *int64 `json:"result_after_financial"`
	Tax                  *int64 `json:"tax"`
	NetResult            *int64 `json:"net_result"`
}

// AnnualReport aggregates everything extracted from one filing. It is a value
// object: immutable after construction, no back-reference to the document.
type AnnualReport struct {
	OrgNumber       string            `json:"org_number"`
	CompanyName     string            `json:"company_name"`
	FiscalYearStart string            `json:"fiscal_year_start"`
	FiscalYearEnd   string            `json:"fiscal_year_end"`
	KeyMetrics      KeyMetrics        `json:"key_metrics"`
	People          []Person          `json:"people"`
	BalanceSheet    BalanceSheet      `json:"balance_sheet"`
	IncomeStatement IncomeStatement   `json:"income_statement"`
	Notes           map[string]string `json:"notes,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// FiscalYear returns the four-digit year of the fiscal year end, or "unknown"
func (r *AnnualReport) FiscalYear() string {
	if len(r.FiscalYearEnd) >= 4 {
		return r.FiscalYearEnd[:4]
	}
	return "unknown"
}

// Overview maps period index (0 = most recent) to that year's key metrics.
// Periods without tagged revenue are omitted, so gaps are not zeros.
type Overview map[int]KeyMetrics

// Int64Ptr is a small helper for building optional amounts
func Int64Ptr(v int64) *int64 { return &v }

// Float64Ptr is a small helper for building optional percentages
func Float64Ptr(v float64) *float64 { return &v }
