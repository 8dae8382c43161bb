package report

// Taxonomy concept names used to pull facts out of a filing. Swedish filings
// mix taxonomy versions, so lookups take candidate names tried in order;
// matching is case-insensitive substring on the tagged element name.

// Document-level text facts
const (
	conceptCompanyName     = "ForetagetsNamn"
	conceptOrgNumber       = "Organisationsnummer"
	conceptFiscalYearStart = "RakenskapsarForstaDag"
	conceptFiscalYearEnd   = "RakenskapsarSistaDag"
	conceptSigningDate     = "UndertecknandeDatum"
	conceptSeat            = "ForetagetsSate"
)

// signatoryGroup describes one family of signature tags. First and last names
// tagged with a shared tupleref belong to the same person; the role falls back
// to the group default when the filing does not tag one.
type signatoryGroup struct {
	firstName   string
	lastName    string
	role        string
	date        string
	defaultRole string
}

var signatoryGroups = []signatoryGroup{
	{
		firstName:   "UnderskriftFaststallelseintygForetradareTilltalsnamn",
		lastName:    "UnderskriftFaststallelseintygForetradareEfternamn",
		role:        "UnderskriftFaststallelseintygForetradareForetradarroll",
		defaultRole: "Företrädare",
	},
	{
		firstName:   "UnderskriftHandlingTilltalsnamn",
		lastName:    "UnderskriftHandlingEfternamn",
		date:        "UnderskriftHandlingDatum",
		defaultRole: "Styrelseledamot",
	},
	{
		firstName:   "UnderskriftRevisionsberattelseRevisorTilltalsnamn",
		lastName:    "UnderskriftRevisionsberattelseRevisorEfternamn",
		role:        "UnderskriftRevisionsberattelseRevisorTitel",
		defaultRole: "Revisor",
	},
}
