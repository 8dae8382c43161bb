package models

// Address is a company's registered postal address
type Address struct {
	Street   string `json:"street"`
	PostCode string `json:"post_code"`
	City     string `json:"city"`
}

// SNICode is a Swedish industry classification code with its plaintext label
type SNICode struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// CompanyInfo holds basic registry data for an organisation
type CompanyInfo struct {
	OrgNumber          string    `json:"org_number"`
	Name               string    `json:"name"`
	OrganisationForm   string    `json:"organisation_form"`
	LegalForm          string    `json:"legal_form,omitempty"`
	RegistrationDate   string    `json:"registration_date"`
	Status             string    `json:"status"` // "Active" or "Deregistered"
	DeregistrationDate string    `json:"deregistration_date,omitempty"`
	Address            Address   `json:"address"`
	BusinessActivity   string    `json:"business_activity,omitempty"`
	SNICodes           []SNICode `json:"sni_codes,omitempty"`
	Seat               string    `json:"seat,omitempty"`
}

// Filing identifies one annual-report document available for an organisation.
// Index 0 is the most recently filed report.
type Filing struct {
	Index      int    `json:"index"`
	DocumentID string `json:"document_id"`
	PeriodFrom string `json:"period_from"`
	PeriodTo   string `json:"period_to"`
	FiledDate  string `json:"filed_date"`
}

// BatchResult is one row of a batch lookup; failures are captured per entity
// so one bad organisation never aborts the rest of the batch.
type BatchResult struct {
	OrgNumber  string      `json:"org_number"`
	Name       string      `json:"name,omitempty"`
	Form       string      `json:"form,omitempty"`
	Status     string      `json:"status,omitempty"`
	KeyMetrics *KeyMetrics `json:"key_metrics,omitempty"`
	Err        string      `json:"error,omitempty"`
}
