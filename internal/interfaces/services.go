package interfaces

import (
	"context"

	"github.com/svenskadata/bolagskollen/internal/models"
)

// FilingDocument couples a filing reference with its downloaded bytes
type FilingDocument struct {
	Filing models.Filing
	XHTML  []byte
	Zip    []byte
}

// DocumentSource fetches registry data and filing documents for an
// organisation. The production implementation talks to Bolagsverket's
// "Vardefulla datamangder" API; tests substitute fakes.
type DocumentSource interface {
	// Ping checks upstream availability
	Ping(ctx context.Context) error

	// CompanyInfo fetches basic registry data for an organisation
	CompanyInfo(ctx context.Context, orgNumber string) (*models.CompanyInfo, error)

	// ListFilings lists available annual-report filings, most recent first
	ListFilings(ctx context.Context, orgNumber string) ([]models.Filing, error)

	// FetchFiling downloads the filing at the given index (0 = most recent).
	// Returns a FILING_NOT_FOUND error when the index is beyond the available
	// count.
	FetchFiling(ctx context.Context, orgNumber string, index int) (*FilingDocument, error)
}

// FilingCache stores downloaded filing archives so repeated analysis of the
// same organisation does not re-download from the upstream API.
type FilingCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Close() error
}

// ReportService builds annual reports and multi-year overviews from filings
type ReportService interface {
	// Report fetches and builds the annual report at the given filing index
	Report(ctx context.Context, orgNumber string, index int) (*models.AnnualReport, *FilingDocument, error)

	// Overview fetches the most recent filing and extracts the multi-year
	// overview tagged in it
	Overview(ctx context.Context, orgNumber string) (*models.AnnualReport, models.Overview, error)
}

// ExportService renders an annual report into the supported output formats
// and writes export files to the configured output directory.
type ExportService interface {
	Markdown(report *models.AnnualReport) string
	CSV(metrics *models.KeyMetrics) string
	JSON(v any) (string, error)
	PDF(markdown string) ([]byte, error)
	WriteFile(filename string, data []byte) (string, error)
}
