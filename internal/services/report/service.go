package report

import (
	"bytes"
	"context"

	"github.com/ternarybob/arbor"

	"github.com/svenskadata/bolagskollen/internal/interfaces"
	"github.com/svenskadata/bolagskollen/internal/ixbrl"
	"github.com/svenskadata/bolagskollen/internal/models"
)

// Service fetches filings and turns them into annual reports
type Service struct {
	source interfaces.DocumentSource
	logger arbor.ILogger
}

var _ interfaces.ReportService = (*Service)(nil)

// NewService creates a report service backed by the given document source
func NewService(source interfaces.DocumentSource, logger arbor.ILogger) *Service {
	return &Service{source: source, logger: logger}
}

// Report fetches the filing at the given index and builds its annual report
func (s *Service) Report(ctx context.Context, orgNumber string, index int) (*models.AnnualReport, *interfaces.FilingDocument, error) {
	filing, err := s.source.FetchFiling(ctx, orgNumber, index)
	if err != nil {
		return nil, nil, err
	}

	doc, err := s.parse(filing)
	if err != nil {
		return nil, nil, err
	}

	report := BuildReport(doc, 0)
	s.fillFromFiling(report, filing)

	s.logger.Debug().
		Str("org_number", report.OrgNumber).
		Str("fiscal_year", report.FiscalYear()).
		Int("facts", doc.FactCount()).
		Msg("Annual report built")

	return report, filing, nil
}

// Overview fetches the most recent filing and extracts its multi-year overview
func (s *Service) Overview(ctx context.Context, orgNumber string) (*models.AnnualReport, models.Overview, error) {
	filing, err := s.source.FetchFiling(ctx, orgNumber, 0)
	if err != nil {
		return nil, nil, err
	}

	doc, err := s.parse(filing)
	if err != nil {
		return nil, nil, err
	}

	report := BuildReport(doc, 0)
	s.fillFromFiling(report, filing)

	return report, BuildOverview(doc), nil
}

func (s *Service) parse(filing *interfaces.FilingDocument) (*ixbrl.Document, error) {
	doc, err := ixbrl.Parse(bytes.NewReader(filing.XHTML))
	if err != nil {
		return nil, models.NewAPIError(models.ErrCodeParse, "failed to parse filing document", err)
	}
	return doc, nil
}

// fillFromFiling backfills fiscal period dates from the document list when
// the filing itself left them untagged
func (s *Service) fillFromFiling(report *models.AnnualReport, filing *interfaces.FilingDocument) {
	if report.FiscalYearStart == "" {
		report.FiscalYearStart = filing.Filing.PeriodFrom
	}
	if report.FiscalYearEnd == "" {
		report.FiscalYearEnd = filing.Filing.PeriodTo
	}
}
