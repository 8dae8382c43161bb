package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/svenskadata/bolagskollen/internal/interfaces"
	"github.com/svenskadata/bolagskollen/internal/models"
	"github.com/svenskadata/bolagskollen/internal/services/compare"
	"github.com/svenskadata/bolagskollen/internal/services/export"
	"github.com/svenskadata/bolagskollen/internal/services/risk"
)

var validate = validator.New()

// batchInput bounds the batch tool: one call never fans out past 20 lookups
type batchInput struct {
	OrgNumbers []string `validate:"required,min=1,max=20,dive,required"`
}

// exportInput constrains the export format to the supported set
type exportInput struct {
	Format string `validate:"required,oneof=markdown json csv pdf"`
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(text)},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return textResult(fmt.Sprintf("Error [%s]: %v", models.CodeOf(err), err))
}

// handleStatus implements the bolagsverket_status tool
func handleStatus(source interfaces.DocumentSource, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := source.Ping(ctx); err != nil {
			logger.Error().Err(err).Msg("Status check failed")
			return errorResult(err), nil
		}
		return textResult("Bolagsverket API is reachable and credentials are accepted."), nil
	}
}

// handleCompanyInfo implements the company_info tool
func handleCompanyInfo(source interfaces.DocumentSource, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orgNumber, err := request.RequireString("org_number")
		if err != nil || orgNumber == "" {
			return textResult("Error: org_number parameter is required"), nil
		}

		info, err := source.CompanyInfo(ctx, orgNumber)
		if err != nil {
			logger.Error().Err(err).Str("org_number", orgNumber).Msg("Company lookup failed")
			return errorResult(err), nil
		}

		return textResult(formatCompanyInfo(info)), nil
	}
}

// handleListFilings implements the list_filings tool
func handleListFilings(source interfaces.DocumentSource, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orgNumber, err := request.RequireString("org_number")
		if err != nil || orgNumber == "" {
			return textResult("Error: org_number parameter is required"), nil
		}

		filings, err := source.ListFilings(ctx, orgNumber)
		if err != nil {
			logger.Error().Err(err).Str("org_number", orgNumber).Msg("Filing list failed")
			return errorResult(err), nil
		}

		return textResult(formatFilings(orgNumber, filings)), nil
	}
}

// handleKeyMetrics implements the get_key_metrics tool
func handleKeyMetrics(reports interfaces.ReportService, exporter *export.Service, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orgNumber, err := request.RequireString("org_number")
		if err != nil || orgNumber == "" {
			return textResult("Error: org_number parameter is required"), nil
		}
		index := request.GetInt("filing_index", 0)

		annualReport, _, err := reports.Report(ctx, orgNumber, index)
		if err != nil {
			logger.Error().Err(err).Str("org_number", orgNumber).Msg("Report build failed")
			return errorResult(err), nil
		}

		return textResult(exporter.Markdown(annualReport)), nil
	}
}

// handleBoard implements the get_board tool
func handleBoard(reports interfaces.ReportService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orgNumber, err := request.RequireString("org_number")
		if err != nil || orgNumber == "" {
			return textResult("Error: org_number parameter is required"), nil
		}
		index := request.GetInt("filing_index", 0)

		annualReport, _, err := reports.Report(ctx, orgNumber, index)
		if err != nil {
			logger.Error().Err(err).Str("org_number", orgNumber).Msg("Report build failed")
			return errorResult(err), nil
		}

		return textResult(formatBoard(annualReport)), nil
	}
}

// handleTrends implements the get_trends tool
func handleTrends(reports interfaces.ReportService, exporter *export.Service, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orgNumber, err := request.RequireString("org_number")
		if err != nil || orgNumber == "" {
			return textResult("Error: org_number parameter is required"), nil
		}

		annualReport, overview, err := reports.Overview(ctx, orgNumber)
		if err != nil {
			logger.Error().Err(err).Str("org_number", orgNumber).Msg("Overview failed")
			return errorResult(err), nil
		}

		if len(overview) == 0 {
			return textResult("No multi-year overview is tagged in the most recent filing."), nil
		}

		return textResult(exporter.MarkdownOverview(annualReport, overview)), nil
	}
}

// handleRiskAnalysis implements the risk_analysis tool
func handleRiskAnalysis(reports interfaces.ReportService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orgNumber, err := request.RequireString("org_number")
		if err != nil || orgNumber == "" {
			return textResult("Error: org_number parameter is required"), nil
		}

		annualReport, overview, err := reports.Overview(ctx, orgNumber)
		if err != nil {
			logger.Error().Err(err).Str("org_number", orgNumber).Msg("Risk analysis failed")
			return errorResult(err), nil
		}

		flags := risk.Classify(&annualReport.KeyMetrics, &annualReport.BalanceSheet, overview)
		return textResult(formatRiskAnalysis(annualReport, flags)), nil
	}
}

// handleCompare implements the compare_companies tool
func handleCompare(reports interfaces.ReportService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orgA, err := request.RequireString("org_number_a")
		if err != nil || orgA == "" {
			return textResult("Error: org_number_a parameter is required"), nil
		}
		orgB, err := request.RequireString("org_number_b")
		if err != nil || orgB == "" {
			return textResult("Error: org_number_b parameter is required"), nil
		}

		reportA, _, err := reports.Report(ctx, orgA, 0)
		if err != nil {
			logger.Error().Err(err).Str("org_number", orgA).Msg("Comparison fetch failed")
			return errorResult(err), nil
		}
		reportB, _, err := reports.Report(ctx, orgB, 0)
		if err != nil {
			logger.Error().Err(err).Str("org_number", orgB).Msg("Comparison fetch failed")
			return errorResult(err), nil
		}

		return textResult(formatComparison(compare.Compare(reportA, reportB))), nil
	}
}

// handleBatchLookup implements the batch_lookup tool
func handleBatchLookup(source interfaces.DocumentSource, reports interfaces.ReportService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input := batchInput{OrgNumbers: request.GetStringSlice("org_numbers", nil)}
		if err := validate.Struct(&input); err != nil {
			return textResult("Error: org_numbers must list between 1 and 20 organisation numbers"), nil
		}
		includeMetrics := request.GetBool("include_metrics", false)

		results := make([]models.BatchResult, 0, len(input.OrgNumbers))
		for _, orgNumber := range input.OrgNumbers {
			results = append(results, batchLookupOne(ctx, source, reports, orgNumber, includeMetrics, logger))
		}

		return textResult(formatBatchResults(results)), nil
	}
}

// batchLookupOne resolves a single batch entry, capturing its failure instead
// of aborting the batch
func batchLookupOne(ctx context.Context, source interfaces.DocumentSource, reports interfaces.ReportService, orgNumber string, includeMetrics bool, logger arbor.ILogger) models.BatchResult {
	result := models.BatchResult{OrgNumber: orgNumber}

	info, err := source.CompanyInfo(ctx, orgNumber)
	if err != nil {
		logger.Warn().Err(err).Str("org_number", orgNumber).Msg("Batch entry failed")
		result.Err = err.Error()
		return result
	}

	result.Name = info.Name
	result.Form = info.OrganisationForm
	result.Status = info.Status

	if includeMetrics {
		annualReport, _, err := reports.Report(ctx, orgNumber, 0)
		if err != nil {
			result.Err = err.Error()
			return result
		}
		result.KeyMetrics = &annualReport.KeyMetrics
	}

	return result
}

// handleExportReport implements the export_report tool
func handleExportReport(reports interfaces.ReportService, exporter *export.Service, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orgNumber, err := request.RequireString("org_number")
		if err != nil || orgNumber == "" {
			return textResult("Error: org_number parameter is required"), nil
		}
		format := request.GetString("format", "markdown")
		if err := validate.Struct(&exportInput{Format: format}); err != nil {
			return textResult("Error: format must be one of markdown, json, csv, pdf"), nil
		}
		index := request.GetInt("filing_index", 0)

		annualReport, _, err := reports.Report(ctx, orgNumber, index)
		if err != nil {
			logger.Error().Err(err).Str("org_number", orgNumber).Msg("Export failed")
			return errorResult(err), nil
		}

		path, err := writeExport(exporter, annualReport, format)
		if err != nil {
			logger.Error().Err(err).Str("format", format).Msg("Export failed")
			return errorResult(err), nil
		}

		return textResult(fmt.Sprintf("Report exported to %s", path)), nil
	}
}

// writeExport renders the report in the requested format and writes it
func writeExport(exporter *export.Service, annualReport *models.AnnualReport, format string) (string, error) {
	switch format {
	case "json":
		out, err := exporter.JSON(annualReport)
		if err != nil {
			return "", err
		}
		return exporter.WriteFile(export.ExportFilename(annualReport, "json"), []byte(out))
	case "csv":
		return exporter.WriteFile(export.ExportFilename(annualReport, "csv"), []byte(exporter.CSV(&annualReport.KeyMetrics)))
	case "pdf":
		pdf, err := exporter.PDF(exporter.Markdown(annualReport))
		if err != nil {
			return "", err
		}
		return exporter.WriteFile(export.ExportFilename(annualReport, "pdf"), pdf)
	default:
		return exporter.WriteFile(export.ExportFilename(annualReport, "md"), []byte(exporter.Markdown(annualReport)))
	}
}

// handleDownloadOriginal implements the download_original tool
func handleDownloadOriginal(reports interfaces.ReportService, exporter *export.Service, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orgNumber, err := request.RequireString("org_number")
		if err != nil || orgNumber == "" {
			return textResult("Error: org_number parameter is required"), nil
		}
		index := request.GetInt("filing_index", 0)

		annualReport, filing, err := reports.Report(ctx, orgNumber, index)
		if err != nil {
			logger.Error().Err(err).Str("org_number", orgNumber).Msg("Download failed")
			return errorResult(err), nil
		}

		zipPath, err := exporter.WriteFile(export.ExportFilename(annualReport, "zip"), filing.Zip)
		if err != nil {
			return errorResult(err), nil
		}
		xhtmlPath, err := exporter.WriteFile(export.ExportFilename(annualReport, "xhtml"), filing.XHTML)
		if err != nil {
			return errorResult(err), nil
		}

		return textResult(fmt.Sprintf("Original filing saved:\n- %s\n- %s", zipPath, xhtmlPath)), nil
	}
}
