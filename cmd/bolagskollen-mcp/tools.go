package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createStatusTool returns the bolagsverket_status tool definition
func createStatusTool() mcp.Tool {
	return mcp.NewTool("bolagsverket_status",
		mcp.WithDescription("Check that the Bolagsverket API is reachable and credentials are accepted"),
	)
}

// createCompanyInfoTool returns the company_info tool definition
func createCompanyInfoTool() mcp.Tool {
	return mcp.NewTool("company_info",
		mcp.WithDescription("Look up basic registry data for a Swedish organisation: name, form, address, industry codes and status"),
		mcp.WithString("org_number",
			mcp.Required(),
			mcp.Description("Organisation number, 10 or 12 digits, hyphen optional (e.g. 556767-1267)"),
		),
	)
}

// createListFilingsTool returns the list_filings tool definition
func createListFilingsTool() mcp.Tool {
	return mcp.NewTool("list_filings",
		mcp.WithDescription("List the annual reports filed with Bolagsverket for an organisation, most recent first"),
		mcp.WithString("org_number",
			mcp.Required(),
			mcp.Description("Organisation number, 10 or 12 digits"),
		),
	)
}

// createKeyMetricsTool returns the get_key_metrics tool definition
func createKeyMetricsTool() mcp.Tool {
	return mcp.NewTool("get_key_metrics",
		mcp.WithDescription("Extract key metrics, statements and signatories from a filed annual report"),
		mcp.WithString("org_number",
			mcp.Required(),
			mcp.Description("Organisation number, 10 or 12 digits"),
		),
		mcp.WithNumber("filing_index",
			mcp.Description("Which filing to read: 0 = most recent (default)"),
		),
	)
}

// createBoardTool returns the get_board tool definition
func createBoardTool() mcp.Tool {
	return mcp.NewTool("get_board",
		mcp.WithDescription("List board members, company representatives and auditors who signed the annual report"),
		mcp.WithString("org_number",
			mcp.Required(),
			mcp.Description("Organisation number, 10 or 12 digits"),
		),
		mcp.WithNumber("filing_index",
			mcp.Description("Which filing to read: 0 = most recent (default)"),
		),
	)
}

// createTrendsTool returns the get_trends tool definition
func createTrendsTool() mcp.Tool {
	return mcp.NewTool("get_trends",
		mcp.WithDescription("Show the multi-year overview tagged in the most recent annual report: up to four years of key metrics"),
		mcp.WithString("org_number",
			mcp.Required(),
			mcp.Description("Organisation number, 10 or 12 digits"),
		),
	)
}

// createRiskAnalysisTool returns the risk_analysis tool definition
func createRiskAnalysisTool() mcp.Tool {
	return mcp.NewTool("risk_analysis",
		mcp.WithDescription("Run rule-based risk screening on the most recent annual report: capital structure, solvency, profitability, leverage and revenue trend"),
		mcp.WithString("org_number",
			mcp.Required(),
			mcp.Description("Organisation number, 10 or 12 digits"),
		),
	)
}

// createCompareTool returns the compare_companies tool definition
func createCompareTool() mcp.Tool {
	return mcp.NewTool("compare_companies",
		mcp.WithDescription("Compare two organisations side by side on size, profitability, financial strength and risk"),
		mcp.WithString("org_number_a",
			mcp.Required(),
			mcp.Description("First organisation number"),
		),
		mcp.WithString("org_number_b",
			mcp.Required(),
			mcp.Description("Second organisation number"),
		),
	)
}

// createBatchLookupTool returns the batch_lookup tool definition
func createBatchLookupTool() mcp.Tool {
	return mcp.NewTool("batch_lookup",
		mcp.WithDescription("Look up registry data and key metrics for up to 20 organisations in one call. Failures are reported per organisation."),
		mcp.WithArray("org_numbers",
			mcp.WithStringItems(),
			mcp.Required(),
			mcp.Description("Organisation numbers to look up (max 20)"),
		),
		mcp.WithBoolean("include_metrics",
			mcp.Description("Also fetch key metrics from the latest annual report (slower; default false)"),
		),
	)
}

// createExportReportTool returns the export_report tool definition
func createExportReportTool() mcp.Tool {
	return mcp.NewTool("export_report",
		mcp.WithDescription("Export an annual report to a file in the configured output directory"),
		mcp.WithString("org_number",
			mcp.Required(),
			mcp.Description("Organisation number, 10 or 12 digits"),
		),
		mcp.WithString("format",
			mcp.Required(),
			mcp.Description("Export format: markdown, json, csv or pdf"),
		),
		mcp.WithNumber("filing_index",
			mcp.Description("Which filing to export: 0 = most recent (default)"),
		),
	)
}

// createDownloadOriginalTool returns the download_original tool definition
func createDownloadOriginalTool() mcp.Tool {
	return mcp.NewTool("download_original",
		mcp.WithDescription("Download the original filing from Bolagsverket and save both the ZIP archive and the XHTML document"),
		mcp.WithString("org_number",
			mcp.Required(),
			mcp.Description("Organisation number, 10 or 12 digits"),
		),
		mcp.WithNumber("filing_index",
			mcp.Description("Which filing to download: 0 = most recent (default)"),
		),
	)
}
