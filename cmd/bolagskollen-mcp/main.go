package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/svenskadata/bolagskollen/internal/common"
	"github.com/svenskadata/bolagskollen/internal/services/bolagsverket"
	"github.com/svenskadata/bolagskollen/internal/services/export"
	"github.com/svenskadata/bolagskollen/internal/services/report"
	"github.com/svenskadata/bolagskollen/internal/storage"
)

func main() {
	configPath := os.Getenv("BOLAGSKOLLEN_CONFIG")
	if configPath == "" {
		configPath = "bolagskollen.toml"
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = ""
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logging: MCP uses stdout for the STDIO transport
	logger := common.NewStderrLogger("warn")

	if err := config.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	filingCache, err := storage.NewFilingCache(&config.Storage.Badger, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open filing cache")
	}
	defer filingCache.Close()

	client := bolagsverket.NewClient(&config.API, filingCache, logger)
	reports := report.NewService(client, logger)
	exporter := export.NewService(&config.Export, logger)

	mcpServer := server.NewMCPServer(
		"bolagskollen",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Registry tools
	mcpServer.AddTool(createStatusTool(), handleStatus(client, logger))
	mcpServer.AddTool(createCompanyInfoTool(), handleCompanyInfo(client, logger))
	mcpServer.AddTool(createListFilingsTool(), handleListFilings(client, logger))

	// Annual report tools
	mcpServer.AddTool(createKeyMetricsTool(), handleKeyMetrics(reports, exporter, logger))
	mcpServer.AddTool(createBoardTool(), handleBoard(reports, logger))
	mcpServer.AddTool(createTrendsTool(), handleTrends(reports, exporter, logger))

	// Analysis tools
	mcpServer.AddTool(createRiskAnalysisTool(), handleRiskAnalysis(reports, logger))
	mcpServer.AddTool(createCompareTool(), handleCompare(reports, logger))
	mcpServer.AddTool(createBatchLookupTool(), handleBatchLookup(client, reports, logger))

	// Export tools
	mcpServer.AddTool(createExportReportTool(), handleExportReport(reports, exporter, logger))
	mcpServer.AddTool(createDownloadOriginalTool(), handleDownloadOriginal(reports, exporter, logger))

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
