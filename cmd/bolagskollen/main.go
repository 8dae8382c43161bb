package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/svenskadata/bolagskollen/internal/common"
	"github.com/svenskadata/bolagskollen/internal/interfaces"
	"github.com/svenskadata/bolagskollen/internal/services/bolagsverket"
	"github.com/svenskadata/bolagskollen/internal/services/export"
	"github.com/svenskadata/bolagskollen/internal/services/report"
	"github.com/svenskadata/bolagskollen/internal/storage"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	configFiles  configPaths
	filingIndex  = flag.Int("index", 0, "Filing index: 0 = most recent")
	exportFormat = flag.String("format", "markdown", "Export format: markdown, json, csv, pdf")
	withMetrics  = flag.Bool("metrics", false, "Include key metrics in batch lookups")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")
)

// app bundles the wired services every command runs against
type app struct {
	client   interfaces.DocumentSource
	reports  interfaces.ReportService
	exporter *export.Service
	logger   arbor.ILogger
}

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: bolagskollen [flags] <command> [args]

Commands:
  status                    Check Bolagsverket API availability
  company <orgnr>           Basic registry data for an organisation
  filings <orgnr>           List filed annual reports
  report <orgnr>            Key metrics and statements from an annual report
  board <orgnr>             Signatories of an annual report
  trends <orgnr>            Multi-year overview from the latest report
  risk <orgnr>              Rule-based risk screening
  compare <orgnr> <orgnr>   Side-by-side comparison of two organisations
  batch <orgnr>...          Look up several organisations (max 20)
  export <orgnr>            Export a report to a file (-format)
  download <orgnr>          Save the original filing (ZIP and XHTML)

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Bolagskollen version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	// Auto-discover config when none is specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("bolagskollen.toml"); err == nil {
			configFiles = append(configFiles, "bolagskollen.toml")
		}
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		arbor.NewLogger().Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	if err := config.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	filingCache, err := storage.NewFilingCache(&config.Storage.Badger, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open filing cache")
	}
	defer filingCache.Close()

	client := bolagsverket.NewClient(&config.API, filingCache, logger)
	a := &app{
		client:   client,
		reports:  report.NewService(client, logger),
		exporter: export.NewService(&config.Export, logger),
		logger:   logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := a.run(ctx, args[0], args[1:]); err != nil {
		logger.Error().Err(err).Str("command", args[0]).Msg("Command failed")
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "status":
		return a.runStatus(ctx)
	case "company":
		return a.runCompany(ctx, args)
	case "filings":
		return a.runFilings(ctx, args)
	case "report":
		return a.runReport(ctx, args)
	case "board":
		return a.runBoard(ctx, args)
	case "trends":
		return a.runTrends(ctx, args)
	case "risk":
		return a.runRisk(ctx, args)
	case "compare":
		return a.runCompare(ctx, args)
	case "batch":
		return a.runBatch(ctx, args)
	case "export":
		return a.runExport(ctx, args)
	case "download":
		return a.runDownload(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// requireOrgArg returns the single organisation number argument
func requireOrgArg(args []string, command string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: bolagskollen %s <orgnr>", command)
	}
	return args[0], nil
}
