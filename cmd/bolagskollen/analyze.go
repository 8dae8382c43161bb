package main

import (
	"context"
	"fmt"

	"github.com/svenskadata/bolagskollen/internal/models"
	"github.com/svenskadata/bolagskollen/internal/services/compare"
	"github.com/svenskadata/bolagskollen/internal/services/risk"
)

const batchLimit = 20

func (a *app) runRisk(ctx context.Context, args []string) error {
	orgNumber, err := requireOrgArg(args, "risk")
	if err != nil {
		return err
	}

	annualReport, overview, err := a.reports.Overview(ctx, orgNumber)
	if err != nil {
		return err
	}

	flags := risk.Classify(&annualReport.KeyMetrics, &annualReport.BalanceSheet, overview)
	fmt.Printf("Risk analysis: %s (%s)\n", annualReport.CompanyName, annualReport.FiscalYear())

	if len(flags) == 0 {
		fmt.Println("No risks identified. All screened indicators are within normal ranges.")
		return nil
	}

	fmt.Printf("Overall level: %s (%d findings)\n\n", risk.Overall(flags), len(flags))
	for _, f := range flags {
		fmt.Printf("[%s] %s: %s", f.Level, f.Category, f.Description)
		if f.Value != "" {
			fmt.Printf(" (%s)", f.Value)
		}
		fmt.Println()
		if f.Recommendation != "" {
			fmt.Printf("    %s\n", f.Recommendation)
		}
	}
	return nil
}

func (a *app) runCompare(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: bolagskollen compare <orgnr> <orgnr>")
	}

	reportA, _, err := a.reports.Report(ctx, args[0], 0)
	if err != nil {
		return err
	}
	reportB, _, err := a.reports.Report(ctx, args[1], 0)
	if err != nil {
		return err
	}

	c := compare.Compare(reportA, reportB)

	fmt.Printf("%s vs %s\n\n", c.NameA, c.NameB)
	printComparisonFields("Size", c, c.Size)
	printComparisonFields("Profitability", c, c.Profit)
	printComparisonFields("Financial strength", c, c.Finance)

	fmt.Printf("Risk score: %d vs %d", c.RiskA.Score, c.RiskB.Score)
	switch c.RiskWinner {
	case models.WinnerA:
		fmt.Printf("  (lower risk: %s)\n", c.NameA)
	case models.WinnerB:
		fmt.Printf("  (lower risk: %s)\n", c.NameB)
	default:
		fmt.Println()
	}
	return nil
}

func printComparisonFields(title string, c *models.Comparison, fields []models.ComparisonField) {
	fmt.Printf("%s:\n", title)
	for _, f := range fields {
		marker := ""
		switch f.Winner {
		case models.WinnerA:
			marker = "  <- " + c.NameA
		case models.WinnerB:
			marker = "  <- " + c.NameB
		}
		fmt.Printf("  %-28s %14s | %-14s%s\n", f.Label, f.ValueA, f.ValueB, marker)
	}
	fmt.Println()
}

func (a *app) runBatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: bolagskollen batch <orgnr>...")
	}
	if len(args) > batchLimit {
		return fmt.Errorf("batch is limited to %d organisations, got %d", batchLimit, len(args))
	}

	failed := 0
	for _, orgNumber := range args {
		info, err := a.client.CompanyInfo(ctx, orgNumber)
		if err != nil {
			a.logger.Warn().Err(err).Str("org_number", orgNumber).Msg("Batch entry failed")
			fmt.Printf("%s: ERROR %v\n", orgNumber, err)
			failed++
			continue
		}

		line := fmt.Sprintf("%s: %s (%s, %s)", orgNumber, info.Name, info.OrganisationForm, info.Status)
		if *withMetrics {
			if annualReport, _, err := a.reports.Report(ctx, orgNumber, 0); err == nil && annualReport.KeyMetrics.Revenue != nil {
				line += fmt.Sprintf(", revenue %d SEK", *annualReport.KeyMetrics.Revenue)
			}
		}
		fmt.Println(line)
	}

	if failed > 0 {
		fmt.Printf("%d of %d lookups failed\n", failed, len(args))
	}
	return nil
}
