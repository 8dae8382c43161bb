package main

import (
	"context"
	"fmt"

	"github.com/svenskadata/bolagskollen/internal/services/report"
)

func (a *app) runReport(ctx context.Context, args []string) error {
	orgNumber, err := requireOrgArg(args, "report")
	if err != nil {
		return err
	}

	annualReport, _, err := a.reports.Report(ctx, orgNumber, *filingIndex)
	if err != nil {
		return err
	}

	fmt.Print(a.exporter.Markdown(annualReport))
	return nil
}

func (a *app) runBoard(ctx context.Context, args []string) error {
	orgNumber, err := requireOrgArg(args, "board")
	if err != nil {
		return err
	}

	annualReport, _, err := a.reports.Report(ctx, orgNumber, *filingIndex)
	if err != nil {
		return err
	}

	if len(annualReport.People) == 0 {
		fmt.Println("No signatories are tagged in this filing.")
		return nil
	}

	fmt.Printf("Signatories of %s (%s):\n", annualReport.CompanyName, annualReport.FiscalYear())
	for _, group := range report.GroupByRole(annualReport.People) {
		fmt.Printf("  %s:\n", group.Category)
		for _, p := range group.People {
			if p.Date != "" {
				fmt.Printf("    %-28s %s (signed %s)\n", p.FullName(), p.Role, p.Date)
				continue
			}
			fmt.Printf("    %-28s %s\n", p.FullName(), p.Role)
		}
	}
	return nil
}

func (a *app) runTrends(ctx context.Context, args []string) error {
	orgNumber, err := requireOrgArg(args, "trends")
	if err != nil {
		return err
	}

	annualReport, overview, err := a.reports.Overview(ctx, orgNumber)
	if err != nil {
		return err
	}

	if len(overview) == 0 {
		fmt.Println("No multi-year overview is tagged in the most recent filing.")
		return nil
	}

	fmt.Print(a.exporter.MarkdownOverview(annualReport, overview))
	return nil
}
