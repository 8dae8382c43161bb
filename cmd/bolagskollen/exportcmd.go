package main

import (
	"context"
	"fmt"

	"github.com/svenskadata/bolagskollen/internal/services/export"
)

func (a *app) runExport(ctx context.Context, args []string) error {
	orgNumber, err := requireOrgArg(args, "export")
	if err != nil {
		return err
	}

	annualReport, _, err := a.reports.Report(ctx, orgNumber, *filingIndex)
	if err != nil {
		return err
	}

	var path string
	switch *exportFormat {
	case "markdown", "md":
		path, err = a.exporter.WriteFile(export.ExportFilename(annualReport, "md"), []byte(a.exporter.Markdown(annualReport)))
	case "json":
		var out string
		out, err = a.exporter.JSON(annualReport)
		if err == nil {
			path, err = a.exporter.WriteFile(export.ExportFilename(annualReport, "json"), []byte(out))
		}
	case "csv":
		path, err = a.exporter.WriteFile(export.ExportFilename(annualReport, "csv"), []byte(a.exporter.CSV(&annualReport.KeyMetrics)))
	case "pdf":
		var pdf []byte
		pdf, err = a.exporter.PDF(a.exporter.Markdown(annualReport))
		if err == nil {
			path, err = a.exporter.WriteFile(export.ExportFilename(annualReport, "pdf"), pdf)
		}
	default:
		return fmt.Errorf("unknown format %q: use markdown, json, csv or pdf", *exportFormat)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Report exported to %s\n", path)
	return nil
}

func (a *app) runDownload(ctx context.Context, args []string) error {
	orgNumber, err := requireOrgArg(args, "download")
	if err != nil {
		return err
	}

	annualReport, filing, err := a.reports.Report(ctx, orgNumber, *filingIndex)
	if err != nil {
		return err
	}

	zipPath, err := a.exporter.WriteFile(export.ExportFilename(annualReport, "zip"), filing.Zip)
	if err != nil {
		return err
	}
	xhtmlPath, err := a.exporter.WriteFile(export.ExportFilename(annualReport, "xhtml"), filing.XHTML)
	if err != nil {
		return err
	}

	fmt.Printf("Original filing saved:\n  %s\n  %s\n", zipPath, xhtmlPath)
	return nil
}
