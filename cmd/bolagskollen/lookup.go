package main

import (
	"context"
	"fmt"

	"github.com/svenskadata/bolagskollen/internal/common"
)

func (a *app) runStatus(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Println("Bolagsverket API is reachable and credentials are accepted.")
	return nil
}

func (a *app) runCompany(ctx context.Context, args []string) error {
	orgNumber, err := requireOrgArg(args, "company")
	if err != nil {
		return err
	}

	info, err := a.client.CompanyInfo(ctx, orgNumber)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", info.Name)
	fmt.Printf("  Organisation number: %s\n", common.FormatOrgNumber(info.OrgNumber))
	fmt.Printf("  Form:                %s\n", info.OrganisationForm)
	if info.LegalForm != "" {
		fmt.Printf("  Legal form:          %s\n", info.LegalForm)
	}
	fmt.Printf("  Registered:          %s\n", info.RegistrationDate)
	fmt.Printf("  Status:              %s\n", info.Status)
	if info.DeregistrationDate != "" {
		fmt.Printf("  Deregistered:        %s\n", info.DeregistrationDate)
	}
	if info.Seat != "" {
		fmt.Printf("  Seat:                %s\n", info.Seat)
	}
	if info.Address.City != "" {
		fmt.Printf("  Address:             %s, %s %s\n", info.Address.Street, info.Address.PostCode, info.Address.City)
	}
	if info.BusinessActivity != "" {
		fmt.Printf("  Activity:            %s\n", info.BusinessActivity)
	}
	for _, sni := range info.SNICodes {
		fmt.Printf("  SNI:                 %s %s\n", sni.Code, sni.Text)
	}
	return nil
}

func (a *app) runFilings(ctx context.Context, args []string) error {
	orgNumber, err := requireOrgArg(args, "filings")
	if err != nil {
		return err
	}

	filings, err := a.client.ListFilings(ctx, orgNumber)
	if err != nil {
		return err
	}

	if len(filings) == 0 {
		fmt.Println("No annual reports have been filed digitally.")
		return nil
	}

	fmt.Printf("%d annual reports:\n", len(filings))
	for _, f := range filings {
		fmt.Printf("  [%d] %s to %s (filed %s)\n", f.Index, f.PeriodFrom, f.PeriodTo, f.FiledDate)
	}
	return nil
}
