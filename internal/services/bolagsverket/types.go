package bolagsverket

import (
	"github.com/svenskadata/bolagskollen/internal/models"
)

// Wire types for the registry endpoints. Only the fields we read are
// declared; the API returns considerably more.

type organisationsResponse struct {
	Organisationer []organisation `json:"organisationer"`
}

type organisation struct {
	Organisationsnamn struct {
		OrganisationsnamnLista []struct {
			Namn string `json:"namn"`
		} `json:"organisationsnamnLista"`
	} `json:"organisationsnamn"`
	Organisationsform struct {
		Klartext string `json:"klartext"`
	} `json:"organisationsform"`
	JuridiskForm struct {
		Klartext string `json:"klartext"`
	} `json:"juridiskForm"`
	Organisationsdatum struct {
		Registreringsdatum string `json:"registreringsdatum"`
	} `json:"organisationsdatum"`
	AvregistreradOrganisation struct {
		Avregistreringsdatum string `json:"avregistreringsdatum"`
	} `json:"avregistreradOrganisation"`
	PostadressOrganisation struct {
		Postadress struct {
			Utdelningsadress string `json:"utdelningsadress"`
			Postnummer       string `json:"postnummer"`
			Postort          string `json:"postort"`
		} `json:"postadress"`
	} `json:"postadressOrganisation"`
	NaringsgrenOrganisation struct {
		SNI []struct {
			Kod      string `json:"kod"`
			Klartext string `json:"klartext"`
		} `json:"sni"`
	} `json:"naringsgrenOrganisation"`
	Verksamhetsbeskrivning struct {
		Beskrivning string `json:"beskrivning"`
	} `json:"verksamhetsbeskrivning"`
	Sate struct {
		Lan string `json:"lan"`
	} `json:"sate"`
}

func (o *organisation) toCompanyInfo(orgNumber string) *models.CompanyInfo {
	info := &models.CompanyInfo{
		OrgNumber:        orgNumber,
		OrganisationForm: o.Organisationsform.Klartext,
		LegalForm:        o.JuridiskForm.Klartext,
		RegistrationDate: o.Organisationsdatum.Registreringsdatum,
		Status:           "Active",
		Address: models.Address{
			Street:   o.PostadressOrganisation.Postadress.Utdelningsadress,
			PostCode: o.PostadressOrganisation.Postadress.Postnummer,
			City:     o.PostadressOrganisation.Postadress.Postort,
		},
		BusinessActivity: o.Verksamhetsbeskrivning.Beskrivning,
		Seat:             o.Sate.Lan,
	}

	if len(o.Organisationsnamn.OrganisationsnamnLista) > 0 {
		info.Name = o.Organisationsnamn.OrganisationsnamnLista[0].Namn
	}

	if dereg := o.AvregistreradOrganisation.Avregistreringsdatum; dereg != "" {
		info.Status = "Deregistered"
		info.DeregistrationDate = dereg
	}

	for _, sni := range o.NaringsgrenOrganisation.SNI {
		info.SNICodes = append(info.SNICodes, models.SNICode{
			Code: sni.Kod,
			Text: sni.Klartext,
		})
	}

	return info
}

type dokumentlistaResponse struct {
	Dokument []dokument `json:"dokument"`
}

type dokument struct {
	DokumentID       string `json:"dokumentId"`
	Rakenskapsperiod struct {
		Fran string `json:"fran"`
		Till string `json:"till"`
	} `json:"rakenskapsperiod"`
	Inlamningsdatum string `json:"inlamningsdatum"`
}
