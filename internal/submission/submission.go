// Package submission records completed valuations and forwards them to the
// external spreadsheet endpoint.
package submission

import (
	"net/url"
	"strconv"
	"time"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/wizard"
	"github.com/google/uuid"
)

// Submission is a flattened answer set plus the computed valuation. The field
// names follow the columns of the target spreadsheet, which is why they are in
// Portuguese.
type Submission struct {
	ID                    string    `db:"id"`
	Distrito              string    `db:"distrito"`
	Concelho              string    `db:"concelho"`
	Freguesia             string    `db:"freguesia"`
	Morada                string    `db:"morada"`
	Tipo                  string    `db:"tipo"`
	AreaUtil              string    `db:"area_util"`
	AreaTotal             string    `db:"area_total"`
	Piso                  string    `db:"piso"`
	Tipologia             string    `db:"tipologia"`
	AnoConstrucao         string    `db:"ano_construcao"`
	Estado                string    `db:"estado"`
	CertificadoEnergetico string    `db:"certificado_energetico"`
	Elevador              string    `db:"elevador"`
	Varanda               string    `db:"varanda"`
	Garagem               string    `db:"garagem"`
	Piscina               string    `db:"piscina"`
	Jardim                string    `db:"jardim"`
	Telemovel             string    `db:"telemovel"`
	ConsentimentoRGPD     bool      `db:"rgpd"`
	ConsentimentoContacto bool      `db:"contacto"`
	Avaliacao             int64     `db:"avaliacao"`
	CreatedAt             time.Time `db:"created_at"`
}

// FromAnswers flattens a completed answer set into a Submission.
func FromAnswers(a wizard.Answers, value int64) Submission {
	return Submission{
		ID:                    uuid.NewString(),
		Distrito:              a.Region,
		Concelho:              a.SubRegion,
		Freguesia:             a.LocalArea,
		Morada:                a.Address,
		Tipo:                  string(a.Kind),
		AreaUtil:              a.LivingArea,
		AreaTotal:             a.PlotArea,
		Piso:                  a.Floor,
		Tipologia:             a.Layout,
		AnoConstrucao:         a.Year,
		Estado:                string(a.Condition),
		CertificadoEnergetico: a.EnergyClass,
		Elevador:              string(a.Elevator),
		Varanda:               string(a.Balcony),
		Garagem:               string(a.Garage),
		Piscina:               string(a.Pool),
		Jardim:                string(a.Garden),
		Telemovel:             a.Phone,
		ConsentimentoRGPD:     a.ConsentRGPD,
		ConsentimentoContacto: a.ConsentContact,
		Avaliacao:             value,
		CreatedAt:             time.Now().UTC(),
	}
}

// FormValues encodes the submission as the flat key-value payload the sheet
// endpoint expects.
func (s Submission) FormValues() url.Values {
	return url.Values{
		"distrito":               {s.Distrito},
		"concelho":               {s.Concelho},
		"freguesia":              {s.Freguesia},
		"morada":                 {s.Morada},
		"tipo":                   {s.Tipo},
		"area_util":              {s.AreaUtil},
		"area_total":             {s.AreaTotal},
		"piso":                   {s.Piso},
		"tipologia":              {s.Tipologia},
		"ano_construcao":         {s.AnoConstrucao},
		"estado":                 {s.Estado},
		"certificado_energetico": {s.CertificadoEnergetico},
		"elevador":               {s.Elevador},
		"varanda":                {s.Varanda},
		"garagem":                {s.Garagem},
		"piscina":                {s.Piscina},
		"jardim":                 {s.Jardim},
		"telemovel":              {s.Telemovel},
		"rgpd":                   {strconv.FormatBool(s.ConsentimentoRGPD)},
		"contacto":               {strconv.FormatBool(s.ConsentimentoContacto)},
		"avaliacao":              {strconv.FormatInt(s.Avaliacao, 10)},
	}
}
