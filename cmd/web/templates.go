package main

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/contexthelpers"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/errors"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/wizard"
	"github.com/GMRZ11/avaliacao-imobiliaria/ui"
)

type wizardTemplateData struct {
	Answers    wizard.Answers
	Step       wizard.Step
	Error      string
	StepNumber int
	StepCount  int
	IsFirst    bool
	IsResult   bool
	Regions    []string
	SubRegions []string
	LocalAreas []string
	Valuation  string
}

// The comparison helpers below keep the templates free of type conversions
// between the typed answer fields and their form values.

func (d wizardTemplateData) KindIs(kind string) bool {
	return string(d.Answers.Kind) == kind
}

func (d wizardTemplateData) ConditionIs(condition string) bool {
	return string(d.Answers.Condition) == condition
}

func (d wizardTemplateData) LayoutIs(layout string) bool {
	return d.Answers.Layout == layout
}

func (d wizardTemplateData) EnergyClassIs(class string) bool {
	return d.Answers.EnergyClass == class
}

func (d wizardTemplateData) RegionIs(region string) bool {
	return d.Answers.Region == region
}

func (d wizardTemplateData) SubRegionIs(subRegion string) bool {
	return d.Answers.SubRegion == subRegion
}

func (d wizardTemplateData) LocalAreaIs(localArea string) bool {
	return d.Answers.LocalArea == localArea
}

func (d wizardTemplateData) FlagIs(field, value string) bool {
	var flag wizard.Flag
	switch field {
	case wizard.FieldElevator:
		flag = d.Answers.Elevator
	case wizard.FieldBalcony:
		flag = d.Answers.Balcony
	case wizard.FieldGarage:
		flag = d.Answers.Garage
	case wizard.FieldPool:
		flag = d.Answers.Pool
	case wizard.FieldGarden:
		flag = d.Answers.Garden
	}
	return string(flag) == value
}

// pageTemplate returns the template set for one wizard step.
//
// Each step defines a template named "step" which base.gohtml and wizard.gohtml
// wrap for full-page and htmx partial rendering respectively.
func pageTemplate(step wizard.Step) (*template.Template, error) {
	// We need to initialize the FuncMap before parsing the files. These will be overridden in the render function.
	t, err := template.New(string(step)).Funcs(template.FuncMap{
		"csrf": func() string {
			panic("not implemented")
		},
	}).ParseFS(ui.Files,
		"templates/base.gohtml",
		"templates/wizard.gohtml",
		fmt.Sprintf("templates/steps/%s.gohtml", step),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse step templates", slog.String("step", string(step)))
	}
	return t, nil
}

// renderWizard writes the wizard for the given step, as an htmx partial when
// the request came from htmx and as a full page otherwise.
func (app *application) renderWizard(w http.ResponseWriter, r *http.Request, data wizardTemplateData) {
	t, err := pageTemplate(data.Step)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	ctx := r.Context()
	csrf := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=\"%s\"/>", contexthelpers.CSRFToken(ctx))
	t.Funcs(template.FuncMap{
		"csrf": func() template.HTML {
			return template.HTML(csrf) //nolint:gosec // the token is not user-provided.
		},
	})

	templateName := "base"
	if app.htmx.NewHandler(w, r).IsHxRequest() {
		templateName = "wizard"
	}

	buf := new(bytes.Buffer)
	if err = t.ExecuteTemplate(buf, templateName, data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template", slog.String("template", templateName)))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// formatEuros renders a whole-euro amount with thousands separators, e.g.
// "240 000 €".
func formatEuros(value int64) string {
	digits := strconv.FormatInt(value, 10)
	negative := false
	if digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	formatted := ""
	for i, group := range groups {
		if i > 0 {
			formatted += " "
		}
		formatted += group
	}
	if negative {
		formatted = "-" + formatted
	}
	return formatted + " €"
}
