package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/errors"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/submission"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/valuation"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/wizard"
)

func currentYear() int {
	return time.Now().Year()
}

// stepErrors maps each step to the message shown when its answer is rejected.
var stepErrors = map[wizard.Step]string{
	wizard.StepType:        "Escolha o tipo de imóvel.",
	wizard.StepLivingArea:  "Indique uma área útil válida.",
	wizard.StepTotalArea:   "A área total tem de ser superior à área útil.",
	wizard.StepFloor:       "Indique o piso.",
	wizard.StepLayout:      "Escolha a tipologia.",
	wizard.StepYear:        "Indique um ano de construção válido.",
	wizard.StepCondition:   "Escolha o estado do imóvel.",
	wizard.StepEnergyClass: "Escolha o certificado energético.",
	wizard.StepPool:        "Indique se tem piscina.",
	wizard.StepGarden:      "Indique se tem jardim.",
	wizard.StepElevator:    "Indique se tem elevador.",
	wizard.StepBalcony:     "Indique se tem varanda.",
	wizard.StepGarage:      "Indique se tem garagem.",
	wizard.StepLocation:    "Escolha o distrito, concelho e freguesia.",
	wizard.StepContact:     "Indique um número de telemóvel válido e aceite o tratamento de dados.",
}

func (app *application) templateData(state wizard.State, errMsg string, value int64) wizardTemplateData {
	number, count := state.Position(currentYear())
	data := wizardTemplateData{ //nolint:exhaustruct
		Answers:    state.Answers,
		Step:       state.Current,
		Error:      errMsg,
		StepNumber: number,
		StepCount:  count,
		IsFirst:    number == 1,
		IsResult:   state.Current == wizard.StepResult,
	}
	if state.Current == wizard.StepLocation {
		data.Regions = app.atlas.Regions()
		data.SubRegions = app.atlas.SubRegions(state.Answers.Region)
		data.LocalAreas = app.atlas.LocalAreas(state.Answers.Region, state.Answers.SubRegion)
	}
	if data.IsResult {
		data.Valuation = formatEuros(value)
	}
	return data
}

func (app *application) wizardPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.notFound(w, r)
		return
	}

	ctx := r.Context()
	state := app.wizardState(ctx).Normalize(currentYear())
	app.saveWizardState(ctx, state)
	app.renderWizard(w, r, app.templateData(state, "", app.valuation(ctx)))
}

// applyForm folds the submitted form fields into the wizard state. Checkboxes
// are absent from the form when unchecked, so on the contact step the consent
// fields are always applied.
func (app *application) applyForm(r *http.Request, state wizard.State) wizard.State {
	year := currentYear()
	for _, field := range wizard.Fields {
		if r.PostForm.Has(field) {
			state = state.Apply(field, r.PostForm.Get(field), year)
		}
	}
	if state.Current == wizard.StepContact {
		state = state.Apply(wizard.FieldConsentRGPD, r.PostForm.Get(wizard.FieldConsentRGPD), year)
		state = state.Apply(wizard.FieldConsentContact, r.PostForm.Get(wizard.FieldConsentContact), year)
	}
	return state
}

func (app *application) submitAnswer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	year := currentYear()
	state := app.applyForm(r, app.wizardState(ctx).Normalize(year))

	valid := state.CanAdvance(year)
	if valid && state.Current == wizard.StepLocation {
		a := state.Answers
		valid = app.atlas.ContainsLocation(a.Region, a.SubRegion, a.LocalArea)
	}
	if !valid {
		app.saveWizardState(ctx, state)
		app.renderWizard(w, r, app.templateData(state, stepErrors[state.Current], 0))
		return
	}

	next := state.Advance(year)
	if state.Current == wizard.StepContact && next.Current == wizard.StepResult {
		app.completeWizard(w, r, next)
		return
	}

	app.saveWizardState(ctx, next)
	app.renderWizard(w, r, app.templateData(next, "", 0))
}

// completeWizard computes the valuation, stores the submission and hands it to
// the forwarder. Storage and forwarding failures never block the result page.
func (app *application) completeWizard(w http.ResponseWriter, r *http.Request, state wizard.State) {
	ctx := r.Context()
	value := valuation.Estimate(state.Answers, app.prices, currentYear())
	app.sessionManager.Put(ctx, valuationSessionKey, value)

	record := submission.FromAnswers(state.Answers, value)
	if err := app.submissions.Insert(ctx, record); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "store submission", errors.SlogError(err))
	}
	app.forwarder.Dispatch(record)

	app.saveWizardState(ctx, state)
	app.renderWizard(w, r, app.templateData(state, "", value))
}

// updateAnswers re-renders the current step after applying the submitted
// fields, without advancing. The location selects use it to cascade.
func (app *application) updateAnswers(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	state := app.applyForm(r, app.wizardState(ctx).Normalize(currentYear()))
	app.saveWizardState(ctx, state)
	app.renderWizard(w, r, app.templateData(state, "", 0))
}

func (app *application) goBack(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	year := currentYear()
	state := app.applyForm(r, app.wizardState(ctx).Normalize(year)).Retreat(year)
	app.saveWizardState(ctx, state)
	app.renderWizard(w, r, app.templateData(state, "", 0))
}

func (app *application) restart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	app.sessionManager.Remove(ctx, valuationSessionKey)
	state := wizard.NewState()
	app.saveWizardState(ctx, state)
	app.renderWizard(w, r, app.templateData(state, "", 0))
}
