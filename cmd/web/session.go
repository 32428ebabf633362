package main

import (
	"context"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/wizard"
)

const wizardStateSessionKey = "wizardState"
const valuationSessionKey = "valuation"

// wizardState loads the questionnaire state from the session, starting a fresh
// one for new visitors.
func (app *application) wizardState(ctx context.Context) wizard.State {
	state, ok := app.sessionManager.Get(ctx, wizardStateSessionKey).(wizard.State)
	if !ok {
		return wizard.NewState()
	}
	return state
}

func (app *application) saveWizardState(ctx context.Context, state wizard.State) {
	app.sessionManager.Put(ctx, wizardStateSessionKey, state)
}

func (app *application) valuation(ctx context.Context) int64 {
	value, ok := app.sessionManager.Get(ctx, valuationSessionKey).(int64)
	if !ok {
		return 0
	}
	return value
}
