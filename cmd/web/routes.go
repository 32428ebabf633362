package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	session := alice.New(app.sessionManager.LoadAndSave, noSurf, commonContext)

	mux.Handle("/", session.ThenFunc(app.wizardPage))
	mux.Handle("/avaliacao/responder", session.ThenFunc(app.submitAnswer))
	mux.Handle("/avaliacao/atualizar", session.ThenFunc(app.updateAnswers))
	mux.Handle("/avaliacao/voltar", session.ThenFunc(app.goBack))
	mux.Handle("/avaliacao/reiniciar", session.ThenFunc(app.restart))

	mux.Handle("/api/healthy", http.HandlerFunc(app.healthy))

	return app.recoverPanic(app.logRequest(secureHeaders(mux)))
}
