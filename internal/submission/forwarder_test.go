package submission_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/submission"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/testhelpers"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwarder_Dispatch(t *testing.T) {
	t.Parallel()
	received := make(chan map[string]string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		fields := make(map[string]string, len(r.PostForm))
		for key := range r.PostForm {
			fields[key] = r.PostForm.Get(key)
		}
		received <- fields
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	forwarder := submission.NewForwarder(server.URL, testhelpers.NewLogger(io.Discard))
	s := submission.FromAnswers(wizard.Answers{
		Kind:       wizard.KindApartment,
		LivingArea: "80",
		Region:     "Lisboa",
		SubRegion:  "Cascais",
		LocalArea:  "Cascais e Estoril",
		Phone:      "912345678",
	}, 240000)
	forwarder.Dispatch(s)
	forwarder.Wait()

	fields := <-received
	assert.Equal(t, "apartment", fields["tipo"])
	assert.Equal(t, "Cascais", fields["concelho"])
	assert.Equal(t, "240000", fields["avaliacao"])
}

func TestForwarder_failureIsSwallowed(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	forwarder := submission.NewForwarder(server.URL, testhelpers.NewLogger(io.Discard))
	// Dispatch must not panic or surface the failure.
	forwarder.Dispatch(submission.FromAnswers(wizard.Answers{Kind: wizard.KindHouse}, 0))
	forwarder.Wait()
}

func TestForwarder_disabledEndpoint(t *testing.T) {
	t.Parallel()
	forwarder := submission.NewForwarder("", testhelpers.NewLogger(io.Discard))
	forwarder.Dispatch(submission.FromAnswers(wizard.Answers{Kind: wizard.KindHouse}, 0))
	forwarder.Wait()
}
