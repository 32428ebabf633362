package submission_test

import (
	"testing"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/submission"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAnswers(t *testing.T) {
	t.Parallel()
	a := wizard.Answers{
		Kind:           wizard.KindApartment,
		LivingArea:     "80",
		Floor:          "5",
		Layout:         "T2",
		Year:           "2010",
		Condition:      wizard.ConditionGood,
		EnergyClass:    "B",
		Elevator:       wizard.FlagYes,
		Balcony:        wizard.FlagNo,
		Garage:         wizard.FlagYes,
		Address:        "Rua das Flores 12",
		Region:         "Lisboa",
		SubRegion:      "Cascais",
		LocalArea:      "Cascais e Estoril",
		Phone:          "912345678",
		ConsentRGPD:    true,
		ConsentContact: false,
	}

	s := submission.FromAnswers(a, 240000)
	require.NotEmpty(t, s.ID)
	require.False(t, s.CreatedAt.IsZero())
	assert.Equal(t, "Lisboa", s.Distrito)
	assert.Equal(t, "Cascais", s.Concelho)
	assert.Equal(t, "Cascais e Estoril", s.Freguesia)
	assert.Equal(t, "apartment", s.Tipo)
	assert.Equal(t, "T2", s.Tipologia)
	assert.EqualValues(t, 240000, s.Avaliacao)

	values := s.FormValues()
	assert.Equal(t, "Cascais", values.Get("concelho"))
	assert.Equal(t, "240000", values.Get("avaliacao"))
	assert.Equal(t, "true", values.Get("rgpd"))
	assert.Equal(t, "false", values.Get("contacto"))
	assert.Equal(t, "912345678", values.Get("telemovel"))

	// Distinct submissions from the same answers get distinct ids.
	require.NotEqual(t, s.ID, submission.FromAnswers(a, 240000).ID)
}
