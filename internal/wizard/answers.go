// Package wizard holds the answer set collected by the valuation questionnaire
// and derives the ordered step sequence from it.
package wizard

import (
	"strconv"
	"strings"
)

// Kind is the property category.
type Kind string

const (
	KindUnset     Kind = ""
	KindHouse     Kind = "house"
	KindApartment Kind = "apartment"
)

// Condition is the qualitative renovation state of the property.
type Condition string

const (
	ConditionUnset      Condition = ""
	ConditionGood       Condition = "good"
	ConditionRenovation Condition = "needs_renovation"
)

// Flag is a tri-state yes/no answer where the zero value means unanswered.
type Flag string

const (
	FlagUnset Flag = ""
	FlagYes   Flag = "yes"
	FlagNo    Flag = "no"
)

// Answers is the record of everything the user has told us so far. Numeric
// fields stay as the raw strings the user typed; parsing happens at validation
// and estimation time so that bad input never has to be rejected upfront.
type Answers struct {
	Kind        Kind
	LivingArea  string
	PlotArea    string
	Floor       string
	Layout      string
	Year        string
	Condition   Condition
	EnergyClass string
	Elevator    Flag
	Balcony     Flag
	Garage      Flag
	Pool        Flag
	Garden      Flag
	Address     string
	Region      string
	SubRegion   string
	LocalArea   string
	Phone       string
	// ConsentRGPD is the data-processing consent checkbox.
	ConsentRGPD bool
	// ConsentContact allows a follow-up call about the valuation.
	ConsentContact bool
}

// Form field names accepted by Apply.
const (
	FieldKind           = "kind"
	FieldLivingArea     = "living_area"
	FieldPlotArea       = "plot_area"
	FieldFloor          = "floor"
	FieldLayout         = "layout"
	FieldYear           = "year"
	FieldCondition      = "condition"
	FieldEnergyClass    = "energy_class"
	FieldElevator       = "elevator"
	FieldBalcony        = "balcony"
	FieldGarage         = "garage"
	FieldPool           = "pool"
	FieldGarden         = "garden"
	FieldAddress        = "address"
	FieldRegion         = "region"
	FieldSubRegion      = "sub_region"
	FieldLocalArea      = "local_area"
	FieldPhone          = "phone"
	FieldConsentRGPD    = "consent_rgpd"
	FieldConsentContact = "consent_contact"
)

// Fields lists every form field name accepted by Apply.
var Fields = []string{
	FieldKind,
	FieldLivingArea,
	FieldPlotArea,
	FieldFloor,
	FieldLayout,
	FieldYear,
	FieldCondition,
	FieldEnergyClass,
	FieldElevator,
	FieldBalcony,
	FieldGarage,
	FieldPool,
	FieldGarden,
	FieldAddress,
	FieldRegion,
	FieldSubRegion,
	FieldLocalArea,
	FieldPhone,
	FieldConsentRGPD,
	FieldConsentContact,
}

// Apply returns a copy of a with the named field set to value. Unknown fields
// are ignored. Setting a region clears the dependent sub-region and local
// area, and setting a sub-region clears the local area, so that the location
// hierarchy can never hold a child that does not belong to its parent.
func Apply(a Answers, field, value string) Answers {
	switch field {
	case FieldKind:
		a.Kind = Kind(value)
	case FieldLivingArea:
		a.LivingArea = value
	case FieldPlotArea:
		a.PlotArea = value
	case FieldFloor:
		a.Floor = value
	case FieldLayout:
		a.Layout = value
	case FieldYear:
		a.Year = value
	case FieldCondition:
		a.Condition = Condition(value)
	case FieldEnergyClass:
		a.EnergyClass = value
	case FieldElevator:
		a.Elevator = Flag(value)
	case FieldBalcony:
		a.Balcony = Flag(value)
	case FieldGarage:
		a.Garage = Flag(value)
	case FieldPool:
		a.Pool = Flag(value)
	case FieldGarden:
		a.Garden = Flag(value)
	case FieldAddress:
		a.Address = value
	case FieldRegion:
		if a.Region != value {
			a.SubRegion = ""
			a.LocalArea = ""
		}
		a.Region = value
	case FieldSubRegion:
		if a.SubRegion != value {
			a.LocalArea = ""
		}
		a.SubRegion = value
	case FieldLocalArea:
		a.LocalArea = value
	case FieldPhone:
		a.Phone = value
	case FieldConsentRGPD:
		a.ConsentRGPD = value == "on" || value == "true"
	case FieldConsentContact:
		a.ConsentContact = value == "on" || value == "true"
	}
	return a
}

// ParseNumber parses a user-typed numeric field. It accepts a decimal comma
// since that is what Portuguese users type. The boolean reports whether the
// input was parseable; callers fold failures into a zero sentinel.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ConstructionYear parses the construction year answer. It reports false
// unless the answer is a plain 4-digit number.
func ConstructionYear(a Answers) (int, bool) {
	s := strings.TrimSpace(a.Year)
	if len(s) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return year, true
}

// DigitsOnly strips every non-digit rune, used for phone validation.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
