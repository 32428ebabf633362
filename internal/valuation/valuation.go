// Package valuation computes the estimated market value of a property from a
// completed answer set and the price reference table.
package valuation

import (
	"math"
	"strconv"
	"strings"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/geodata"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/wizard"
)

// Apartment model: the base value is scaled by a single additive adjustment.
const apartmentBaseFactor = 1.25

// House model: living area counts at a higher weight than the rest of the plot.
const (
	houseLivingWeight = 0.75
	housePlotWeight   = 0.35
)

// Estimate returns the estimated value in whole euros, rounded to the nearest
// unit. It returns 0 when the property kind is not recognized. currentYear
// anchors the age calculations.
//
// Unparseable numeric answers fall back to zero rather than failing: by the
// time an answer set reaches this function it has passed step validation, and
// the original submission flow never surfaced estimation errors to the user.
func Estimate(a wizard.Answers, prices geodata.PriceTable, currentYear int) int64 {
	pricePerSqm := prices.Lookup(a.SubRegion)

	switch a.Kind {
	case wizard.KindApartment:
		return estimateApartment(a, pricePerSqm, currentYear)
	case wizard.KindHouse:
		return estimateHouse(a, pricePerSqm, currentYear)
	case wizard.KindUnset:
	}
	return 0
}

func estimateApartment(a wizard.Answers, pricePerSqm float64, currentYear int) int64 {
	livingArea := numberOrZero(a.LivingArea)
	base := livingArea * apartmentBaseFactor * pricePerSqm

	adjustment := layoutAdjustment(a.Layout) +
		ageAdjustment(a, currentYear) +
		conditionAdjustment(a.Condition) +
		energyAdjustment(a.EnergyClass) +
		floorAdjustment(a) +
		elevatorBonus(a) +
		amenityAdjustment(a.Garage, 0.05) +
		amenityAdjustment(a.Balcony, 0.02)

	return int64(math.Round(base * (1 + adjustment)))
}

func estimateHouse(a wizard.Answers, pricePerSqm float64, currentYear int) int64 {
	livingArea := numberOrZero(a.LivingArea)
	totalAreaAnswer := a.PlotArea
	if totalAreaAnswer == "" {
		totalAreaAnswer = a.LivingArea
	}
	totalArea := numberOrZero(totalAreaAnswer)

	baseArea := livingArea*houseLivingWeight + (totalArea-livingArea)*housePlotWeight

	factors := layoutFactor(a.Layout) *
		ageFactor(a, currentYear) *
		conditionFactor(a.Condition) *
		amenityFactor(a.Pool, 1.03) *
		amenityFactor(a.Garden, 1.005) *
		energyFactor(a.EnergyClass)

	return int64(math.Round(baseArea * pricePerSqm * factors))
}

// layoutRooms parses a typology code such as "T3" or "T4+" into a room count.
func layoutRooms(layout string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(layout))
	s = strings.TrimSuffix(s, "+")
	if !strings.HasPrefix(s, "T") {
		return 0, false
	}
	rooms, err := strconv.Atoi(s[1:])
	if err != nil || rooms < 0 {
		return 0, false
	}
	return rooms, true
}

func layoutAdjustment(layout string) float64 {
	rooms, ok := layoutRooms(layout)
	if !ok {
		return 0
	}
	switch {
	case rooms == 0:
		return -0.15
	case rooms == 1:
		return -0.10
	case rooms == 2:
		return -0.05
	case rooms == 3:
		return 0
	default:
		return 0.10
	}
}

func layoutFactor(layout string) float64 {
	rooms, ok := layoutRooms(layout)
	if !ok {
		return 1.00
	}
	switch {
	case rooms == 0:
		return 0.85
	case rooms == 1:
		return 0.90
	case rooms == 2:
		return 0.95
	case rooms == 3:
		return 1.00
	default:
		return 1.10
	}
}

func ageAdjustment(a wizard.Answers, currentYear int) float64 {
	year, ok := wizard.ConstructionYear(a)
	if !ok {
		return 0
	}
	age := currentYear - year
	switch {
	case age > 20:
		return -0.10
	case age > 15:
		return -0.05
	case age > 10:
		return 0
	default:
		return 0.15
	}
}

func ageFactor(a wizard.Answers, currentYear int) float64 {
	year, ok := wizard.ConstructionYear(a)
	if !ok {
		return 1.00
	}
	age := currentYear - year
	switch {
	case age > 20:
		return 0.90
	case age > 15:
		return 0.95
	case age > 10:
		return 1.00
	default:
		return 1.15
	}
}

func conditionAdjustment(c wizard.Condition) float64 {
	switch c {
	case wizard.ConditionGood:
		return 0.10
	case wizard.ConditionRenovation:
		return -0.05
	case wizard.ConditionUnset:
	}
	return 0
}

func conditionFactor(c wizard.Condition) float64 {
	switch c {
	case wizard.ConditionGood:
		return 1.10
	case wizard.ConditionRenovation:
		return 0.95
	case wizard.ConditionUnset:
	}
	return 1.00
}

func energyAdjustment(class string) float64 {
	switch class {
	case "A+":
		return 0.05
	case "A", "B":
		return 0.02
	default:
		return 0
	}
}

func energyFactor(class string) float64 {
	switch class {
	case "A+":
		return 1.05
	case "A", "B":
		return 1.02
	default:
		return 1.00
	}
}

func floorAdjustment(a wizard.Answers) float64 {
	floor, ok := parseFloor(a.Floor)
	if !ok {
		return 0
	}
	switch {
	case floor == 0:
		return -0.05
	case floor == 1 || floor == 2:
		return 0
	case floor >= 3 && a.Elevator == wizard.FlagYes:
		return 0.03
	case floor >= 3:
		return -0.10
	default:
		return 0
	}
}

// elevatorBonus stacks independently with the floor adjustment.
func elevatorBonus(a wizard.Answers) float64 {
	floor, ok := parseFloor(a.Floor)
	if ok && floor >= 2 && a.Elevator == wizard.FlagYes {
		return 0.05
	}
	return 0
}

func amenityAdjustment(f wizard.Flag, bonus float64) float64 {
	if f == wizard.FlagYes {
		return bonus
	}
	return 0
}

func amenityFactor(f wizard.Flag, factor float64) float64 {
	if f == wizard.FlagYes {
		return factor
	}
	return 1.00
}

func numberOrZero(s string) float64 {
	n, ok := wizard.ParseNumber(s)
	if !ok {
		return 0
	}
	return n
}

func parseFloor(s string) (int, bool) {
	n, ok := wizard.ParseNumber(s)
	if !ok {
		return 0, false
	}
	return int(n), true
}
