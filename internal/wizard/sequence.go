package wizard

// Step identifies a single screen of the questionnaire.
type Step string

const (
	StepType        Step = "type"
	StepLivingArea  Step = "living-area"
	StepTotalArea   Step = "total-area"
	StepFloor       Step = "floor"
	StepLayout      Step = "layout"
	StepYear        Step = "year"
	StepCondition   Step = "condition"
	StepEnergyClass Step = "energy-class"
	StepPool        Step = "pool"
	StepGarden      Step = "garden"
	StepElevator    Step = "elevator"
	StepBalcony     Step = "balcony"
	StepGarage      Step = "garage"
	StepLocation    Step = "location"
	StepContact     Step = "contact"
	StepResult      Step = "result"
)

// catalog is the full step ordering. A derived sequence is always a
// subsequence of it, which is what lets us find the nearest predecessor when a
// step disappears from the sequence.
var catalog = []Step{
	StepType,
	StepLivingArea,
	StepTotalArea,
	StepFloor,
	StepLayout,
	StepYear,
	StepCondition,
	StepEnergyClass,
	StepPool,
	StepGarden,
	StepElevator,
	StepBalcony,
	StepGarage,
	StepLocation,
	StepContact,
	StepResult,
}

var catalogIndex = func() map[Step]int {
	m := make(map[Step]int, len(catalog))
	for i, s := range catalog {
		m[s] = i
	}
	return m
}()

// minRenovationAge is the building age above which we ask about the state of
// renovation.
const minRenovationAge = 15

// Sequence derives the ordered list of applicable steps from the answers.
// currentYear is passed in so that age-dependent branching is deterministic.
//
// The sequence always starts with type and living-area and ends with
// location, contact, result. Houses get total-area plus pool and garden
// questions; apartments get floor plus elevator, balcony, and garage. The
// condition question appears only for buildings older than minRenovationAge.
func Sequence(a Answers, currentYear int) []Step {
	steps := make([]Step, 0, len(catalog))
	steps = append(steps, StepType, StepLivingArea)
	switch a.Kind {
	case KindHouse:
		steps = append(steps, StepTotalArea)
	case KindApartment:
		steps = append(steps, StepFloor)
	case KindUnset:
	}
	steps = append(steps, StepLayout, StepYear)
	if year, ok := ConstructionYear(a); ok && currentYear-year > minRenovationAge {
		steps = append(steps, StepCondition)
	}
	steps = append(steps, StepEnergyClass)
	switch a.Kind {
	case KindHouse:
		steps = append(steps, StepPool, StepGarden)
	case KindApartment:
		steps = append(steps, StepElevator, StepBalcony, StepGarage)
	case KindUnset:
	}
	return append(steps, StepLocation, StepContact, StepResult)
}

// phoneDigits is the length of a Portuguese mobile number.
const phoneDigits = 9

const (
	minConstructionYear = 1900
)

// StepValid reports whether the answers collected so far satisfy the step,
// i.e. whether the user may advance past it.
func StepValid(s Step, a Answers, currentYear int) bool {
	switch s {
	case StepType:
		return a.Kind == KindHouse || a.Kind == KindApartment
	case StepLivingArea:
		area, ok := ParseNumber(a.LivingArea)
		return ok && area > 0
	case StepTotalArea:
		total, ok := ParseNumber(a.PlotArea)
		if !ok || total <= 0 {
			return false
		}
		living, ok := ParseNumber(a.LivingArea)
		return ok && total > living
	case StepFloor:
		floor, ok := ParseNumber(a.Floor)
		return ok && floor >= 0
	case StepLayout:
		return a.Layout != ""
	case StepYear:
		year, ok := ParseNumber(a.Year)
		return ok && year >= minConstructionYear && year <= float64(currentYear)
	case StepCondition:
		return a.Condition != ConditionUnset
	case StepEnergyClass:
		return a.EnergyClass != ""
	case StepPool:
		return a.Pool != FlagUnset
	case StepGarden:
		return a.Garden != FlagUnset
	case StepElevator:
		return a.Elevator != FlagUnset
	case StepBalcony:
		return a.Balcony != FlagUnset
	case StepGarage:
		return a.Garage != FlagUnset
	case StepLocation:
		// The address is optional.
		return a.Region != "" && a.SubRegion != "" && a.LocalArea != ""
	case StepContact:
		return len(DigitsOnly(a.Phone)) == phoneDigits
	case StepResult:
		return true
	}
	return false
}
