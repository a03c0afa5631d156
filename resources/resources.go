// Package resources estimates relief quantities for disaster-type requests
// from fixed per-capita guidelines. Like triage, it is the deterministic
// fallback behind the classifier gateway.
package resources

import (
	"math"

	"go-lifeline/types"
)

const fallbackNote = "Estimated from standard relief guidelines"

// Predict returns resource quantities for a disaster affecting the given
// population. Unknown disaster types use a generic relief table. Results
// are rounded up; a negative population is treated as zero.
func Predict(disasterType types.DisasterType, affectedPopulation int) types.ResourcePrediction {
	if affectedPopulation < 0 {
		affectedPopulation = 0
	}
	p := float64(affectedPopulation)

	var quantities map[string]int
	switch disasterType {
	case types.DisasterFlood:
		quantities = map[string]int{
			"water":          ceil(5 * p),
			"food_rations":   ceil(3 * p),
			"blankets":       ceil(p),
			"first_aid_kits": ceil(p / 50),
			"emergency_kits": ceil(p / 10),
			"volunteers":     ceil(p / 100),
			"boats":          atLeastOne(ceil(p / 500)),
			"life_jackets":   ceil(p / 2),
		}
	case types.DisasterEarthquake:
		quantities = map[string]int{
			"tents":           ceil(p / 5),
			"first_aid_kits":  ceil(p / 20),
			"rescue_teams":    ceil(p / 500),
			"heavy_equipment": ceil(p / 1000),
			"volunteers":      ceil(p / 50),
			"blankets":        ceil(2 * p),
			"food_rations":    ceil(2 * p),
			"water":           ceil(3 * p),
		}
	case types.DisasterFire:
		quantities = map[string]int{
			"temporary_shelter": ceil(p / 10),
			"clothing":          ceil(p),
			"food_rations":      ceil(2 * p),
			"counseling_teams":  ceil(p / 100),
			"volunteers":        ceil(p / 75),
			"first_aid_kits":    ceil(p / 30),
			"blankets":          ceil(p),
		}
	case types.DisasterTyphoon:
		quantities = map[string]int{
			"water":          ceil(4 * p),
			"canned_goods":   ceil(7 * p),
			"emergency_kits": ceil(p),
			"generators":     ceil(p / 200),
			"volunteers":     ceil(p / 80),
			"first_aid_kits": ceil(p / 40),
			"blankets":       ceil(1.5 * p),
		}
	case types.DisasterMedical:
		quantities = map[string]int{
			"first_aid_kits":   ceil(p / 10),
			"masks":            ceil(10 * p),
			"sanitizer_liters": ceil(p / 5),
			"volunteers":       ceil(p / 50),
			"ambulance_units":  atLeastOne(ceil(p / 1000)),
		}
	default:
		quantities = map[string]int{
			"water":          ceil(3 * p),
			"food_rations":   ceil(2 * p),
			"blankets":       ceil(p),
			"first_aid_kits": ceil(p / 30),
			"volunteers":     ceil(p / 100),
			"emergency_kits": ceil(p / 20),
		}
	}

	return types.ResourcePrediction{
		DisasterType:       disasterType,
		AffectedPopulation: affectedPopulation,
		Quantities:         quantities,
		Status:             types.PredictionStatusFallback,
		Note:               fallbackNote,
	}
}

func ceil(v float64) int {
	return int(math.Ceil(v))
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
