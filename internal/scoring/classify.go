package scoring

import "github.com/licitia/licitia/internal/validation"

// Light is the tri-state outcome of an analysis.
type Light string

const (
	LightGreen  Light = "VERDE"
	LightYellow Light = "AMARILLO"
	LightRed    Light = "ROJO"
)

// Classification thresholds. The red checks run before the green one, so
// a profile that looks green on points is still red when a critical alert
// or a floor violation is present.
const (
	redScoreFloor      = 40
	redSimilarityFloor = 0.20

	greenScoreMin      = 70
	greenSimilarityMin = 0.50
	greenMaxAlerts     = 2
)

// Classify maps the total score, the merged alert list and the best
// similarity onto a traffic light.
func Classify(score int, alerts []string, similarity float64) Light {
	if validation.CountCritical(alerts) > 0 {
		return LightRed
	}
	if score < redScoreFloor {
		return LightRed
	}
	if similarity < redSimilarityFloor {
		return LightRed
	}

	if score >= greenScoreMin && similarity >= greenSimilarityMin && len(alerts) <= greenMaxAlerts {
		return LightGreen
	}

	return LightYellow
}
