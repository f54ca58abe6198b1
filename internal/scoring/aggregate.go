// Package scoring turns the validator and similarity outputs into the
// final bounded score, the traffic-light status and the user-facing
// recommendation text.
package scoring

// Component ceilings of the 100-point total.
const (
	StructuralCeiling = 40
	FitCeiling        = 40
	FinancialCeiling  = 20
)

// Breakdown is the score decomposition exposed to callers. Total is
// always the exact sum of the three components.
type Breakdown struct {
	Total      int `json:"total"`
	Structural int `json:"structural"`
	Fit        int `json:"fit"`
	Financial  int `json:"financial"`

	StructuralPercent float64 `json:"structural_percent"`
	FitPercent        float64 `json:"fit_percent"`
	FinancialPercent  float64 `json:"financial_percent"`
}

// Aggregate sums the component points and derives each component's share
// of its ceiling.
func Aggregate(structural, fit, financial int) Breakdown {
	return Breakdown{
		Total:             structural + fit + financial,
		Structural:        structural,
		Fit:               fit,
		Financial:         financial,
		StructuralPercent: float64(structural) / StructuralCeiling * 100,
		FitPercent:        float64(fit) / FitCeiling * 100,
		FinancialPercent:  float64(financial) / FinancialCeiling * 100,
	}
}

// FitPoints converts a similarity total in [0, 1] into fit points by
// scaling onto the fit ceiling, truncating toward zero.
func FitPoints(similarity float64) int {
	return int(similarity * FitCeiling)
}
