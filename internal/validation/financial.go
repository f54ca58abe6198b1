package validation

import "fmt"

// DefaultMinimumPercent is the share of the process value a bidder's
// assets must reach, absent an explicit requirement in the tender.
const DefaultMinimumPercent = 0.10

// Financial capacity points by asset ratio band.
const (
	MaxFinancialPoints     = 20
	neutralFinancialPoints = 10
)

// ValidateFinancial scores asset sufficiency against the process value.
// When either figure is unknown a neutral score is returned with an
// informational alert instead of failing. The returned alert is empty when
// capacity is fully sufficient.
//
// If equity is known and an alert was produced, equity is checked against
// half the minimum percentage and an insufficiency clause is appended to
// the same alert; it never changes the points.
func ValidateFinancial(assets, processValue *float64, minPercent float64, equity *float64) (int, string) {
	if assets == nil || *assets <= 0 || processValue == nil || *processValue <= 0 {
		return neutralFinancialPoints, "No se pudo validar capacidad financiera (falta información)"
	}

	requiredAssets := *processValue * minPercent
	ratio := *assets / requiredAssets

	var points int
	var alert string
	switch {
	case ratio >= 1.0:
		points = MaxFinancialPoints
	case ratio >= 0.75:
		points = 15
		alert = fmt.Sprintf("Activos por debajo del mínimo (%.0f%%). Considera consorcio.", ratio*100)
	case ratio >= 0.50:
		points = 8
		alert = fmt.Sprintf("Activos insuficientes (%.0f%%). Requiere consorcio.", ratio*100)
	default:
		points = 0
		alert = fmt.Sprintf("%s: Activos muy insuficientes (%.0f%%). Consorcio necesario.", CriticalMarker, ratio*100)
	}

	if alert != "" && equity != nil && *equity > 0 {
		requiredEquity := *processValue * (minPercent / 2)
		equityRatio := *equity / requiredEquity
		if equityRatio < 1.0 {
			alert += fmt.Sprintf(" Patrimonio insuficiente (%.0f%%).", equityRatio*100)
		}
	}

	return points, alert
}
