package scoring

import (
	"fmt"
	"strings"

	"github.com/licitia/licitia/internal/validation"
)

// Recommend builds the user-facing recommendation. A critical alert
// overrides everything else; otherwise the message is tailored to the
// traffic light, naming the weakest aspect first.
func Recommend(status Light, score int, similarity float64, missing, alerts []string) string {
	for _, a := range alerts {
		if validation.IsCritical(a) {
			return fmt.Sprintf("Problemas críticos: %s. Debes corregir ANTES de aplicar.", a)
		}
	}

	switch status {
	case LightGreen:
		return recommendGreen(score, similarity, missing)
	case LightYellow:
		return recommendYellow(score, similarity, missing)
	default:
		return recommendRed(score, similarity, missing)
	}
}

func recommendGreen(score int, similarity float64, missing []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "¡Excelente! Score: %d/100. Alta probabilidad de éxito.", score)
	if similarity >= 0.70 {
		b.WriteString(" Coincidencia perfecta con el objeto del contrato.")
	}
	if len(missing) > 0 {
		top := missing
		if len(top) > 2 {
			top = top[:2]
		}
		fmt.Fprintf(&b, " Completa: %s.", strings.Join(top, ", "))
	}
	return b.String()
}

func recommendYellow(score int, similarity float64, missing []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Viable con ajustes. Score: %d/100.", score)
	if similarity < 0.50 {
		fmt.Fprintf(&b, " Coincidencia moderada (%.0f%%).", similarity*100)
		b.WriteString(" Refuerza tu propuesta con experiencia certificada.")
	}
	if len(missing) > 0 {
		fmt.Fprintf(&b, " Pendientes: %d requisitos.", len(missing))
	}
	return b.String()
}

func recommendRed(score int, similarity float64, missing []string) string {
	var b strings.Builder
	switch {
	case similarity < 0.30:
		fmt.Fprintf(&b, "Baja coincidencia (%.0f%%). ", similarity*100)
		b.WriteString("Considera: (1) actualizar objeto social, (2) consorcio, (3) justificación clara.")
	case score < 50:
		fmt.Fprintf(&b, "Score bajo (%d/100). ", score)
		b.WriteString("Documentos incompletos o vencidos. Actualiza antes de aplicar.")
	default:
		b.WriteString("Revisa alertas críticas. No recomendado aplicar sin correcciones.")
	}
	if len(missing) > 0 {
		fmt.Fprintf(&b, " Faltan: %d requisitos esenciales.", len(missing))
	}
	return b.String()
}
