// Package validation scores document completeness and financial capacity
// against checklist rules. Each check contributes fixed points and unmet
// checks emit alert strings; alerts carrying the critical marker force the
// unfavorable outcome downstream.
package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/licitia/licitia/internal/document"
)

// CriticalMarker flags an alert that makes the bid non-viable as-is.
const CriticalMarker = "CRÍTICO"

// Maximum points each checklist can award.
const (
	MaxCertificatePoints = 40
	MaxTaxRecordPoints   = 10
)

// Certificates older than this many days trigger a renewal alert.
const certificateMaxAgeDays = 90

// Patchable for tests.
var now = time.Now

// IsCritical reports whether an alert carries the critical marker. The
// unaccented spelling is accepted too since alerts may round-trip through
// systems that strip diacritics.
func IsCritical(alert string) bool {
	return strings.Contains(alert, CriticalMarker) || strings.Contains(alert, "CRITICO")
}

// CountCritical returns how many alerts are critical.
func CountCritical(alerts []string) int {
	n := 0
	for _, a := range alerts {
		if IsCritical(a) {
			n++
		}
	}
	return n
}

// ValidateCertificate scores a certificate's completeness on a 40-point
// checklist and reports an alert for every unmet check.
func ValidateCertificate(cert *document.Certificate) (int, []string) {
	points := 0
	var alerts []string

	if cert.TaxID != "" {
		points += 5
	} else {
		alerts = append(alerts, "NIT no identificado")
	}

	if cert.LegalName != "" {
		points += 5
	} else {
		alerts = append(alerts, "Razón social no identificada")
	}

	if utf8.RuneCountInString(cert.BusinessPurpose) > 50 {
		points += 10
	} else {
		alerts = append(alerts, "Objeto social incompleto o ausente")
	}

	if cert.LegalRepresentative != "" {
		points += 5
	} else {
		alerts = append(alerts, "Representante legal no identificado")
	}

	if cert.ExpeditionDate != nil {
		points += 5
		if alert := expeditionAgeAlert(*cert.ExpeditionDate); alert != "" {
			alerts = append(alerts, alert)
		}
	} else {
		alerts = append(alerts, "No se pudo verificar fecha de expedición")
	}

	switch cert.Status {
	case document.StatusActive:
		points += 5
	case document.StatusInactive:
		alerts = append(alerts, CriticalMarker+": Certificado INACTIVO o empresa disuelta")
	default:
		alerts = append(alerts, "Estado no activo o no verificado")
	}

	// Declared secondary activities widen the admissible contract scope.
	if cert.SecondaryActivities != "" {
		points += 5
	}

	return points, alerts
}

func expeditionAgeAlert(date document.Date) string {
	issued := date.Time()
	if issued.IsZero() {
		return ""
	}

	days := int(now().Sub(issued).Hours() / 24)
	if days > certificateMaxAgeDays {
		return fmt.Sprintf("Certificado muy antiguo (%d días). Renovar.", days)
	}
	return ""
}

// ValidateTaxRecord scores a RUT's completeness on its own 10-point scale.
func ValidateTaxRecord(rec *document.TaxRecord) (int, []string) {
	points := 0
	var alerts []string

	if rec.TaxID != "" {
		points += 3
	} else {
		alerts = append(alerts, "RUT: NIT no identificado")
	}

	if rec.LegalName != "" {
		points += 2
	} else {
		alerts = append(alerts, "RUT: Razón social no identificada")
	}

	if rec.EconomicActivity != "" {
		points += 3
	} else {
		alerts = append(alerts, "RUT: Actividad económica no identificada")
	}

	switch rec.Status {
	case document.StatusActive:
		points += 2
	case document.StatusInactive:
		alerts = append(alerts, CriticalMarker+": RUT INACTIVO")
	default:
		alerts = append(alerts, "Falta fecha de expedición")
	}

	return points, alerts
}
