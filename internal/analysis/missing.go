package analysis

import (
	"strings"

	"github.com/licitia/licitia/internal/document"
	"github.com/licitia/licitia/internal/validation"
)

// Remediation phrases mapped from alerts and absent fields.
const (
	missingCertificate    = "Certificado de Cámara actualizado (menos de 30 días)"
	missingTaxRecord      = "RUT actualizado"
	missingAssets         = "Activos no identificados en certificado"
	missingRepresentative = "Representante legal no identificado"
)

// genericRequirements are the standard items every tender asks for,
// offered when no specific gap was detected.
var genericRequirements = []string{
	"RUP actualizado con experiencia certificada",
	"Pólizas requeridas según el pliego",
	"Estados financieros con revisor fiscal",
}

// missingItems derives a prioritized remediation list from the structural
// alerts and the extracted certificate fields.
func missingItems(cert *document.Certificate, alerts []string) []string {
	var items []string

	for _, alert := range alerts {
		if !validation.IsCritical(alert) && !strings.Contains(strings.ToLower(alert), "vencido") {
			continue
		}
		switch {
		case strings.Contains(alert, "Certificado"):
			items = append(items, missingCertificate)
		case strings.Contains(alert, "RUT"):
			items = append(items, missingTaxRecord)
		}
	}

	if cert.Assets == nil {
		items = append(items, missingAssets)
	}
	if cert.LegalRepresentative == "" {
		items = append(items, missingRepresentative)
	}

	if len(items) == 0 {
		items = append(items, genericRequirements...)
	}

	return items
}
