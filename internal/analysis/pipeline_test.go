package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/licitia/licitia/internal/document"
	"github.com/licitia/licitia/internal/scoring"
)

const matchingCertificate = `CERTIFICADO DE EXISTENCIA Y REPRESENTACION LEGAL
NIT: 900123456-7
Razón Social: PESQUERA DEL PACIFICO S.A.S. Sigla: PESPAC
OBJETO SOCIAL: construccion y mantenimiento de infraestructura pesquera suministro de alimentos transporte y comercializacion de productos del mar capacitacion de comunidades pesqueras artesanales DOMICILIO: Buenaventura
ACTIVIDADES SECUNDARIAS: asesoria y consultoria en proyectos de acuicultura y pesca artesanal para comunidades del litoral pacifico
ACTIVOS TOTALES: $500,000,000
PATRIMONIO: $300,000,000
REPRESENTANTE LEGAL: MARIA LOPEZ GARCIA
Estado: ACTIVO
`

const matchingTaxRecord = `REGISTRO UNICO TRIBUTARIO
NIT: 900123456-7
RAZON SOCIAL: PESQUERA DEL PACIFICO S.A.S.
ACTIVIDAD ECONOMICA: 0311 - PESCA MARITIMA
Estado: ACTIVO
`

const matchingNotice = `AVISO DE CONVOCATORIA PUBLICA
PROCESO: LP-2025-042
ENTIDAD: ALCALDIA DE BUENAVENTURA
OBJETO DEL CONTRATO: construccion y mantenimiento de infraestructura pesquera para comunidades artesanales incluyendo suministro de alimentos y capacitacion
VALOR ESTIMADO: $500,000,000
PLAZO: 10 meses
Se requiere RUP, certificado de experiencia y poliza de cumplimiento
`

const unrelatedCertificate = `CERTIFICADO DE EXISTENCIA Y REPRESENTACION LEGAL
NIT: 8060130247
Razón Social: ASOCIACION DE PROFESIONALES PARA EL DESARROLLO
Sigla: AGRODASIN
OBJETO SOCIAL PRINCIPAL: Desarrollo de proyectos agropecuarios y pesqueros
ACTIVOS: $150,000,000
PATRIMONIO: $80,000,000
REPRESENTANTE LEGAL: CARLOS MARTINEZ
Estado: ACTIVA
`

const unrelatedNotice = `AVISO DE CONVOCATORIA PUBLICA
PROCESO: LP-2024-001
ENTIDAD: GOBERNACION DEL DEPARTAMENTO
OBJETO DEL CONTRATO: Contratar la ejecución del proyecto para fortalecimiento
de capacidades productivas de pesca artesanal
VALOR ESTIMADO: $200,000,000
PLAZO: 12 meses
`

func TestFullPipelineStrongMatch(t *testing.T) {
	result := NewFull(nil).Analyze(matchingCertificate, matchingTaxRecord, matchingNotice, nil)

	if result.Status != scoring.LightGreen {
		t.Fatalf("expected %s, got %s (score=%d sim=%v alerts=%v)",
			scoring.LightGreen, result.Status, result.Score, result.Similarity, result.Alerts)
	}
	if result.Score < 70 {
		t.Fatalf("expected score of at least 70, got %d", result.Score)
	}
	if result.Similarity < 0.5 {
		t.Fatalf("expected similarity of at least 0.5, got %v", result.Similarity)
	}

	b := result.Breakdown
	if b == nil {
		t.Fatalf("expected a score breakdown")
	}
	if b.Total != b.Structural+b.Fit+b.Financial {
		t.Fatalf("total must equal the sum of components: %+v", b)
	}
	// The two checklists can reach 50 raw points; the component is capped.
	if b.Structural != scoring.StructuralCeiling {
		t.Fatalf("expected structural capped at %d, got %d", scoring.StructuralCeiling, b.Structural)
	}
	if b.Financial != 20 {
		t.Fatalf("expected full financial points, got %d", b.Financial)
	}

	f := result.ExtractedFields
	if f == nil {
		t.Fatalf("expected extracted fields")
	}
	if f.TaxID != "9001234567" {
		t.Fatalf("unexpected tax id: %q", f.TaxID)
	}
	if f.CertificateStatus != document.StatusActive || f.TaxStatus != document.StatusActive {
		t.Fatalf("unexpected statuses: %+v", f)
	}
	if f.ProcessValue == nil || *f.ProcessValue != 500000000 {
		t.Fatalf("expected process value taken from the notice, got %v", f.ProcessValue)
	}

	if len(result.Alerts) != 1 || !strings.Contains(result.Alerts[0], "fecha de expedición") {
		t.Fatalf("expected only the expedition-date alert, got %v", result.Alerts)
	}
	if !strings.Contains(result.Recommendation, "¡Excelente!") {
		t.Fatalf("unexpected recommendation: %q", result.Recommendation)
	}
	if result.Metadata.AnalysisMode != ModeFull || result.Metadata.Version != Version {
		t.Fatalf("unexpected metadata: %+v", result.Metadata)
	}
	if result.Metadata.TokenCost != 0 {
		t.Fatalf("expected zero token cost, got %d", result.Metadata.TokenCost)
	}
}

func TestFullPipelineUnrelatedPurposeIsRed(t *testing.T) {
	result := NewFull(nil).Analyze(unrelatedCertificate, matchingTaxRecord, unrelatedNotice, nil)

	// No keyword, bigram or Jaccard overlap: only the character ratio can
	// contribute, and its weight keeps the similarity under the red floor.
	if result.Similarity > 0.10 {
		t.Fatalf("expected similarity at most 0.10, got %v", result.Similarity)
	}
	if result.Status != scoring.LightRed {
		t.Fatalf("expected %s, got %s", scoring.LightRed, result.Status)
	}
}

func TestFullPipelineCriticalStatusIsRed(t *testing.T) {
	cert := strings.Replace(matchingCertificate, "Estado: ACTIVO", "Estado: INACTIVO", 1)

	result := NewFull(nil).Analyze(cert, matchingTaxRecord, matchingNotice, nil)

	if result.Status != scoring.LightRed {
		t.Fatalf("expected %s, got %s", scoring.LightRed, result.Status)
	}
	if !strings.HasPrefix(result.Recommendation, "Problemas críticos:") {
		t.Fatalf("expected the critical override, got %q", result.Recommendation)
	}
	found := false
	for _, item := range result.MissingItems {
		if strings.Contains(item, "Certificado de Cámara") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a certificate remediation item, got %v", result.MissingItems)
	}
}

func TestFullPipelineNoAlertsMarshalsEmptyList(t *testing.T) {
	// A freshly expedited certificate completes the checklist, so nothing
	// is left to alert on.
	cert := fmt.Sprintf("Fecha expedicion: %s\n%s", time.Now().Format("02/01/2006"), matchingCertificate)

	result := NewFull(nil).Analyze(cert, matchingTaxRecord, matchingNotice, nil)

	if len(result.Alerts) != 0 {
		t.Fatalf("expected no alerts, got %v", result.Alerts)
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshaling result: %s", err)
	}
	if !strings.Contains(string(data), `"alerts":[]`) {
		t.Fatalf("alerts must serialize as an empty list, got:\n%s", data)
	}
}

func TestFullPipelineExplicitProcessValueWins(t *testing.T) {
	v := 900000000.0

	result := NewFull(nil).Analyze(matchingCertificate, matchingTaxRecord, matchingNotice, &v)

	if result.ExtractedFields.ProcessValue == nil || *result.ExtractedFields.ProcessValue != v {
		t.Fatalf("expected the explicit process value, got %v", result.ExtractedFields.ProcessValue)
	}
}

func TestFullPipelineEmptyInput(t *testing.T) {
	result := NewFull(nil).Analyze("", "", "", nil)

	if result.Score < 0 || result.Score > 100 {
		t.Fatalf("score out of bounds: %d", result.Score)
	}
	if result.Status != scoring.LightRed {
		t.Fatalf("expected %s on empty input, got %s", scoring.LightRed, result.Status)
	}
	// Neutral financial points are the only ones attainable.
	if result.Breakdown.Financial != 10 {
		t.Fatalf("expected neutral financial points, got %d", result.Breakdown.Financial)
	}
	if len(result.MissingItems) > 5 {
		t.Fatalf("expected at most 5 missing items, got %d", len(result.MissingItems))
	}
}

func TestFullPipelineDeterministic(t *testing.T) {
	p := NewFull(nil)

	first := p.Analyze(matchingCertificate, matchingTaxRecord, matchingNotice, nil)
	second := p.Analyze(matchingCertificate, matchingTaxRecord, matchingNotice, nil)

	if first.Status != second.Status || first.Score != second.Score ||
		first.Similarity != second.Similarity || first.Recommendation != second.Recommendation {
		t.Fatalf("expected identical outcomes, got %+v and %+v", first, second)
	}
}
