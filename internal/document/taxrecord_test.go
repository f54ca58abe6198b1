package document

import (
	"strings"
	"testing"
)

const sampleTaxRecord = `
REGISTRO UNICO TRIBUTARIO
NIT: 8060130247
RAZON SOCIAL: ASOCIACION DE PROFESIONALES
ACTIVIDAD ECONOMICA: 0311 - PESCA MARITIMA
Estado: ACTIVO
`

func TestExtractTaxRecord(t *testing.T) {
	rec := ExtractTaxRecord(sampleTaxRecord)

	if rec.TaxID != "8060130247" {
		t.Fatalf("expected tax id 8060130247, got %q", rec.TaxID)
	}
	if rec.LegalName != "ASOCIACION DE PROFESIONALES" {
		t.Fatalf("unexpected legal name: %q", rec.LegalName)
	}
	if !strings.Contains(rec.EconomicActivity, "PESCA MARITIMA") {
		t.Fatalf("unexpected economic activity: %q", rec.EconomicActivity)
	}
	if rec.Status != StatusActive {
		t.Fatalf("expected status %s, got %s", StatusActive, rec.Status)
	}
}

func TestExtractTaxRecordMissingData(t *testing.T) {
	rec := ExtractTaxRecord("documento ilegible")

	if rec.TaxID != "" || rec.LegalName != "" || rec.EconomicActivity != "" {
		t.Fatalf("expected empty fields, got %+v", rec)
	}
	if rec.Status != StatusUnknown {
		t.Fatalf("expected status %s, got %s", StatusUnknown, rec.Status)
	}
}

func TestTaxRecordStatusInactive(t *testing.T) {
	rec := ExtractTaxRecord("Estado: INACTIVO")

	if rec.Status != StatusInactive {
		t.Fatalf("expected status %s, got %s", StatusInactive, rec.Status)
	}
}
