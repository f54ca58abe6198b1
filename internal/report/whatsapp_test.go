package report

import (
	"strings"
	"testing"

	"github.com/licitia/licitia/internal/analysis"
	"github.com/licitia/licitia/internal/scoring"
)

func TestWhatsAppMessage(t *testing.T) {
	breakdown := scoring.Aggregate(35, 30, 20)
	result := &analysis.Result{
		Status:         scoring.LightGreen,
		Score:          breakdown.Total,
		Similarity:     0.82,
		Recommendation: "¡Excelente! Alta probabilidad de éxito.",
		MissingItems:   []string{"uno", "dos", "tres", "cuatro"},
		Alerts:         []string{"CRÍTICO: RUT INACTIVO", "aviso menor"},
		Breakdown:      &breakdown,
	}

	msg := WhatsAppMessage(result)

	for _, want := range []string{
		"🟢 VERDE",
		"Score: 85/100",
		"📊 Desglose:",
		"• Documentos: 35/40",
		"Similitud objeto social: 82%",
		"🚨 ALERTAS CRÍTICAS:",
		"• CRÍTICO: RUT INACTIVO",
		"💡 RECOMENDACIÓN:",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in message:\n%s", want, msg)
		}
	}

	// Missing items are capped at three.
	if !strings.Contains(msg, "3. tres") || strings.Contains(msg, "cuatro") {
		t.Fatalf("expected only the top three missing items:\n%s", msg)
	}
	// Non-critical alerts stay out of the alert block.
	if strings.Contains(msg, "aviso menor") {
		t.Fatalf("expected non-critical alerts omitted:\n%s", msg)
	}
}

func TestWhatsAppMessageWithoutBreakdown(t *testing.T) {
	result := &analysis.Result{
		Status:         scoring.LightYellow,
		Score:          60,
		Recommendation: "Análisis básico.",
	}

	msg := WhatsAppMessage(result)

	if strings.Contains(msg, "Desglose") {
		t.Fatalf("expected no breakdown section:\n%s", msg)
	}
	if !strings.Contains(msg, "🟡 AMARILLO") {
		t.Fatalf("expected the yellow light:\n%s", msg)
	}
}

func TestWhatsAppMessageUnknownStatus(t *testing.T) {
	msg := WhatsAppMessage(&analysis.Result{Status: scoring.Light("OTRO")})

	if !strings.Contains(msg, "⚪") {
		t.Fatalf("expected the neutral emoji:\n%s", msg)
	}
}
