// Package report renders analysis results for human channels.
package report

import (
	"fmt"
	"strings"

	"github.com/licitia/licitia/internal/analysis"
	"github.com/licitia/licitia/internal/scoring"
	"github.com/licitia/licitia/internal/validation"
)

var statusEmoji = map[scoring.Light]string{
	scoring.LightGreen:  "🟢",
	scoring.LightYellow: "🟡",
	scoring.LightRed:    "🔴",
}

// WhatsAppMessage renders a result as a short WhatsApp-ready summary:
// traffic light, breakdown, top missing items, critical alerts and the
// recommendation.
func WhatsAppMessage(result *analysis.Result) string {
	emoji, ok := statusEmoji[result.Status]
	if !ok {
		emoji = "⚪"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "🎯 RESULTADO ANÁLISIS\n\n%s %s\nScore: %d/100\n\n", emoji, result.Status, result.Score)

	if d := result.Breakdown; d != nil {
		fmt.Fprintf(&b, "📊 Desglose:\n• Documentos: %d/%d\n• Encaje objeto: %d/%d\n• Capacidad financiera: %d/%d\n\n",
			d.Structural, scoring.StructuralCeiling,
			d.Fit, scoring.FitCeiling,
			d.Financial, scoring.FinancialCeiling,
		)
	}

	fmt.Fprintf(&b, "🎯 Similitud objeto social: %.0f%%\n\n", result.Similarity*100)

	if len(result.MissingItems) > 0 {
		fmt.Fprintf(&b, "⚠️ TOP %d FALTANTES:\n", len(result.MissingItems))
		for i, item := range result.MissingItems {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")
	}

	critical := criticalAlerts(result.Alerts)
	if len(critical) > 0 {
		b.WriteString("🚨 ALERTAS CRÍTICAS:\n")
		for i, alert := range critical {
			if i == 2 {
				break
			}
			fmt.Fprintf(&b, "• %s\n", alert)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "💡 RECOMENDACIÓN:\n%s\n", result.Recommendation)

	return b.String()
}

func criticalAlerts(alerts []string) []string {
	var critical []string
	for _, a := range alerts {
		if validation.IsCritical(a) {
			critical = append(critical, a)
		}
	}
	return critical
}
