package analysis

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/licitia/licitia/internal/document"
	"github.com/licitia/licitia/internal/logger"
	"github.com/licitia/licitia/internal/scoring"
	"github.com/licitia/licitia/internal/similarity"
	"github.com/licitia/licitia/internal/validation"
)

// FullPipeline runs the complete extraction, validation and similarity
// stack. Construct it with NewFull; the zero value is not usable.
type FullPipeline struct {
	log    *zap.Logger
	engine *similarity.Engine
}

// NewFull creates the full analysis pipeline. A nil logger disables
// logging.
func NewFull(log *zap.Logger) *FullPipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &FullPipeline{
		log:    log,
		engine: similarity.NewEngine(),
	}
}

// Analyze runs the whole pipeline over the three raw texts. The process
// value falls back to the notice's estimated value when not supplied.
func (p *FullPipeline) Analyze(certificateText, taxText, noticeText string, processValue *float64) *Result {
	start := time.Now()

	cert := document.ExtractCertificate(certificateText)
	rut := document.ExtractTaxRecord(taxText)
	notice := document.ExtractNotice(noticeText)

	if processValue == nil {
		processValue = notice.EstimatedValue
	}

	p.log.Debug("documents extracted",
		zap.String("tax_id", cert.TaxID),
		zap.String("certificate_status", string(cert.Status)),
		zap.String("rut_status", string(rut.Status)),
		zap.String("purpose_preview", logger.TruncateForLog(cert.BusinessPurpose, 120)),
		zap.String("contract_object_preview", logger.TruncateForLog(notice.ContractObject, 120)),
	)

	certPoints, certAlerts := validation.ValidateCertificate(cert)
	rutPoints, rutAlerts := validation.ValidateTaxRecord(rut)

	// The certificate and RUT checklists together can reach 50 points;
	// the structural component is capped at its stated ceiling so the
	// breakdown percentages stay truthful.
	structural := certPoints + rutPoints
	if structural > scoring.StructuralCeiling {
		structural = scoring.StructuralCeiling
	}

	structuralAlerts := append(certAlerts, rutAlerts...)

	contextual := p.engine.CompareInContext(cert.BusinessPurpose, cert.SecondaryActivities, notice.ContractObject)
	best := contextual.Best
	fit := scoring.FitPoints(best)

	financial, financialAlert := validation.ValidateFinancial(
		cert.Assets, processValue, validation.DefaultMinimumPercent, cert.Equity,
	)

	// Alerts serialize as a list even when empty, never as null.
	alerts := make([]string, 0, len(structuralAlerts)+1)
	alerts = append(alerts, structuralAlerts...)
	if financialAlert != "" {
		alerts = append(alerts, financialAlert)
	}

	breakdown := scoring.Aggregate(structural, fit, financial)

	missing := missingItems(cert, structuralAlerts)
	if len(missing) > 5 {
		missing = missing[:5]
	}

	status := scoring.Classify(breakdown.Total, alerts, best)
	recommendation := scoring.Recommend(status, breakdown.Total, best, missing, alerts)

	p.log.Info("analysis completed",
		zap.String("status", string(status)),
		zap.Int("score", breakdown.Total),
		zap.Float64("similarity", best),
		zap.String("best_source", contextual.BestSource),
		zap.Int("alerts", len(alerts)),
	)

	return &Result{
		Status:         status,
		Score:          breakdown.Total,
		Similarity:     best,
		Recommendation: recommendation,
		MissingItems:   missing,
		Alerts:         alerts,
		Breakdown:      &breakdown,
		SimilarityDetail: &SimilarityDetail{
			PrimarySimilarity: contextual.Primary.Total,
			Level:             contextual.Level,
			Recommendation:    contextual.Recommendation,
		},
		ExtractedFields: &ExtractedFields{
			TaxID:             cert.TaxID,
			LegalName:         cert.LegalName,
			Assets:            cert.Assets,
			CertificateStatus: cert.Status,
			TaxStatus:         rut.Status,
			ProcessValue:      processValue,
		},
		Metadata: metadata(start, ModeFull),
	}
}

func metadata(start time.Time, mode string) Metadata {
	end := time.Now()
	seconds := math.Round(end.Sub(start).Seconds()*100) / 100

	return Metadata{
		Timestamp:         end,
		ProcessingSeconds: seconds,
		Version:           Version,
		AnalysisMode:      mode,
		TokenCost:         0,
	}
}
