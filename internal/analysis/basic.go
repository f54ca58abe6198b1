package analysis

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/licitia/licitia/internal/scoring"
)

// Basic-mode scoring: a coarse heuristic over the raw texts, used when the
// rich modules are not in play. It trades precision for the guarantee of
// always producing a result.
const (
	basicBaseScore        = 60
	basicBonus            = 10
	basicSimilarityFloor  = 0.30
	basicGreenThreshold   = 70
	basicYellowThreshold  = 50
	basicPendingValidItem = "Validación completa pendiente"
)

// BasicPipeline is the degraded fallback: it never extracts structured
// fields and scores on raw text markers only.
type BasicPipeline struct {
	log *zap.Logger
}

// NewBasic creates the fallback pipeline. A nil logger disables logging.
func NewBasic(log *zap.Logger) *BasicPipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &BasicPipeline{log: log}
}

// Analyze produces a coarse assessment from raw text markers. The process
// value is ignored: without extraction there is nothing to compare it to.
func (p *BasicPipeline) Analyze(certificateText, taxText, noticeText string, _ *float64) *Result {
	start := time.Now()

	score := basicBaseScore

	if strings.Contains(strings.ToLower(taxText), "activo") {
		score += basicBonus
	}

	lowerCert := strings.ToLower(certificateText)
	if strings.Contains(lowerCert, "vigente") || strings.Contains(lowerCert, "renovado") {
		score += basicBonus
	}

	sim := tokenOverlap(noticeText, certificateText)
	if sim > basicSimilarityFloor {
		score += basicBonus
	}

	if score > 100 {
		score = 100
	}

	var status scoring.Light
	switch {
	case score >= basicGreenThreshold:
		status = scoring.LightGreen
	case score >= basicYellowThreshold:
		status = scoring.LightYellow
	default:
		status = scoring.LightRed
	}

	p.log.Info("basic analysis completed",
		zap.String("status", string(status)),
		zap.Int("score", score),
		zap.Float64("similarity", sim),
	)

	return &Result{
		Status:         status,
		Score:          score,
		Similarity:     sim,
		Recommendation: fmt.Sprintf("Score: %d/100. Análisis básico (módulos completos pendientes).", score),
		MissingItems:   []string{basicPendingValidItem},
		Alerts:         []string{},
		Metadata:       metadata(start, ModeBasic),
	}
}

// tokenOverlap is the share of the notice's raw lower-cased tokens that
// also appear in the certificate.
func tokenOverlap(noticeText, certificateText string) float64 {
	noticeTokens := rawTokenSet(noticeText)
	if len(noticeTokens) == 0 {
		return 0
	}

	certTokens := rawTokenSet(certificateText)
	shared := 0
	for w := range noticeTokens {
		if _, ok := certTokens[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(noticeTokens))
}

func rawTokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = struct{}{}
	}
	return set
}
