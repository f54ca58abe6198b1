// Package analysis orchestrates extraction, similarity and validation
// into a single fitness assessment for a tender application.
package analysis

import (
	"time"

	"github.com/licitia/licitia/internal/document"
	"github.com/licitia/licitia/internal/scoring"
	"github.com/licitia/licitia/internal/similarity"
)

// Version of the analysis pipeline, reported in result metadata.
const Version = "2.0.0"

// Analysis modes reported in result metadata.
const (
	ModeFull  = "DEMO_PROFESIONAL"
	ModeBasic = "DEMO_BASICO"
)

// Result is the complete outcome of one analysis. Its JSON field names
// are a compatibility surface consumed by downstream tooling; do not
// rename them.
type Result struct {
	Status         scoring.Light `json:"status"`
	Score          int           `json:"score"`
	Similarity     float64       `json:"similarity"`
	Recommendation string        `json:"recommendation"`
	MissingItems   []string      `json:"missing_items"`
	Alerts         []string      `json:"alerts"`

	Breakdown        *scoring.Breakdown `json:"score_breakdown,omitempty"`
	SimilarityDetail *SimilarityDetail  `json:"similarity_detail,omitempty"`
	ExtractedFields  *ExtractedFields   `json:"extracted_fields,omitempty"`

	Metadata Metadata `json:"metadata"`
}

// SimilarityDetail exposes the purpose-only similarity alongside its level
// and the purpose-focused recommendation.
type SimilarityDetail struct {
	PrimarySimilarity float64          `json:"primary_similarity"`
	Level             similarity.Level `json:"level"`
	Recommendation    string           `json:"similarity_recommendation"`
}

// ExtractedFields summarizes the key extracted values for display.
type ExtractedFields struct {
	TaxID             string          `json:"tax_id"`
	LegalName         string          `json:"legal_name"`
	Assets            *float64        `json:"assets"`
	CertificateStatus document.Status `json:"certificate_status"`
	TaxStatus         document.Status `json:"tax_status"`
	ProcessValue      *float64        `json:"process_value"`
}

// Metadata describes how and when the result was produced. TokenCost is
// always zero: the analysis calls no AI service.
type Metadata struct {
	Timestamp         time.Time `json:"timestamp"`
	ProcessingSeconds float64   `json:"processing_seconds"`
	Version           string    `json:"version"`
	AnalysisMode      string    `json:"analysis_mode"`
	TokenCost         int       `json:"token_cost"`
}

// Pipeline analyzes the three document texts and an optional process
// value. Implementations never fail: malformed or sparse input degrades
// the scores and alerts instead of producing an error.
type Pipeline interface {
	Analyze(certificateText, taxText, noticeText string, processValue *float64) *Result
}
