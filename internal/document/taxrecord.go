package document

import (
	"regexp"
	"strings"
)

var rutTaxIDCascade = []capturePattern{
	{re: regexp.MustCompile(`(?i)nit[:\s]+(\d{9,10}-?\d?)`), accept: acceptTaxID},
}

var rutLegalNameCascade = []capturePattern{
	{re: regexp.MustCompile(`(?i)razon social[:\s]+(.+?)(?:\n|ACTIVIDAD)`)},
}

var rutActivityRe = regexp.MustCompile(`(?i)actividad economica[:\s]+(.{10,200})`)

var (
	rutStatusActive   = regexp.MustCompile(`(?i)estado[:\s]+activ`)
	rutStatusInactive = regexp.MustCompile(`(?i)estado[:\s]+inactiv`)
)

// ExtractTaxRecord pulls the structured fields out of raw RUT text. The
// RUT layout is far more regular than the certificate, so single patterns
// suffice for most fields.
func ExtractTaxRecord(text string) *TaxRecord {
	rec := &TaxRecord{Status: taxRecordStatus(text)}

	if v, ok := firstMatch(text, rutTaxIDCascade); ok {
		rec.TaxID = v
	}
	if v, ok := firstMatch(text, rutLegalNameCascade); ok {
		rec.LegalName = v
	}
	if m := rutActivityRe.FindStringSubmatch(text); m != nil {
		rec.EconomicActivity = truncateRunes(strings.TrimSpace(m[1]), 200)
	}

	return rec
}

func taxRecordStatus(text string) Status {
	if rutStatusActive.MatchString(text) {
		return StatusActive
	}
	if rutStatusInactive.MatchString(text) {
		return StatusInactive
	}
	return StatusUnknown
}
