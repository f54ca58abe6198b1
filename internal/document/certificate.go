package document

import (
	"regexp"
	"strconv"
	"strings"
)

// Monetary sanity bounds. Anything outside is treated as a misread
// capture (page numbers, identifiers) rather than a value in pesos.
const (
	moneyMin = 100
	moneyMax = 1_000_000_000_000
)

var certTaxIDCascade = []capturePattern{
	{re: regexp.MustCompile(`(?i)nit\s*:\s*(\d{9,10}-\d)`), accept: acceptTaxID},
	{re: regexp.MustCompile(`(?i)nit[:\s.]+(\d{9,10}[-\s]?\d?)`), accept: acceptTaxID},
	{re: regexp.MustCompile(`(?i)n\.?\s*i\.?\s*t\.?[:\s]+(\d{9,10}[-\s]?\d?)`), accept: acceptTaxID},
}

// acceptTaxID strips separators and keeps 9 to 11 digit identifiers.
func acceptTaxID(raw string) (string, bool) {
	id := strings.NewReplacer(" ", "", "-", "", "\t", "").Replace(raw)
	if len(id) < 9 || len(id) > 11 {
		return "", false
	}
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return "", false
	}
	return id, true
}

var certLegalNameCascade = []capturePattern{
	{re: regexp.MustCompile(`(?is)raz[oó]n\s+social\s*:\s*(.+?)\s*sigla`), accept: minLenAccept(10)},
	{re: regexp.MustCompile(`(?is)denominada\s+(.+?),\s*sigla`), accept: minLenAccept(10)},
	{re: regexp.MustCompile(`(?is)razon\s+social[:\s]+([A-Z][A-Z\s.&-]+?)(?:\s*NIT|\s*Identificacion)`), accept: minLenAccept(10)},
}

var certPurposeCascade = []capturePattern{
	{re: regexp.MustCompile(`(?is)objeto social\s*(.+?)(?:capital|domicilio|duracion|duración|representante|página\s+\d+)`), accept: minLenAccept(50)},
	{re: regexp.MustCompile(`(?is)objeto\s+social[:\s]*(.+?)(?:capital|domicilio|duracion)`), accept: minLenAccept(50)},
}

var certSecondaryCascade = []capturePattern{
	{re: regexp.MustCompile(`(?is)actividad(?:es)?\s+secundaria(?:s)?[:\s]+(.{50,500}?)\n\s*[A-Z]`)},
	{re: regexp.MustCompile(`(?is)otras\s+actividades[:\s]+(.{50,500}?)\n\s*[A-Z]`)},
}

var certAssetsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)activos?\s+totales?[:\s]+\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)total\s+activos?[:\s]+\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)activos?[:\s]+\$?\s*([\d.,]+)`),
}

var certEquityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)patrimonio[:\s]+\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)capital[:\s]+\$?\s*([\d.,]+)`),
}

var certDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:fecha\s+)?expedici[oó]n[:\s]+(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
	regexp.MustCompile(`(?i)(?:fecha|date)[:\s]+(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
}

var certRepresentativeCascade = []capturePattern{
	{re: regexp.MustCompile(`(?i)representante\s+legal[:\s]+([A-Z][A-Z\s.]+?)(?:\n|Identificacion|CC|FECHA)`), accept: acceptPersonName},
	{re: regexp.MustCompile(`(?i)gerente[:\s]+([A-Z][A-Z\s.]+?)(?:\n|Identificacion)`), accept: acceptPersonName},
}

func acceptPersonName(raw string) (string, bool) {
	name := collapseSpaces(raw)
	if n := len([]rune(name)); n <= 5 || n >= 80 {
		return "", false
	}
	return name, true
}

var certMunicipalityCascade = []capturePattern{
	{re: regexp.MustCompile(`(?i)(?:municipio|domicilio)[:\s]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)},
	{re: regexp.MustCompile(`(?i)municipio[:\s]+([A-Z][a-z]+)`)},
	{re: regexp.MustCompile(`(?i)domicilio[:\s]+([A-Z][a-z]+)`)},
}

// Status markers, checked in precedence order: a recent renewal proves the
// registration is alive even when the text never says "activo", and
// dissolution markers override any generic "vigente" boilerplate.
var (
	renewedYearRe   = regexp.MustCompile(`ultimo\s+a[ñn]o\s+renovado\s*:\s*202[0-9]`)
	renewalDateRe   = regexp.MustCompile(`fecha\s+de\s+renovaci[oó]n\s*:\s*\d{1,2}\s+de\s+\S+\s+de\s+202[0-9]`)
	statusInactive  = regexp.MustCompile(`estado\s*:\s*inactiv`)
	entityDissolved = regexp.MustCompile(`entidad\s+(cancelad|liquidad|disuelt)`)
	dissolvedOnRe   = regexp.MustCompile(`(cancelad|liquidad|disuelt)[oa]\s+el\s+\d`)
	statusActive    = regexp.MustCompile(`estado\s*:\s*activ`)
	inForceRe       = regexp.MustCompile(`\bvigente\b`)
)

// ExtractCertificate pulls the structured fields out of raw certificate
// text. It never fails: fields that cannot be matched stay empty.
func ExtractCertificate(text string) *Certificate {
	text = normalizeLayout(text)

	cert := &Certificate{Status: certificateStatus(text)}

	if v, ok := firstMatch(text, certTaxIDCascade); ok {
		cert.TaxID = v
	}
	if v, ok := firstMatch(text, certLegalNameCascade); ok {
		cert.LegalName = v
	}
	if v, ok := firstMatch(text, certPurposeCascade); ok {
		cert.BusinessPurpose = v
	}
	if v, ok := firstMatch(text, certSecondaryCascade); ok {
		cert.SecondaryActivities = truncateRunes(v, 500)
	}
	cert.Assets = extractMoney(text, certAssetsPatterns, moneyMin, moneyMax)
	cert.Equity = extractMoney(text, certEquityPatterns, moneyMin, moneyMax)
	cert.ExpeditionDate = extractDate(text, certDatePatterns)
	if v, ok := firstMatch(text, certRepresentativeCascade); ok {
		cert.LegalRepresentative = v
	}
	if v, ok := firstMatch(text, certMunicipalityCascade); ok {
		cert.Municipality = v
	}

	return cert
}

func certificateStatus(text string) Status {
	lower := strings.ToLower(text)

	if renewedYearRe.MatchString(lower) || renewalDateRe.MatchString(lower) {
		return StatusActive
	}
	if statusInactive.MatchString(lower) || entityDissolved.MatchString(lower) || dissolvedOnRe.MatchString(lower) {
		return StatusInactive
	}
	if statusActive.MatchString(lower) || inForceRe.MatchString(lower) {
		return StatusActive
	}

	return StatusUnknown
}

// extractMoney tries each pattern in order and returns the first capture
// that parses into the [min, max] range.
func extractMoney(text string, patterns []*regexp.Regexp, min, max float64) *float64 {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, ok := parseMoney(m[1], min, max); ok {
			return &v
		}
	}
	return nil
}

// extractDate tries each day/month/year pattern in order. Captures are
// digit-only by construction, so parse errors cannot happen; the triple is
// kept as printed and calendar validation is deferred to Date.Time.
func extractDate(text string, patterns []*regexp.Regexp) *Date {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return &Date{Day: day, Month: month, Year: year}
	}
	return nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
