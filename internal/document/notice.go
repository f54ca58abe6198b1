package document

import (
	"regexp"
	"strings"
)

// Estimated tender values below one million or above a hundred billion
// pesos are treated as capture noise.
const (
	noticeValueMin = 1_000_000
	noticeValueMax = 100_000_000_000
)

var noticeProcessCascade = []capturePattern{
	{re: regexp.MustCompile(`(?i)proceso[:\s]+([A-Z0-9-]+)`)},
	{re: regexp.MustCompile(`(?i)numero\s+proceso[:\s]+([A-Z0-9-]+)`)},
}

var noticeEntityCascade = []capturePattern{
	{re: regexp.MustCompile(`(?i)entidad[:\s]+([A-Z][A-Z\s.]+?)(?:\n|NIT)`)},
	{re: regexp.MustCompile(`(?i)contratante[:\s]+([A-Z][A-Z\s.]+?)(?:\n|NIT)`)},
}

// Section-boundary patterns for the contract object. Each one stops at the
// heading of the section that usually follows the object.
var noticeObjectCascade = []capturePattern{
	{re: regexp.MustCompile(`(?is)objeto\s+del?\s+contrat[oa][:\s]+(.+?)\n\s*(?:descripcion|valor|plazo|condiciones|requisitos|alcance|modalidad)`), accept: acceptContractObject},
	{re: regexp.MustCompile(`(?is)objeto\s+de\s+la\s+contratacion[:\s]+(.+?)\n\s*(?:descripcion|valor|plazo|condiciones|requisitos|alcance|modalidad)`), accept: acceptContractObject},
	{re: regexp.MustCompile(`(?is)contratar\s+la\s+\S+\s+(.+?)\n\s*(?:alcance|descripcion|valor|plazo|condiciones|requisitos|modalidad)`), accept: acceptContractObject},
	{re: regexp.MustCompile(`(?is)objeto[:\s]+(.+?)\n\s*(?:descripcion|valor|plazo|condiciones|requisitos|alcance|modalidad)`), accept: acceptContractObject},
}

// Loose fallback when no section boundary follows the object: take the
// whole "contratar la ..." phrase up to the next heading or end of text.
var noticeObjectLoose = regexp.MustCompile(`(?is)(contratar\s+la\s+\S+\s+.{50,1000}?)(?:\n\s*[A-Z]|\z)`)

var noticeDescriptionRe = regexp.MustCompile(`(?is)descripcion[:\s]+(.{50,500}?)(?:\n\s*[A-Z]|\z)`)

var noticeValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:presupuesto|valor)\s+(?:oficial|estimado)[:\s]+\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)cuantia[:\s]+\$?\s*([\d.,]+)`),
}

var noticeDurationRe = regexp.MustCompile(`(?i)plazo[:\s]+(.{5,100})`)

// requirementKeywords are the documents and credentials tender notices
// commonly ask for. The scan only records that they are mentioned.
var requirementKeywords = []string{
	"RUP", "RUT", "certificado", "poliza", "experiencia", "estados financieros",
}

func acceptContractObject(raw string) (string, bool) {
	if len([]rune(strings.TrimSpace(raw))) < 50 {
		return "", false
	}
	v := collapseSpaces(raw)
	if len([]rune(v)) <= 30 {
		return "", false
	}
	return truncateRunes(v, 1500), true
}

// ExtractNotice pulls the structured fields out of raw tender notice text.
func ExtractNotice(text string) *Notice {
	n := &Notice{
		Requirements: mentionedRequirements(text),
	}

	if v, ok := firstMatch(text, noticeProcessCascade); ok {
		n.ProcessNumber = v
	}
	if v, ok := firstMatch(text, noticeEntityCascade); ok {
		n.Entity = v
	}
	n.ContractObject = extractContractObject(text)
	if m := noticeDescriptionRe.FindStringSubmatch(text); m != nil {
		n.Description = truncateRunes(strings.TrimSpace(m[1]), 500)
	}
	n.EstimatedValue = extractMoney(text, noticeValuePatterns, noticeValueMin, noticeValueMax)
	if m := noticeDurationRe.FindStringSubmatch(text); m != nil {
		n.Duration = truncateRunes(strings.TrimSpace(m[1]), 100)
	}

	return n
}

func extractContractObject(text string) string {
	if v, ok := firstMatch(text, noticeObjectCascade); ok {
		return v
	}
	if m := noticeObjectLoose.FindStringSubmatch(text); m != nil {
		return truncateRunes(strings.TrimSpace(m[1]), 1500)
	}
	return ""
}

func mentionedRequirements(text string) []string {
	lower := strings.ToLower(text)

	found := make([]string, 0, len(requirementKeywords))
	for _, kw := range requirementKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			found = append(found, kw)
		}
	}
	return found
}
