package document

import (
	"regexp"
	"strconv"
	"strings"
)

// capturePattern pairs a regular expression with a sanity filter. The
// filter receives the first capture group and either returns the cleaned
// value or rejects the match so the next pattern in the cascade is tried.
type capturePattern struct {
	re     *regexp.Regexp
	accept func(raw string) (string, bool)
}

// firstMatch runs an ordered cascade of patterns against text and returns
// the first accepted value. Order matters: more specific patterns come
// first and looser ones act as fallbacks.
func firstMatch(text string, cascade []capturePattern) (string, bool) {
	for _, p := range cascade {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := m[1]
		if p.accept == nil {
			return strings.TrimSpace(raw), true
		}
		if v, ok := p.accept(raw); ok {
			return v, true
		}
	}
	return "", false
}

var spaceRun = regexp.MustCompile(`\s+`)

// collapseSpaces folds any whitespace run into a single space and trims.
func collapseSpaces(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// parseMoney parses a monetary capture such as "150,000,000" or
// "150.000.000". Thousand separators are stripped outright, so decimal
// fractions are not supported; document values are whole pesos.
// Values outside [min, max] are rejected as misreads.
func parseMoney(raw string, min, max float64) (float64, bool) {
	clean := strings.NewReplacer(".", "", ",", "").Replace(strings.TrimSpace(raw))
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	if v < min || v > max {
		return 0, false
	}
	return v, true
}

// minLenAccept builds an accept filter that collapses whitespace and
// requires more than n characters.
func minLenAccept(n int) func(string) (string, bool) {
	return func(raw string) (string, bool) {
		v := collapseSpaces(raw)
		if len([]rune(v)) <= n {
			return "", false
		}
		return v, true
	}
}
