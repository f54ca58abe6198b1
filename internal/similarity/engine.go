// Package similarity scores how well a bidder's declared business purpose
// matches a contract's stated object. It blends five independent metrics
// into a weighted total so no single heuristic dominates noisy document
// text. All computation is pure and deterministic.
package similarity

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

// Level is the qualitative classification of a similarity total.
type Level string

const (
	LevelHigh    Level = "ALTA"
	LevelMedium  Level = "MEDIA"
	LevelLow     Level = "BAJA"
	LevelVeryLow Level = "MUY_BAJA"
)

// Metric weights. Keyword overlap carries half the total because it is
// the most robust signal across differently-formatted documents.
const (
	weightKeywords = 0.50
	weightSequence = 0.10
	weightBigrams  = 0.20
	weightJaccard  = 0.10
	weightBoost    = 0.10
)

// Result holds the component scores of one comparison, each in [0, 1].
type Result struct {
	Keywords float64
	Sequence float64
	Bigrams  float64
	Jaccard  float64
	Boost    float64

	Total float64
	Level Level

	SharedKeywords []string
	SharedCount    int
}

// Contextual is the outcome of comparing a purpose against a contract
// object twice: alone, and widened with the secondary activities.
type Contextual struct {
	Primary       Result
	WithSecondary Result

	Best       float64
	BestSource string
	Level      Level

	Recommendation string
}

// Winning-source tags for Contextual.BestSource.
const (
	SourcePurpose       = "objeto_social"
	SourceWithSecondary = "con_actividades_secundarias"
)

// Engine is a stateless comparator. The zero value is ready to use and
// safe for concurrent calls.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Score computes the blended similarity between two texts. The direction
// matters: b is the reference text (the contract object) and the overlap
// ratios are taken against its vocabulary.
func (e *Engine) Score(a, b string) Result {
	na := Normalize(a)
	nb := Normalize(b)

	keywords, shared := keywordOverlap(na, nb)

	r := Result{
		Keywords:       keywords,
		Sequence:       sequenceRatio(na, nb),
		Bigrams:        bigramOverlap(na, nb),
		Jaccard:        jaccardIndex(na, nb),
		Boost:          importantBoost(na, nb),
		SharedKeywords: shared,
		SharedCount:    len(shared),
	}

	r.Total = r.Keywords*weightKeywords +
		r.Sequence*weightSequence +
		r.Bigrams*weightBigrams +
		r.Jaccard*weightJaccard +
		r.Boost*weightBoost
	r.Level = Classify(r.Total)

	return r
}

// CompareInContext scores the purpose alone and then widened with the
// secondary activities, reporting the better of the two. A weak primary
// match can be rescued by activities the company is also registered for.
func (e *Engine) CompareInContext(purpose, secondaryActivities, contractObject string) Contextual {
	primary := e.Score(purpose, contractObject)
	widened := e.Score(purpose+" "+secondaryActivities, contractObject)

	c := Contextual{
		Primary:       primary,
		WithSecondary: widened,
		Best:          primary.Total,
		BestSource:    SourcePurpose,
	}
	if widened.Total > primary.Total {
		c.Best = widened.Total
		c.BestSource = SourceWithSecondary
	}
	c.Level = Classify(c.Best)

	// The recommendation speaks to the registered purpose itself, so it
	// is derived from the primary score even when the widened one wins.
	c.Recommendation = recommendation(primary.Total)

	return c
}

// Classify maps a similarity total onto its qualitative level.
func Classify(total float64) Level {
	switch {
	case total >= 0.70:
		return LevelHigh
	case total >= 0.50:
		return LevelMedium
	case total >= 0.30:
		return LevelLow
	default:
		return LevelVeryLow
	}
}

func recommendation(primary float64) string {
	switch {
	case primary >= 0.70:
		return "Excelente coincidencia. Tu objeto social cubre bien el objeto del contrato."
	case primary >= 0.50:
		return "Buena coincidencia. Considera reforzar tu propuesta con experiencia específica."
	case primary >= 0.30:
		return "Coincidencia moderada. Justifica la relación entre tu objeto social y el contrato."
	default:
		return "Coincidencia baja. Considera actualizar tu objeto social o formar consorcio."
	}
}

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Normalize lower-cases text, replaces punctuation with spaces and
// collapses whitespace. Normalizing already-normalized text is a no-op.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = nonWord.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// tokens splits normalized text into words. With filter set, stop words
// and words shorter than three runes are dropped.
func tokens(text string, filter bool) []string {
	words := strings.Fields(text)
	if !filter {
		return words
	}

	kept := words[:0:len(words)]
	for _, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		if utf8.RuneCountInString(w) <= 2 {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}

func tokenSet(text string, filter bool) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range tokens(text, filter) {
		set[w] = struct{}{}
	}
	return set
}

// keywordOverlap is the share of the reference text's vocabulary found in
// the candidate text, along with the sorted shared words.
func keywordOverlap(a, b string) (float64, []string) {
	setA := tokenSet(a, true)
	setB := tokenSet(b, true)

	if len(setB) == 0 {
		return 0, nil
	}

	shared := intersect(setA, setB)
	sort.Strings(shared)

	ratio := float64(len(shared)) / float64(len(setB))
	if ratio > 1 {
		ratio = 1
	}
	return ratio, shared
}

// sequenceRatio is the classic difflib matching-blocks ratio, computed
// character by character on the normalized strings.
func sequenceRatio(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// bigramOverlap is the share of the reference text's word bigrams found in
// the candidate text, after stop-word filtering.
func bigramOverlap(a, b string) float64 {
	wordsB := tokens(b, true)
	if len(wordsB) < 2 {
		return 0
	}

	gramsA := bigrams(tokens(a, true))
	gramsB := bigrams(wordsB)
	if len(gramsB) == 0 {
		return 0
	}

	shared := 0
	for g := range gramsB {
		if _, ok := gramsA[g]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(gramsB))
}

func bigrams(words []string) map[string]struct{} {
	grams := make(map[string]struct{})
	for i := 0; i+1 < len(words); i++ {
		grams[words[i]+" "+words[i+1]] = struct{}{}
	}
	return grams
}

// jaccardIndex is the intersection-over-union of the filtered token sets.
func jaccardIndex(a, b string) float64 {
	setA := tokenSet(a, true)
	setB := tokenSet(b, true)

	union := len(setA)
	inter := 0
	for w := range setB {
		if _, ok := setA[w]; ok {
			inter++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// importantBoost is the share of domain keywords in the reference text
// that the candidate text also mentions. Stop words are not filtered here
// because the curated vocabulary already selects for significance.
func importantBoost(a, b string) float64 {
	inA := importantIn(tokenSet(a, false))
	inB := importantIn(tokenSet(b, false))

	if len(inB) == 0 {
		return 0
	}

	shared := 0
	for w := range inB {
		if _, ok := inA[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(inB))
}

func importantIn(set map[string]struct{}) map[string]struct{} {
	found := make(map[string]struct{})
	for w := range set {
		if _, ok := importantKeywords[w]; ok {
			found[w] = struct{}{}
		}
	}
	return found
}

func intersect(a, b map[string]struct{}) []string {
	shared := make([]string, 0)
	for w := range a {
		if _, ok := b[w]; ok {
			shared = append(shared, w)
		}
	}
	return shared
}
