package similarity

import (
	"sort"
	"testing"
)

func TestScoreIdenticalTexts(t *testing.T) {
	text := "construccion de obras civiles para infraestructura vial"

	r := NewEngine().Score(text, text)

	if r.Keywords != 1 || r.Sequence != 1 || r.Bigrams != 1 || r.Jaccard != 1 || r.Boost != 1 {
		t.Fatalf("expected every metric at 1.0 for identical texts, got %+v", r)
	}
	if r.Total != 1 {
		t.Fatalf("expected total 1.0, got %v", r.Total)
	}
	if r.Level != LevelHigh {
		t.Fatalf("expected level %s, got %s", LevelHigh, r.Level)
	}
}

func TestScoreDisjointTexts(t *testing.T) {
	r := NewEngine().Score(
		"alquiler de maquinaria amarilla",
		"desarrollo de software educativo",
	)

	if r.Keywords != 0 {
		t.Fatalf("expected zero keyword overlap, got %v", r.Keywords)
	}
	if r.Jaccard != 0 || r.Bigrams != 0 || r.Boost != 0 {
		t.Fatalf("expected zero set metrics, got %+v", r)
	}
	// Only the character-level ratio can contribute, and it is capped by
	// its 0.10 weight.
	if r.Total > 0.10 {
		t.Fatalf("expected total at most 0.10, got %v", r.Total)
	}
	if r.Level != LevelVeryLow {
		t.Fatalf("expected level %s, got %s", LevelVeryLow, r.Level)
	}
}

func TestScoreSharedKeywordsSorted(t *testing.T) {
	r := NewEngine().Score(
		"suministro de alimentos y transporte maritimo",
		"transporte y suministro de alimentos",
	)

	if r.SharedCount != 3 {
		t.Fatalf("expected 3 shared keywords, got %d (%v)", r.SharedCount, r.SharedKeywords)
	}
	if !sort.StringsAreSorted(r.SharedKeywords) {
		t.Fatalf("expected sorted shared keywords, got %v", r.SharedKeywords)
	}
}

func TestScoreDeterministic(t *testing.T) {
	e := NewEngine()
	a := "fortalecimiento de cadenas de valor de la pesca artesanal"
	b := "proyecto de fortalecimiento pesquero para comunidades artesanales"

	first := e.Score(a, b)
	for i := 0; i < 5; i++ {
		if got := e.Score(a, b); got.Total != first.Total {
			t.Fatalf("expected stable total, got %v then %v", first.Total, got.Total)
		}
	}
}

func TestCompareInContextSecondaryRescue(t *testing.T) {
	purpose := "comercializacion de productos agricolas"
	secondary := "construccion y mantenimiento de obras civiles e infraestructura vial"
	object := "construccion y mantenimiento de infraestructura vial"

	c := NewEngine().CompareInContext(purpose, secondary, object)

	if c.BestSource != SourceWithSecondary {
		t.Fatalf("expected the widened comparison to win, got %s", c.BestSource)
	}
	if c.Best <= c.Primary.Total {
		t.Fatalf("expected best %v above primary %v", c.Best, c.Primary.Total)
	}
	// The recommendation still reflects the registered purpose alone.
	if c.Recommendation != recommendation(c.Primary.Total) {
		t.Fatalf("expected recommendation derived from the primary score")
	}
}

func TestCompareInContextPrimaryWinsByDefault(t *testing.T) {
	c := NewEngine().CompareInContext(
		"transporte de alimentos",
		"",
		"transporte de alimentos",
	)

	if c.BestSource != SourcePurpose {
		t.Fatalf("expected the purpose comparison to win, got %s", c.BestSource)
	}
}

func TestClassifyThresholds(t *testing.T) {
	cases := []struct {
		total float64
		want  Level
	}{
		{1.0, LevelHigh},
		{0.70, LevelHigh},
		{0.69, LevelMedium},
		{0.50, LevelMedium},
		{0.49, LevelLow},
		{0.30, LevelLow},
		{0.29, LevelVeryLow},
		{0, LevelVeryLow},
	}

	for _, tc := range cases {
		if got := Classify(tc.total); got != tc.want {
			t.Fatalf("Classify(%v): expected %s, got %s", tc.total, tc.want, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize("  ¡Construcción, de OBRAS!  ")

	if got != "construcción de obras" {
		t.Fatalf("unexpected normalization: %q", got)
	}
	if Normalize(got) != got {
		t.Fatalf("expected normalization to be idempotent")
	}
	if Normalize("") != "" {
		t.Fatalf("expected empty input to stay empty")
	}
}

func TestTokensFiltering(t *testing.T) {
	got := tokens("la pesca es de mar", true)

	if len(got) != 2 || got[0] != "pesca" || got[1] != "mar" {
		t.Fatalf("expected stop words and short words dropped, got %v", got)
	}
}

func TestBigramOverlapNeedsTwoTokens(t *testing.T) {
	if v := bigramOverlap("pesca artesanal marina", "pesca"); v != 0 {
		t.Fatalf("expected 0 for a single-token reference, got %v", v)
	}
}
