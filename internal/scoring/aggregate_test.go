package scoring

import "testing"

func TestAggregate(t *testing.T) {
	b := Aggregate(40, 30, 20)

	if b.Total != 90 {
		t.Fatalf("expected total 90, got %d", b.Total)
	}
	if b.Total != b.Structural+b.Fit+b.Financial {
		t.Fatalf("total must equal the sum of components: %+v", b)
	}
	if b.StructuralPercent != 100 || b.FitPercent != 75 || b.FinancialPercent != 100 {
		t.Fatalf("unexpected percentages: %+v", b)
	}
}

func TestAggregateZero(t *testing.T) {
	b := Aggregate(0, 0, 0)

	if b.Total != 0 || b.StructuralPercent != 0 || b.FitPercent != 0 || b.FinancialPercent != 0 {
		t.Fatalf("expected all zero, got %+v", b)
	}
}

func TestFitPoints(t *testing.T) {
	cases := []struct {
		similarity float64
		want       int
	}{
		{0, 0},
		{0.5, 20},
		{0.875, 35},
		{0.999, 39},
		{1, 40},
	}

	for _, tc := range cases {
		if got := FitPoints(tc.similarity); got != tc.want {
			t.Fatalf("FitPoints(%v): expected %d, got %d", tc.similarity, tc.want, got)
		}
	}
}
