package recommend

import (
	"reflect"
	"testing"
)

func TestFallbackIsDeterministic(t *testing.T) {
	first := Fallback()
	second := Fallback()

	if !reflect.DeepEqual(first, second) {
		t.Error("Fallback returned different results across calls")
	}
}

func TestFallbackShape(t *testing.T) {
	recs := Fallback()

	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}

	for i, rec := range recs {
		if rec.Title == "" || rec.Description == "" {
			t.Errorf("recommendation %d has empty text", i)
		}
		if rec.MatchPercentage < 0 || rec.MatchPercentage > 100 {
			t.Errorf("recommendation %d match out of range: %d", i, rec.MatchPercentage)
		}
		if len(rec.Skills) == 0 || len(rec.EducationPath) == 0 {
			t.Errorf("recommendation %d missing skills or path", i)
		}
		if i > 0 && rec.MatchPercentage > recs[i-1].MatchPercentage {
			t.Errorf("recommendation %d not in descending match order", i)
		}
	}
}

func TestFallbackCopiesAreIndependent(t *testing.T) {
	first := Fallback()
	first[0].Title = "mutated"
	first[0].Skills[0] = "mutated"

	second := Fallback()
	if second[0].Title == "mutated" || second[0].Skills[0] == "mutated" {
		t.Error("mutating one Fallback result leaked into the next")
	}
}
