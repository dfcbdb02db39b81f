package solver

import (
	"reflect"
	"testing"
)

// Scenario from the clue model: guess "tares" against solution "abbey"
// yields the misplaced-A / exact-E pattern; only words honoring both
// survive the filter.
func TestFilterScenario(t *testing.T) {
	cs := mustClueSet(t, 5, Observation{Guess: "tares", Pattern: Simulate("tares", "abbey")})

	words := []string{"cable", "abbey", "smote", "siege"}
	got := cs.Filter(words)
	want := []string{"abbey"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter(%v) = %v, want %v", words, got, want)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	cs := mustClueSet(t, 5)
	words := []string{"siege", "abbey", "cable", "smote"}
	got := cs.Filter(words)
	if !reflect.DeepEqual(got, words) {
		t.Errorf("empty clue set reordered or dropped words: %v", got)
	}
}

// Adding observations can only shrink the candidate set.
func TestFilterMonotonic(t *testing.T) {
	words := []string{"abbey", "cable", "gable", "table", "fable", "amble"}

	obs := []Observation{
		{Guess: "tares", Pattern: Simulate("tares", "cable")},
		{Guess: "gable", Pattern: Simulate("gable", "cable")},
	}

	prev := len(words)
	for i := 0; i <= len(obs); i++ {
		cs := mustClueSet(t, 5, obs[:i]...)
		n := len(cs.Filter(words))
		if n > prev {
			t.Fatalf("candidate set grew from %d to %d after observation %d", prev, n, i)
		}
		prev = n
	}
}
