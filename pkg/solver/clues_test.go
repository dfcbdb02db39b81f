package solver

import (
	"errors"
	"testing"
)

func mustClueSet(t *testing.T, length int, obs ...Observation) *ClueSet {
	t.Helper()
	cs, err := NewClueSet(length, obs)
	if err != nil {
		t.Fatalf("NewClueSet: %v", err)
	}
	return cs
}

// Round-trip law: feedback derived from a word must accept that word.
func TestConsistentRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"tares", "abbey"},
		{"speed", "erase"},
		{"mamma", "madam"},
		{"abbey", "abbey"},
	}
	for _, pair := range pairs {
		guess, word := pair[0], pair[1]
		cs := mustClueSet(t, 5, Observation{Guess: guess, Pattern: Simulate(guess, word)})
		if !cs.Consistent(word) {
			t.Errorf("word %q inconsistent with its own feedback for guess %q", word, guess)
		}
	}
}

func TestConsistentRejects(t *testing.T) {
	cs := mustClueSet(t, 5, Observation{Guess: "tares", Pattern: Simulate("tares", "abbey")})

	if cs.Consistent("tares") {
		t.Error("the guess itself should be inconsistent with a non-all-match pattern")
	}
	if cs.Consistent("smote") {
		t.Error("word without the misplaced A should be rejected")
	}
	if cs.Consistent("abbe") {
		t.Error("short word should be rejected outright")
	}
}

func TestEmptyClueSetAcceptsEverything(t *testing.T) {
	cs := mustClueSet(t, 5)
	for _, w := range []string{"abbey", "tares", "zzzzz"} {
		if !cs.Consistent(w) {
			t.Errorf("empty clue set rejected %q", w)
		}
	}
	if cs.Consistent("toolong") {
		t.Error("empty clue set must still enforce word length")
	}
}

// Mutating the returned observations must not reach into the set.
func TestObservationsReturnsCopy(t *testing.T) {
	cs := mustClueSet(t, 5, Observation{Guess: "tares", Pattern: Simulate("tares", "abbey")})

	obs := cs.Observations()
	obs[0].Guess = "zzzzz"
	obs[0].Pattern = Simulate("zzzzz", "zzzzz")

	if got := cs.Observations(); got[0].Guess != "tares" {
		t.Errorf("clue set observation changed to %q", got[0].Guess)
	}
	if !cs.Consistent("abbey") {
		t.Error("clue set behavior changed after mutating the returned slice")
	}
}

func TestNewClueSetValidation(t *testing.T) {
	pattern := Simulate("tares", "abbey")

	testCases := []struct {
		name      string
		length    int
		obs       []Observation
		wantIndex int
	}{
		{"short guess", 5, []Observation{{Guess: "tare", Pattern: pattern}}, 0},
		{"short pattern", 5, []Observation{{Guess: "tares", Pattern: pattern[:3]}}, 0},
		{"second observation bad", 5, []Observation{
			{Guess: "tares", Pattern: pattern},
			{Guess: "abbeys", Pattern: pattern},
		}, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewClueSet(tc.length, tc.obs)
			var merr *MalformedObservationError
			if !errors.As(err, &merr) {
				t.Fatalf("want MalformedObservationError, got %v", err)
			}
			if merr.Index != tc.wantIndex {
				t.Errorf("error names observation %d, want %d", merr.Index, tc.wantIndex)
			}
		})
	}

	if _, err := NewClueSet(0, nil); err == nil {
		t.Error("length 0 accepted")
	}
	if _, err := NewClueSet(MaxWordLength+1, nil); err == nil {
		t.Error("length beyond MaxWordLength accepted")
	}
}
