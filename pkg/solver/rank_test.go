package solver

import (
	"errors"
	"math"
	"reflect"
	"sync/atomic"
	"testing"
)

func TestRankEmptyCandidates(t *testing.T) {
	_, err := Rank([]string{"tares"}, nil, 0, Slow)
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("want ErrNoCandidates, got %v", err)
	}
}

func TestRankEmptyGuessList(t *testing.T) {
	got, err := Rank(nil, []string{"abbey"}, 0, Slow)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("want empty ranking, got %v", got)
	}
}

// Two observations claiming different exact letters for the same positions
// leave no consistent word; the scorer must refuse, not rank.
func TestContradictoryCluesSurfaceError(t *testing.T) {
	allMatch := func(w string) Pattern { return Simulate(w, w) }
	cs := mustClueSet(t, 5,
		Observation{Guess: "cable", Pattern: allMatch("cable")},
		Observation{Guess: "smote", Pattern: allMatch("smote")},
	)

	words := []string{"cable", "smote", "abbey", "tares"}
	candidates := cs.Filter(words)
	if len(candidates) != 0 {
		t.Fatalf("expected contradictory clues to filter everything, kept %v", candidates)
	}
	if _, err := Rank(words, candidates, 1, Slow); !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("want ErrNoCandidates, got %v", err)
	}
}

// With one candidate left every guess scores zero, so the candidate itself
// must win on the tie rule.
func TestRankSingleCandidateFirst(t *testing.T) {
	got, err := Rank([]string{"cable", "abbey", "smote"}, []string{"abbey"}, 0, Slow)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if got[0].Word != "abbey" {
		t.Errorf("want abbey ranked first, got %q", got[0].Word)
	}
	if !got[0].Candidate {
		t.Error("winning suggestion not flagged as a candidate")
	}
}

// A guess splitting the candidates into singletons must beat one that
// leaves them in a single group, in both modes.
func TestRankPrefersSplittingGuess(t *testing.T) {
	candidates := []string{"bills", "balls", "bells", "bolls"}
	guesses := []string{"bulls", "aeiou"}

	for _, mode := range []Mode{Slow, Fast} {
		got, err := Rank(guesses, candidates, 1, mode)
		if err != nil {
			t.Fatalf("Rank(%v): %v", mode, err)
		}
		if got[0].Word != "aeiou" {
			t.Errorf("mode %v: want aeiou first, got %q (score %.3f)", mode, got[0].Word, got[0].Score)
		}
	}
}

func TestRankSortedAndTruncated(t *testing.T) {
	candidates := []string{"bills", "balls", "bells", "bolls", "abbey"}
	guesses := []string{"bulls", "aeiou", "abbey", "tares"}

	all, err := Rank(guesses, candidates, 0, Slow)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(all) != len(guesses) {
		t.Fatalf("n=0 should return all %d guesses, got %d", len(guesses), len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Score > all[i-1].Score {
			t.Fatalf("ranking not descending at %d: %v", i, all)
		}
	}

	top, err := Rank(guesses, candidates, 2, Slow)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("n=2 returned %d suggestions", len(top))
	}
	if !reflect.DeepEqual(top, all[:2]) {
		t.Errorf("truncated ranking %v disagrees with head of full ranking %v", top, all[:2])
	}
}

func TestRankDeterministic(t *testing.T) {
	candidates := []string{"bills", "balls", "bells", "bolls", "abbey"}
	guesses := []string{"bulls", "aeiou", "abbey", "tares", "cable"}

	first, err := Rank(guesses, candidates, 0, Fast)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Rank(guesses, candidates, 0, Fast)
		if err != nil {
			t.Fatalf("Rank: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differed:\n%v\n%v", i, first, again)
		}
	}
}

func TestRankProgress(t *testing.T) {
	var done atomic.Int64
	guesses := []string{"bulls", "aeiou", "tares"}
	_, err := RankWith(guesses, []string{"abbey"}, 0, Fast, RankOptions{
		Progress: func(n int) { done.Add(int64(n)) },
	})
	if err != nil {
		t.Fatalf("RankWith: %v", err)
	}
	if done.Load() != int64(len(guesses)) {
		t.Errorf("progress reported %d, want %d", done.Load(), len(guesses))
	}
}

// Strategies are tested against hand-built partitions, independent of the
// simulator.
func TestStrategies(t *testing.T) {
	const eps = 1e-9

	entropy := entropyStrategy{}
	minimax := minimaxStrategy{}

	testCases := []struct {
		name        string
		groups      map[uint32]int
		total       int
		wantEntropy float64
		wantMinimax float64
	}{
		{"single group", map[uint32]int{0: 8}, 8, 0, 0},
		{"even halves", map[uint32]int{0: 4, 1: 4}, 8, 1, 4},
		{"even quarters", map[uint32]int{0: 2, 1: 2, 2: 2, 3: 2}, 8, 2, 6},
		{"lopsided", map[uint32]int{0: 6, 1: 1, 2: 1}, 8, 0, 2},
	}

	// -(6/8)log2(6/8) - 2*(1/8)log2(1/8)
	lop := -(0.75 * math.Log2(0.75)) - 2*(0.125*math.Log2(0.125))
	testCases[3].wantEntropy = lop

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := entropy.score(tc.groups, tc.total); math.Abs(got-tc.wantEntropy) > eps {
				t.Errorf("entropy = %v, want %v", got, tc.wantEntropy)
			}
			if got := minimax.score(tc.groups, tc.total); math.Abs(got-tc.wantMinimax) > eps {
				t.Errorf("minimax = %v, want %v", got, tc.wantMinimax)
			}
		})
	}
}
