package solver

import (
	"errors"
	"math"
	"sort"
	"sync"
)

// ErrNoCandidates signals that filtering left zero consistent words, which
// means the clues contradict each other or the solution list is incomplete.
// Ranking against an empty candidate set is undefined, so the scorer
// refuses rather than returning a degenerate result.
var ErrNoCandidates = errors.New("solver: no consistent candidates")

// Mode selects the scoring strategy.
type Mode int

const (
	// Slow scores each guess by the entropy of the feedback-pattern
	// partition it induces on the candidates: the expected information
	// gained by playing it.
	Slow Mode = iota
	// Fast scores each guess by its worst case: the size of the largest
	// candidate group any feedback could leave behind, minimized. Cheaper
	// per pair than entropy, same asymptotic cost, and allowed to disagree
	// with Slow on ordering.
	Fast
)

func (m Mode) String() string {
	if m == Fast {
		return "fast"
	}
	return "slow"
}

// Suggestion is one ranked guess. Candidate marks guesses that are
// themselves still possible solutions; ties on score prefer those.
type Suggestion struct {
	Word      string
	Score     float64
	Candidate bool
}

// RankOptions carries optional knobs for Rank. Progress, when set, is
// called once per scored guess; it must be safe for concurrent use.
type RankOptions struct {
	Progress func(done int)
}

// strategy turns one guess's candidate partition into a score, higher
// being better. Both implementations see only the group sizes, so they can
// be tested against hand-built partitions without running the simulator.
type strategy interface {
	score(groups map[uint32]int, total int) float64
}

// entropyStrategy implements the Slow mode formula
// score = -sum (c_i/C) * log2(c_i/C) over the partition group sizes.
type entropyStrategy struct{}

func (entropyStrategy) score(groups map[uint32]int, total int) float64 {
	if total == 0 {
		return 0
	}
	var h float64
	for _, n := range groups {
		p := float64(n) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// minimaxStrategy implements Fast mode: the fewer candidates the worst
// feedback group would leave, the better. Reported as total minus the
// largest group so that higher is better, like entropy.
type minimaxStrategy struct{}

func (minimaxStrategy) score(groups map[uint32]int, total int) float64 {
	worst := 0
	for _, n := range groups {
		if n > worst {
			worst = n
		}
	}
	return float64(total - worst)
}

// Rank scores every guess in guessList against the remaining candidates
// and returns the top n suggestions, descending by score. n == 0 returns
// the full sorted ranking. Ties prefer guesses that are still candidates,
// then keep original list order.
func Rank(guessList, candidates []string, n int, mode Mode) ([]Suggestion, error) {
	return RankWith(guessList, candidates, n, mode, RankOptions{})
}

// RankWith is Rank with options. The all-pairs evaluation dominates the
// whole system's runtime and each guess's partition is independent of every
// other's, so scoring fans out one goroutine per guess writing into an
// index-addressed slice; the only merge is the final stable sort.
func RankWith(guessList, candidates []string, n int, mode Mode, opts RankOptions) ([]Suggestion, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if len(guessList) == 0 {
		return []Suggestion{}, nil
	}

	var strat strategy = entropyStrategy{}
	if mode == Fast {
		strat = minimaxStrategy{}
	}

	isCandidate := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		isCandidate[c] = true
	}

	scores := make([]float64, len(guessList))
	var wg sync.WaitGroup
	for i, g := range guessList {
		wg.Add(1)
		go func(i int, g string) {
			defer wg.Done()
			groups := make(map[uint32]int)
			for _, c := range candidates {
				groups[Simulate(g, c).Key()]++
			}
			scores[i] = strat.score(groups, len(candidates))
			if opts.Progress != nil {
				opts.Progress(1)
			}
		}(i, g)
	}
	wg.Wait()

	out := make([]Suggestion, len(guessList))
	for i, g := range guessList {
		out[i] = Suggestion{Word: g, Score: scores[i], Candidate: isCandidate[g]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Candidate && !out[j].Candidate
	})

	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out, nil
}
