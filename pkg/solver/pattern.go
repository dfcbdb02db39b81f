// Package solver is the core: it reduces a word list to the candidates
// consistent with accumulated guess feedback, and ranks possible next
// guesses by how well they split the remaining candidate space.
//
// The package is pure computation over in-memory word lists. Loading,
// parsing and rendering live in the surrounding packages.
package solver

import "strings"

// Mark is the feedback for a single letter position.
type Mark uint8

const (
	// Absent means the letter does not occur in the solution (or every
	// occurrence is already accounted for by other marks).
	Absent Mark = iota
	// Present means the letter occurs in the solution at another position.
	Present
	// Match means the letter is correct and in the correct position.
	Match
)

// MaxWordLength bounds the supported word length so a Pattern always packs
// into a uint32 key (3^20 < 2^32).
const MaxWordLength = 20

// Pattern is the ordered per-position feedback the game would show for one
// guess. Patterns are produced by Simulate; front-ends only construct them
// by parsing raw feedback text.
type Pattern []Mark

// Simulate returns the feedback pattern the game shows for guess when the
// solution is solution. It implements the canonical two-pass rule:
//
// Pass 1 marks exact matches and counts the remaining (non-matched)
// solution letters. Pass 2 hands out Present marks from those counts,
// decrementing as it goes, so a letter appearing once in the solution but
// twice in the guess yields exactly one Present/Match, never two.
//
// Both words must have the same length; callers validate that upstream.
func Simulate(guess, solution string) Pattern {
	n := len(guess)
	p := make(Pattern, n)

	// Unmatched solution letters, a-z only. Word lists are normalized to
	// lowercase ASCII before they reach the solver.
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == solution[i] {
			p[i] = Match
		} else if j := letterIdx(solution[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if p[i] == Match {
			continue
		}
		if j := letterIdx(guess[i]); j >= 0 && counts[j] > 0 {
			p[i] = Present
			counts[j]--
		} else {
			p[i] = Absent
		}
	}
	return p
}

// letterIdx maps a lowercase ASCII letter to 0..25, or -1 for anything else.
func letterIdx(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}

// Key packs the pattern base-3 into a uint32, suitable as a map key when
// partitioning candidates. Distinct patterns of the same length always get
// distinct keys for lengths up to MaxWordLength.
func (p Pattern) Key() uint32 {
	var k uint32
	for _, m := range p {
		k = k*3 + uint32(m)
	}
	return k
}

// Equal reports whether two patterns are identical in length and marks.
func (p Pattern) Equal(other Pattern) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// AllMatch reports whether every position is a Match, i.e. the guess is the
// solution.
func (p Pattern) AllMatch() bool {
	for _, m := range p {
		if m != Match {
			return false
		}
	}
	return true
}

// String renders the pattern in the g/y/x text encoding (green, yellow,
// grey) used across the front-ends.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, m := range p {
		switch m {
		case Match:
			b.WriteByte('g')
		case Present:
			b.WriteByte('y')
		default:
			b.WriteByte('x')
		}
	}
	return b.String()
}
