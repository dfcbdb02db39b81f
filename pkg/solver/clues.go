package solver

import "fmt"

// Observation is one completed guess attempt: the word that was played and
// the feedback the game showed for it.
type Observation struct {
	Guess   string
	Pattern Pattern
}

// MalformedObservationError reports an observation whose guess or pattern
// length does not fit the configured word length.
type MalformedObservationError struct {
	Index  int
	Guess  string
	Reason string
}

func (e *MalformedObservationError) Error() string {
	return fmt.Sprintf("solver: observation %d (%q): %s", e.Index, e.Guess, e.Reason)
}

// ClueSet is the normalized summary of every observation so far. A word is
// consistent with the set iff replaying each observed guess against that
// word reproduces the observed pattern exactly. That single rule subsumes
// all green/yellow/grey bookkeeping, including repeated-letter cases.
type ClueSet struct {
	length int
	obs    []Observation
}

// NewClueSet validates the observations against the word length and builds
// the clue set. An empty observation slice is valid and yields a set every
// word satisfies, which is what the very first guess needs.
func NewClueSet(length int, obs []Observation) (*ClueSet, error) {
	if length < 1 || length > MaxWordLength {
		return nil, fmt.Errorf("solver: word length %d out of range 1..%d", length, MaxWordLength)
	}
	for i, o := range obs {
		if len(o.Guess) != length {
			return nil, &MalformedObservationError{
				Index:  i,
				Guess:  o.Guess,
				Reason: fmt.Sprintf("guess has %d letters, want %d", len(o.Guess), length),
			}
		}
		if len(o.Pattern) != length {
			return nil, &MalformedObservationError{
				Index:  i,
				Guess:  o.Guess,
				Reason: fmt.Sprintf("pattern has %d marks, want %d", len(o.Pattern), length),
			}
		}
	}
	cs := &ClueSet{length: length, obs: make([]Observation, len(obs))}
	copy(cs.obs, obs)
	return cs, nil
}

// Length returns the word length the clue set was built for.
func (c *ClueSet) Length() int { return c.length }

// Observations returns a copy of the observations the set summarizes, in
// the order they were supplied. The set itself stays immutable.
func (c *ClueSet) Observations() []Observation {
	out := make([]Observation, len(c.obs))
	copy(out, c.obs)
	return out
}

// Consistent reports whether word could still be the solution given every
// observation in the set.
func (c *ClueSet) Consistent(word string) bool {
	if len(word) != c.length {
		return false
	}
	for _, o := range c.obs {
		if !Simulate(o.Guess, word).Equal(o.Pattern) {
			return false
		}
	}
	return true
}
