package solver

// Filter returns the subset of words consistent with every observation in
// the clue set, preserving the input order. The filter always recomputes
// from the full list: clue sets change arbitrarily between queries and a
// full pass is cheap next to scoring, so there is nothing to gain from
// incremental maintenance.
func (c *ClueSet) Filter(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if c.Consistent(w) {
			out = append(out, w)
		}
	}
	return out
}
