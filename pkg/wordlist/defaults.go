package wordlist

import _ "embed"

// Small curated fallback lists so the binary works out of the box without
// any files configured. Real play should point the config at full game
// lists; these keep demos and tests self-contained.

//go:embed default_answers.txt
var embeddedAnswers string

//go:embed default_guesses.txt
var embeddedGuesses string

// DefaultAnswers returns the embedded solution list.
func DefaultAnswers() (*List, error) {
	return build(splitLines(embeddedAnswers), 5, "embedded answers")
}

// DefaultGuesses returns the embedded allowed-guess list, a superset of the
// embedded answers.
func DefaultGuesses() (*List, error) {
	return build(splitLines(embeddedAnswers+"\n"+embeddedGuesses), 5, "embedded guesses")
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}
