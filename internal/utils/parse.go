// Package utils holds small parsing and formatting helpers shared by the
// CLI, the IPC server and the config layer.
package utils

import (
	"fmt"
	"strings"

	"github.com/grb26/WordleHint/pkg/solver"
)

// ParsePattern converts the textual feedback encoding into a Pattern.
// Two alphabets are accepted per position, case-insensitively:
//
//	g / y / x  — green, yellow, grey
//	2 / 1 / 0  — the numeric encoding some clients emit
//
// '.' is accepted as a synonym for grey so green-pattern style input like
// "..b.y" round-trips naturally.
func ParsePattern(s string) (solver.Pattern, error) {
	p := make(solver.Pattern, 0, len(s))
	for i, r := range strings.ToLower(s) {
		switch r {
		case 'g', '2':
			p = append(p, solver.Match)
		case 'y', '1':
			p = append(p, solver.Present)
		case 'x', '0', '.':
			p = append(p, solver.Absent)
		default:
			return nil, fmt.Errorf("utils: pattern %q: unknown feedback symbol %q at position %d", s, r, i)
		}
	}
	return p, nil
}

// ParseClue parses one "WORD=PATTERN" clue argument into an observation.
// The word is lowercased; pattern symbols follow ParsePattern. Length
// agreement with the configured word length is left to solver.NewClueSet,
// which reports it with the observation index attached.
func ParseClue(s string) (solver.Observation, error) {
	word, patternText, ok := strings.Cut(s, "=")
	if !ok {
		return solver.Observation{}, fmt.Errorf("utils: clue %q: want WORD=PATTERN", s)
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return solver.Observation{}, fmt.Errorf("utils: clue %q: empty word", s)
	}
	pattern, err := ParsePattern(strings.TrimSpace(patternText))
	if err != nil {
		return solver.Observation{}, err
	}
	return solver.Observation{Guess: word, Pattern: pattern}, nil
}

// ParseClueLine parses interactive input of the form "word pattern",
// separated by whitespace.
func ParseClueLine(line string) (solver.Observation, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return solver.Observation{}, fmt.Errorf("utils: line %q: want `word pattern`", line)
	}
	return ParseClue(fields[0] + "=" + fields[1])
}
