// Package wordlist loads and normalizes the two flat word lists the solver
// consumes: candidate solutions and allowed guesses. Lists are read once
// per invocation and immutable afterwards.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrEmptyList is returned when a source yields no usable words. The solver
// never sees an empty list; this surfaces as a configuration error instead.
var ErrEmptyList = errors.New("wordlist: no usable words")

// List is an ordered, deduplicated word list of a fixed length. A patricia
// trie doubles as the dedup structure during the build and the membership
// index afterwards.
type List struct {
	words  []string
	index  *patricia.Trie
	length int
}

// Load reads one word per line from path, lowercases and trims each line,
// and keeps only alphabetic words of the requested length. Duplicates keep
// their first occurrence so list order stays meaningful for tie-breaking.
func Load(path string, length int) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read %s: %w", path, err)
	}
	return build(lines, length, path)
}

// FromWords builds a list from in-memory words with the same normalization
// as Load. Server requests and tests use this path.
func FromWords(words []string, length int) (*List, error) {
	return build(words, length, "memory")
}

func build(lines []string, length int, source string) (*List, error) {
	l := &List{index: patricia.NewTrie(), length: length}

	dropped := 0
	for _, raw := range lines {
		w := strings.ToLower(strings.TrimSpace(raw))
		if len(w) != length || !isAlpha(w) {
			if w != "" {
				dropped++
			}
			continue
		}
		// Insert reports false when the word is already present.
		if !l.index.Insert(patricia.Prefix(w), struct{}{}) {
			continue
		}
		l.words = append(l.words, w)
	}
	if dropped > 0 {
		log.Debugf("wordlist: dropped %d malformed words from %s", dropped, source)
	}
	if len(l.words) == 0 {
		return nil, fmt.Errorf("%w (source %s, length %d)", ErrEmptyList, source, length)
	}
	log.Debugf("wordlist: loaded %d words from %s", len(l.words), source)
	return l, nil
}

// Words returns the list in load order. Callers must not mutate it.
func (l *List) Words() []string { return l.words }

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// Length returns the per-word letter count.
func (l *List) Length() int { return l.length }

// Contains reports membership, case-insensitively.
func (l *List) Contains(w string) bool {
	return l.index.Match(patricia.Prefix(strings.ToLower(w)))
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
