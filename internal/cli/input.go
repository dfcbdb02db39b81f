// Package cli implements the interactive stdin loop: each line adds one
// observed guess, and the handler re-filters the candidates and re-ranks
// the next guesses after every line.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/TwiN/go-color"
	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"

	"github.com/grb26/WordleHint/internal/utils"
	"github.com/grb26/WordleHint/pkg/config"
	"github.com/grb26/WordleHint/pkg/solver"
	"github.com/grb26/WordleHint/pkg/wordlist"
)

// Scoring work below this many simulate calls is not worth a progress bar.
const progressThreshold = 250_000

// InputHandler drives one interactive session. Observations accumulate
// until the user resets; word lists stay read-only throughout.
type InputHandler struct {
	answers *wordlist.List
	guesses *wordlist.List
	cfg     *config.Config
	obs     []solver.Observation
	out     io.Writer
}

// NewInputHandler wires up an interactive session over stdout.
func NewInputHandler(answers, guesses *wordlist.List, cfg *config.Config) *InputHandler {
	return &InputHandler{
		answers: answers,
		guesses: guesses,
		cfg:     cfg,
		out:     os.Stdout,
	}
}

// Start runs the loop until EOF or an explicit quit.
func (h *InputHandler) Start() error {
	fmt.Fprintf(h.out, "WordleHint interactive — %d answers, %d guesses loaded\n", h.answers.Len(), h.guesses.Len())
	fmt.Fprintln(h.out, "Enter guesses as `word pattern` (pattern letters g/y/x or 2/1/0).")
	fmt.Fprintln(h.out, "Commands: reset, quit")

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprint(h.out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == "quit" || line == "exit":
			return nil
		case line == "reset":
			h.obs = nil
			fmt.Fprintln(h.out, "cleared all clues")
			continue
		}
		h.handleLine(line)
	}
}

// handleLine parses one clue, then reports the shrunk candidate set and the
// freshly ranked suggestions.
func (h *InputHandler) handleLine(line string) {
	obs, err := utils.ParseClueLine(line)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	clues, err := solver.NewClueSet(h.cfg.Solver.WordLength, append(h.obs, obs))
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	h.obs = append(h.obs, obs)
	fmt.Fprintln(h.out, "  "+h.tiles(obs))

	candidates := clues.Filter(h.answers.Words())
	h.printCandidates(candidates)
	if len(candidates) == 0 {
		log.Error("no consistent candidates — clues contradict each other or the list is incomplete")
		return
	}

	start := time.Now()
	ranked, err := h.rank(candidates)
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	log.Debugf("ranked %d guesses in %v", h.guesses.Len(), time.Since(start))

	n := h.cfg.Solver.Suggestions
	if n == 0 || n > len(ranked) {
		n = len(ranked)
	}
	fmt.Fprintln(h.out, "next guess suggestions:")
	for i := 0; i < n; i++ {
		fmt.Fprintf(h.out, "%3d. %s  (%.3f)\n", i+1, ranked[i].Word, ranked[i].Score)
	}
}

func (h *InputHandler) rank(candidates []string) ([]solver.Suggestion, error) {
	n := h.cfg.Solver.Suggestions
	mode := h.cfg.Mode()

	var opts solver.RankOptions
	if h.guesses.Len()*len(candidates) >= progressThreshold {
		bar := progressbar.Default(int64(h.guesses.Len()), "scoring")
		opts.Progress = func(done int) { bar.Add(done) }
		defer bar.Finish()
	}
	return solver.RankWith(h.guesses.Words(), candidates, n, mode, opts)
}

func (h *InputHandler) printCandidates(candidates []string) {
	if len(candidates) > h.cfg.CLI.MaxDisplay && !h.cfg.CLI.PrintAll {
		fmt.Fprintf(h.out, "%d candidate words remain\n", len(candidates))
		return
	}
	fmt.Fprintf(h.out, "candidates (%d):\n", len(candidates))
	for _, w := range candidates {
		fmt.Fprintln(h.out, "  "+w)
	}
}

// tiles renders a guess with its feedback colors, one colored letter per
// position.
func (h *InputHandler) tiles(obs solver.Observation) string {
	if !h.cfg.CLI.Color {
		return obs.Guess + " " + obs.Pattern.String()
	}
	var b strings.Builder
	for i, m := range obs.Pattern {
		ch := strings.ToUpper(string(obs.Guess[i]))
		switch m {
		case solver.Match:
			b.WriteString(color.Ize(color.Green, ch))
		case solver.Present:
			b.WriteString(color.Ize(color.Yellow, ch))
		default:
			b.WriteString(color.Ize(color.Gray, ch))
		}
	}
	return b.String()
}
