/*
Package main implements the WordleHint solver binary.

WordleHint recommends next guesses for five-letter feedback word games. It
filters a solution list down to the words consistent with the feedback seen
so far, then ranks allowed guesses by how much each one is expected to
shrink the surviving candidates — exact entropy scoring by default, a
faster worst-case heuristic with -fast.

# Usage

One-shot mode takes the observed guesses as repeated -clue flags, each a
word and its feedback pattern (g/y/x or 2/1/0 per position):

	wordlehint -clue tares=xyxgx -clue bulls=xxxxx -n 5

Interactive mode keeps a session going, one `word pattern` line at a time:

	wordlehint -i

Server mode speaks msgpack over stdin/stdout; every request carries its own
clues, so the process stays stateless between requests:

	wordlehint -serve

# Word lists

The solver consumes two flat lists: candidate solutions and allowed
guesses. Point -answers and -guesses (or the config file) at the real game
lists; without them a small embedded list keeps the binary usable out of
the box.

# Configuration

A TOML file supplies the defaults for word length, suggestion count, mode
and presentation:

	[solver]
	word_length = 5
	suggestions = 1
	fast = false

	[cli]
	print_all = false
	max_display = 20

Flags always win over the config file.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/grb26/WordleHint/internal/cli"
	"github.com/grb26/WordleHint/internal/utils"
	"github.com/grb26/WordleHint/pkg/config"
	"github.com/grb26/WordleHint/pkg/server"
	"github.com/grb26/WordleHint/pkg/solver"
	"github.com/grb26/WordleHint/pkg/wordlist"
)

const (
	Version = "1.0.0"
	AppName = "wordlehint"
)

// clueFlags accumulates repeated -clue arguments.
type clueFlags []string

func (c *clueFlags) String() string { return strings.Join(*c, ",") }

func (c *clueFlags) Set(v string) error {
	*c = append(*c, v)
	return nil
}

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-ch
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires flags, config and word lists together and dispatches to the
// chosen front-end; the solving itself lives in pkg/solver.
func main() {
	sigHandler()

	var clues clueFlags
	flag.Var(&clues, "clue", "Observed guess as WORD=PATTERN (repeatable)")
	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to TOML config file")
	answersPath := flag.String("answers", "", "Solution candidate list file (default: embedded list)")
	guessesPath := flag.String("guesses", "", "Allowed guess list file (default: answers list)")
	n := flag.Int("n", -1, "Number of suggestions to print (0 for all)")
	fast := flag.Bool("fast", false, "Use the faster worst-case heuristic instead of entropy scoring")
	printAll := flag.Bool("p", false, "Print the full candidate list regardless of size")
	interactive := flag.Bool("i", false, "Run the interactive session")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server on stdin/stdout")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *n >= 0 {
		cfg.Solver.Suggestions = *n
	}
	if *fast {
		cfg.Solver.Fast = true
	}
	if *printAll {
		cfg.CLI.PrintAll = true
	}
	if *answersPath != "" {
		cfg.Lists.AnswersFile = *answersPath
	}
	if *guessesPath != "" {
		cfg.Lists.GuessesFile = *guessesPath
	}

	answers, guesses, err := loadLists(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Debugf("loaded %d answers, %d guesses", answers.Len(), guesses.Len())

	switch {
	case *serveMode:
		srv := server.NewServer(answers, guesses, cfg)
		if err := srv.Start(); err != nil {
			log.Fatalf("server: %v", err)
		}
	case *interactive:
		handler := cli.NewInputHandler(answers, guesses, cfg)
		if err := handler.Start(); err != nil {
			log.Fatalf("interactive session: %v", err)
		}
	default:
		if err := solveOnce(cfg, answers, guesses, clues); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

// loadLists resolves the two word lists from config, falling back to the
// embedded defaults and reusing answers as guesses when nothing else is
// configured.
func loadLists(cfg *config.Config) (answers, guesses *wordlist.List, err error) {
	length := cfg.Solver.WordLength

	if cfg.Lists.AnswersFile != "" {
		answers, err = wordlist.Load(cfg.Lists.AnswersFile, length)
	} else {
		answers, err = wordlist.DefaultAnswers()
	}
	if err != nil {
		return nil, nil, err
	}

	switch {
	case cfg.Lists.GuessesFile != "":
		guesses, err = wordlist.Load(cfg.Lists.GuessesFile, length)
	case cfg.Lists.AnswersFile == "":
		guesses, err = wordlist.DefaultGuesses()
	default:
		guesses = answers
	}
	if err != nil {
		return nil, nil, err
	}
	return answers, guesses, nil
}

// solveOnce runs one filter-and-rank pass for the -clue flags and prints
// the result.
func solveOnce(cfg *config.Config, answers, guesses *wordlist.List, clueArgs clueFlags) error {
	obs := make([]solver.Observation, 0, len(clueArgs))
	for _, arg := range clueArgs {
		o, err := utils.ParseClue(arg)
		if err != nil {
			return err
		}
		obs = append(obs, o)
	}

	clues, err := solver.NewClueSet(cfg.Solver.WordLength, obs)
	if err != nil {
		return err
	}

	candidates := clues.Filter(answers.Words())
	if len(candidates) > cfg.CLI.MaxDisplay && !cfg.CLI.PrintAll {
		fmt.Printf("%d candidate words remain\n", len(candidates))
	} else {
		fmt.Printf("candidates (%d):\n", len(candidates))
		for _, w := range candidates {
			fmt.Println("  " + w)
		}
	}

	ranked, err := solver.Rank(guesses.Words(), candidates, cfg.Solver.Suggestions, cfg.Mode())
	if err != nil {
		return err
	}
	fmt.Println("next guess suggestions:")
	for i, sg := range ranked {
		fmt.Printf("%3d. %s  (%.3f)\n", i+1, sg.Word, sg.Score)
	}
	return nil
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("[ WordleHint ] Suggests your next guess.")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
}
