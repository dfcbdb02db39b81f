package server

import (
	"errors"
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/grb26/WordleHint/internal/logger"
	"github.com/grb26/WordleHint/internal/utils"
	"github.com/grb26/WordleHint/pkg/config"
	"github.com/grb26/WordleHint/pkg/solver"
	"github.com/grb26/WordleHint/pkg/wordlist"
)

// Server answers solve requests over a msgpack stream.
type Server struct {
	answers *wordlist.List
	guesses *wordlist.List
	cfg     *config.Config
	dec     *msgpack.Decoder
	enc     *msgpack.Encoder
	log     *charmlog.Logger
}

// NewServer creates a solve server reading requests from stdin and writing
// responses to stdout.
func NewServer(answers, guesses *wordlist.List, cfg *config.Config) *Server {
	return newServer(answers, guesses, cfg, os.Stdin, os.Stdout)
}

func newServer(answers, guesses *wordlist.List, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		answers: answers,
		guesses: guesses,
		cfg:     cfg,
		dec:     msgpack.NewDecoder(r),
		enc:     msgpack.NewEncoder(w),
		log:     logger.New("server"),
	}
}

// Start signals readiness and processes requests until EOF.
func (s *Server) Start() error {
	s.log.Debugf("starting solve server (answers=%d guesses=%d)", s.answers.Len(), s.guesses.Len())
	s.send(StatusResponse{Status: "ready"})

	for {
		var req SolveRequest
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req SolveRequest) {
	switch req.Action {
	case "", "solve":
		s.handleSolve(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, "unknown action: "+req.Action, CodeBadRequest)
	}
}

// handleSolve runs one full filter-and-rank pass for the request's clues.
func (s *Server) handleSolve(req SolveRequest) {
	obs := make([]solver.Observation, 0, len(req.Clues))
	for _, c := range req.Clues {
		o, err := utils.ParseClue(c.Word + "=" + c.Pattern)
		if err != nil {
			s.sendError(req.ID, err.Error(), CodeBadRequest)
			return
		}
		obs = append(obs, o)
	}

	clues, err := solver.NewClueSet(s.answers.Length(), obs)
	if err != nil {
		s.sendError(req.ID, err.Error(), CodeBadRequest)
		return
	}

	// Limit 0 (unset) falls back to the configured N; a negative limit
	// requests the full ranking, the core's n=0.
	limit := req.Limit
	if limit == 0 {
		limit = s.cfg.Solver.Suggestions
	} else if limit < 0 {
		limit = 0
	}
	mode := s.cfg.Mode()
	if req.Fast {
		mode = solver.Fast
	}

	start := time.Now()
	candidates := clues.Filter(s.answers.Words())
	ranked, err := solver.Rank(s.guesses.Words(), candidates, limit, mode)
	if err != nil {
		if errors.Is(err, solver.ErrNoCandidates) {
			s.sendError(req.ID, err.Error(), CodeNoCandidates)
		} else {
			s.sendError(req.ID, err.Error(), CodeInternal)
		}
		return
	}
	elapsed := time.Since(start)

	resp := SolveResponse{
		ID:          req.ID,
		Candidates:  len(candidates),
		Suggestions: make([]RankedGuess, len(ranked)),
		TookUs:      elapsed.Microseconds(),
	}
	if req.IncludeCandidates {
		resp.Words = candidates
	}
	for i, sg := range ranked {
		resp.Suggestions[i] = RankedGuess{Word: sg.Word, Score: sg.Score}
	}
	s.log.Debugf("solved %q: %d candidates in %v", req.ID, len(candidates), elapsed)
	s.send(resp)
}

func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(SolveError{ID: id, Error: message, Code: code})
}
