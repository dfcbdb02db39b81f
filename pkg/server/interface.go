/*
Package server implements msgpack IPC for the solver over stdin/stdout.

Each message is one self-contained solve: the clues arrive with the
request, the response carries the surviving candidate count (and
optionally the candidates themselves) plus the ranked next guesses. The
server holds nothing between requests except the read-only word lists.

A solve request looks like:

	{"id": "req_001", "clues": [{"w": "tares", "p": "xyxgx"}], "l": 5}

and is answered with:

	{"id": "req_001", "c": 1, "sg": [{"w": "abbey", "s": 0}], "t": 212}

Errors come back with a code: 400 for malformed clues, 422 when the clues
contradict each other and no candidate survives, 500 otherwise. A request
with action "health" answers with a plain ok status.
*/
package server

// Clue is one observed guess with its feedback in text encoding
// (g/y/x or 2/1/0 per position).
type Clue struct {
	Word    string `msgpack:"w"`
	Pattern string `msgpack:"p"`
}

// SolveRequest - one self-contained solve
type SolveRequest struct {
	ID                string `msgpack:"id"`
	Action            string `msgpack:"action,omitempty"` // "" or "solve", "health"
	Clues             []Clue `msgpack:"clues,omitempty"`
	Limit             int    `msgpack:"l,omitempty"`   // 0 falls back to the configured N, negative means the full ranking
	Fast              bool   `msgpack:"f,omitempty"`   // fast heuristic instead of entropy
	IncludeCandidates bool   `msgpack:"all,omitempty"` // return the candidate words too
}

// RankedGuess - one suggestion in the response
type RankedGuess struct {
	Word  string  `msgpack:"w"`
	Score float64 `msgpack:"s"`
}

// SolveResponse - solve result
type SolveResponse struct {
	ID          string        `msgpack:"id"`
	Candidates  int           `msgpack:"c"`
	Words       []string      `msgpack:"words,omitempty"`
	Suggestions []RankedGuess `msgpack:"sg"`
	TookUs      int64         `msgpack:"t"`
}

// StatusResponse - health and readiness signals
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// SolveError holds basic error information for failed requests
type SolveError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// Error codes, loosely HTTP-shaped like the rest of the protocol.
const (
	CodeBadRequest   = 400
	CodeNoCandidates = 422
	CodeInternal     = 500
)
