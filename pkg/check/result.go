package check

import (
	"errors"
	"time"
)

// ErrWaitTimeout is the one domain error of a verification run: the
// selector did not become visible before its bound elapsed. Drivers wrap
// the underlying automation error with this sentinel so the runner can
// distinguish a page that never got ready from a broken run.
var ErrWaitTimeout = errors.New("selector wait timed out")

// Status classifies the outcome of one check.
type Status string

const (
	// StatusPassed means the page reached its readiness milestone
	StatusPassed Status = "passed"

	// StatusFailed means the selector wait (and fallback, if any)
	// timed out
	StatusFailed Status = "failed"

	// StatusError means the check could not be executed (navigation,
	// click, or screenshot failure)
	StatusError Status = "error"
)

// Result records the outcome of one check.
type Result struct {
	Name         string        `json:"name"`
	URL          string        `json:"url"`
	Title        string        `json:"title,omitempty"`
	Status       Status        `json:"status"`
	Required     bool          `json:"required"`
	FallbackUsed bool          `json:"fallback_used,omitempty"`
	Duration     time.Duration `json:"duration_ns"`
	Error        string        `json:"error,omitempty"`
	Screenshot   string        `json:"screenshot,omitempty"`

	// Diagnostics holds a snapshot of the page's interactive elements,
	// captured when a wait times out
	Diagnostics string `json:"diagnostics,omitempty"`
}

// Summary aggregates the results of one verification run.
type Summary struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Results    []Result  `json:"results"`
	Passed     int       `json:"passed"`
	Failed     int       `json:"failed"`
	Errored    int       `json:"errored"`
}

// add appends a result and updates the counters.
func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	switch r.Status {
	case StatusPassed:
		s.Passed++
	case StatusFailed:
		s.Failed++
	case StatusError:
		s.Errored++
	}
}

// Ok reports whether every required check passed.
func (s *Summary) Ok() bool {
	for _, r := range s.Results {
		if r.Required && r.Status != StatusPassed {
			return false
		}
	}
	return true
}
