package loader

import "time"

// Status is the outcome of one module.
type Status string

const (
	// StatusInitialized means the module loaded and its Init hook returned nil.
	StatusInitialized Status = "initialized"
	// StatusLoaded means the module loaded and has no Init hook.
	StatusLoaded Status = "loaded"
	// StatusFailed means lookup, load or Init failed.
	StatusFailed Status = "failed"
)

// Stage is the step at which a module failed.
type Stage string

const (
	StageLookup Stage = "lookup"
	StageLoad   Stage = "load"
	StageInit   Stage = "init"
)

// Result is the outcome of loading one descriptor's module.
type Result struct {
	ID       string        `json:"id"`
	File     string        `json:"file"`
	Category string        `json:"category"`
	Status   Status        `json:"status"`
	Stage    Stage         `json:"stage,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`

	// Err is the underlying error, kept for errors.Is checks.
	Err error `json:"-"`
}

// Succeeded reports whether the module loaded (and initialised, if it has a hook).
func (r Result) Succeeded() bool {
	return r.Status != StatusFailed
}

// Report summarises one loader run. Results follow descriptor order.
type Report struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Total      int       `json:"total"`
	Succeeded  int       `json:"succeeded"`
	Failed     int       `json:"failed"`
	Results    []Result  `json:"results"`
}

// OK reports whether every module succeeded.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// FailedResults returns the failed results in descriptor order.
func (r *Report) FailedResults() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Succeeded() {
			out = append(out, res)
		}
	}
	return out
}

// Count returns the number of results with the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}
