package harness

import "fmt"

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Pass bool   `json:"pass"`

	// Output is what the kata produced: a string, a bool or a matrix.
	// Nil when the kata returned an error.
	Output any `json:"output"`

	// ErrorKind classifies the kata's error, if any.
	ErrorKind string `json:"error_kind,omitempty"`

	// Message explains a failure. Empty when Pass is true.
	Message string `json:"message,omitempty"`

	input any
}

// SuiteResult is the outcome of one suite.
type SuiteResult struct {
	Suite string       `json:"suite"`
	Pass  bool         `json:"pass"`
	Cases []CaseResult `json:"cases"`
}

// NewSuiteResult creates a passing result with no cases.
func NewSuiteResult(name string) *SuiteResult {
	return &SuiteResult{Suite: name, Pass: true, Cases: []CaseResult{}}
}

// Add appends a case outcome; any failing case fails the suite.
func (r *SuiteResult) Add(c CaseResult) {
	r.Cases = append(r.Cases, c)
	if !c.Pass {
		r.Pass = false
	}
}

// Counts returns the number of passing and failing cases.
func (r *SuiteResult) Counts() (passed, failed int) {
	for _, c := range r.Cases {
		if c.Pass {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// Report is the outcome of a Check over several suites.
type Report struct {
	// CheckID identifies the journal row; empty when no journal is attached.
	CheckID string        `json:"check_id,omitempty"`
	Pass    bool          `json:"pass"`
	Suites  []SuiteResult `json:"suites"`
}

// Counts totals passing and failing cases across suites.
func (r *Report) Counts() (passed, failed int) {
	for i := range r.Suites {
		p, f := r.Suites[i].Counts()
		passed += p
		failed += f
	}
	return passed, failed
}

// MismatchError describes a case whose outcome differs from its expectation.
type MismatchError struct {
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
}
