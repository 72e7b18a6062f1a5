package harness

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/roach88/katas/internal/casefile"
	"github.com/roach88/katas/internal/store"
)

// Runner evaluates suites. The zero value is not usable; call New.
type Runner struct {
	log     *zap.Logger
	journal *store.Store
	ids     store.IDGenerator
	now     func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log.Named("harness")
		}
	}
}

// WithJournal records every Check in st.
func WithJournal(st *store.Store) Option {
	return func(r *Runner) { r.journal = st }
}

// WithIDGenerator replaces the UUIDv7 generator used for journal rows.
func WithIDGenerator(ids store.IDGenerator) Option {
	return func(r *Runner) { r.ids = ids }
}

// WithClock replaces the wall clock used for check start times.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{
		log: zap.NewNop(),
		ids: store.UUIDv7Generator{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every case of s in order.
func (r *Runner) Run(s *casefile.Suite) *SuiteResult {
	result := NewSuiteResult(s.Name)
	for i := range s.Cases {
		c := &s.Cases[i]
		cr := r.runCase(c)
		r.log.Debug("case evaluated",
			zap.String("suite", s.Name),
			zap.String("case", c.Name),
			zap.String("kind", c.Kind),
			zap.Bool("pass", cr.Pass),
		)
		result.Add(cr)
	}
	passed, failed := result.Counts()
	r.log.Debug("suite evaluated",
		zap.String("suite", s.Name),
		zap.Int("passed", passed),
		zap.Int("failed", failed),
	)
	return result
}

func (r *Runner) runCase(c *casefile.Case) CaseResult {
	out := evaluate(c)
	cr := CaseResult{
		Name:      c.Name,
		Kind:      c.Kind,
		Output:    out.output,
		ErrorKind: ErrorKind(c.Kind, out.err),
		input:     out.input,
	}
	if err := compare(c, out); err != nil {
		cr.Message = err.Error()
		return cr
	}
	cr.Pass = true
	return cr
}

// Check evaluates suites and, when a journal is attached, records the
// check and every case outcome. source and filter describe where the
// suites came from and are stored with the check.
func (r *Runner) Check(ctx context.Context, source, filter string, suites []*casefile.Suite) (*Report, error) {
	report := &Report{Pass: true, Suites: make([]SuiteResult, 0, len(suites))}
	for _, s := range suites {
		res := r.Run(s)
		if !res.Pass {
			report.Pass = false
		}
		report.Suites = append(report.Suites, *res)
	}

	if r.journal == nil {
		return report, nil
	}

	checkID, err := r.record(ctx, source, filter, report)
	if err != nil {
		return report, err
	}
	report.CheckID = checkID
	return report, nil
}

// record writes the check and its runs to the journal as one transaction.
func (r *Runner) record(ctx context.Context, source, filter string, report *Report) (string, error) {
	last, err := r.journal.LastSeq(ctx)
	if err != nil {
		return "", err
	}
	clock := store.NewClockAt(last)

	check := store.Check{
		ID:        r.ids.Generate(),
		Seq:       clock.Next(),
		Source:    source,
		Filter:    filter,
		StartedAt: r.now(),
	}
	var runs []store.Run
	for _, sr := range report.Suites {
		for _, cr := range sr.Cases {
			run, err := r.newRun(check.ID, clock.Next(), sr.Suite, cr)
			if err != nil {
				return "", err
			}
			runs = append(runs, run)
		}
	}

	if err := r.journal.WriteCheckWithRuns(ctx, check, runs); err != nil {
		return "", err
	}

	r.log.Info("check recorded",
		zap.String("check_id", check.ID),
		zap.Int64("seq", check.Seq),
		zap.Int("suites", len(report.Suites)),
	)
	return check.ID, nil
}

func (r *Runner) newRun(checkID string, seq int64, suite string, cr CaseResult) (store.Run, error) {
	input, hash, err := store.EncodeInput(cr.input)
	if err != nil {
		return store.Run{}, fmt.Errorf("case %s/%s: %w", suite, cr.Name, err)
	}
	output, err := store.EncodeOutput(cr.Output)
	if err != nil {
		return store.Run{}, fmt.Errorf("case %s/%s: %w", suite, cr.Name, err)
	}
	return store.Run{
		ID:        r.ids.Generate(),
		CheckID:   checkID,
		Seq:       seq,
		Suite:     suite,
		Case:      cr.Name,
		Kind:      cr.Kind,
		InputHash: hash,
		Input:     input,
		Output:    output,
		ErrorKind: cr.ErrorKind,
		Pass:      cr.Pass,
		Message:   cr.Message,
	}, nil
}

// compare checks an outcome against the case's expect block.
func compare(c *casefile.Case, out outcome) error {
	want := c.Expect
	got := ErrorKind(c.Kind, out.err)

	if want.Error != "" {
		if out.err == nil {
			return &MismatchError{Expected: "error " + want.Error, Actual: fmt.Sprintf("%v", out.output)}
		}
		if got != want.Error {
			return &MismatchError{Expected: "error " + want.Error, Actual: fmt.Sprintf("error %s (%v)", kindOrUnknown(got), out.err)}
		}
		return nil
	}

	if out.err != nil {
		return fmt.Errorf("unexpected error %s: %w", kindOrUnknown(got), out.err)
	}

	switch c.Kind {
	case casefile.KindSelector:
		s, _ := out.output.(string)
		if want.Output != nil && *want.Output != s {
			return &MismatchError{Expected: fmt.Sprintf("%q", *want.Output), Actual: fmt.Sprintf("%q", s)}
		}
	case casefile.KindDomino:
		ok, _ := out.output.(bool)
		if want.Row != nil && *want.Row != ok {
			return &MismatchError{Expected: fmt.Sprintf("row=%t", *want.Row), Actual: fmt.Sprintf("row=%t", ok)}
		}
	case casefile.KindZigzag:
		m, _ := out.output.([][]int)
		if !slices.EqualFunc(want.Matrix, m, func(a, b []int) bool { return slices.Equal(a, b) }) {
			return &MismatchError{Expected: fmt.Sprintf("%v", want.Matrix), Actual: fmt.Sprintf("%v", m)}
		}
	}
	return nil
}

func kindOrUnknown(kind string) string {
	if kind == "" {
		return "unknown"
	}
	return kind
}
