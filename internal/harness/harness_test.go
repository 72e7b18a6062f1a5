package harness

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/roach88/katas/internal/casefile"
	"github.com/roach88/katas/internal/store"
)

func loadSuite(t *testing.T, name string) *casefile.Suite {
	t.Helper()
	s, err := casefile.Load(filepath.Join("testdata", "suites", name))
	require.NoError(t, err)
	return s
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestRunWithGolden(t *testing.T) {
	for _, name := range []string{"selectors.yaml", "dominoes.cue", "zigzag.yml"} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, loadSuite(t, name)))
		})
	}
}

func TestRun_AllPass(t *testing.T) {
	res := New().Run(loadSuite(t, "selectors.yaml"))

	assert.True(t, res.Pass)
	passed, failed := res.Counts()
	assert.Equal(t, 7, passed)
	assert.Equal(t, 0, failed)
	for _, c := range res.Cases {
		assert.Empty(t, c.Message, c.Name)
	}
}

func TestRun_ReportsMismatches(t *testing.T) {
	suite := &casefile.Suite{
		Name: "broken",
		Cases: []casefile.Case{
			{
				Name:     "wrong output",
				Kind:     casefile.KindSelector,
				Selector: &casefile.SelectorNode{Text: "a > b"},
				Expect:   casefile.Expect{Output: strPtr("a + b")},
			},
			{
				Name:     "expected error",
				Kind:     casefile.KindSelector,
				Selector: &casefile.SelectorNode{Text: "a"},
				Expect:   casefile.Expect{Error: casefile.ErrKindDuplicatePart},
			},
			{
				Name:     "wrong error",
				Kind:     casefile.KindSelector,
				Selector: &casefile.SelectorNode{Text: "#a#b"},
				Expect:   casefile.Expect{Error: casefile.ErrKindOrderViolation},
			},
			{
				Name:   "unexpected error",
				Kind:   casefile.KindZigzag,
				Size:   intPtr(-2),
				Expect: casefile.Expect{Matrix: [][]int{}},
			},
			{
				Name:   "wrong matrix",
				Kind:   casefile.KindZigzag,
				Size:   intPtr(2),
				Expect: casefile.Expect{Matrix: [][]int{{0, 2}, {1, 3}}},
			},
			{
				Name:   "still runs",
				Kind:   casefile.KindDomino,
				Tiles:  [][]int{{1, 2}},
				Expect: casefile.Expect{Row: new(bool)},
			},
		},
	}

	res := New().Run(suite)
	require.Len(t, res.Cases, 6)
	assert.False(t, res.Pass)

	byName := make(map[string]CaseResult)
	for _, c := range res.Cases {
		assert.False(t, c.Pass, c.Name)
		byName[c.Name] = c
	}

	assert.Equal(t, `expected "a + b", got "a > b"`, byName["wrong output"].Message)
	assert.Equal(t, "expected error duplicate_part, got a", byName["expected error"].Message)
	assert.Contains(t, byName["wrong error"].Message, "error duplicate_part")
	assert.Equal(t, casefile.ErrKindDuplicatePart, byName["wrong error"].ErrorKind)
	assert.Contains(t, byName["unexpected error"].Message, "unexpected error invalid_size")
	assert.Equal(t, "expected [[0 2] [1 3]], got [[0 1] [2 3]]", byName["wrong matrix"].Message)
	assert.Equal(t, "expected row=false, got row=true", byName["still runs"].Message)
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", ErrorKind(casefile.KindSelector, nil))
	assert.Equal(t, casefile.ErrKindSyntax, ErrorKind(casefile.KindSelector, assert.AnError))
	assert.Equal(t, "", ErrorKind(casefile.KindDomino, assert.AnError))
}

func TestBuildSelector_Combined(t *testing.T) {
	node := &casefile.SelectorNode{
		Left: &casefile.SelectorNode{Parts: []casefile.Part{{Kind: "element", Value: "div"}, {Kind: "id", Value: "main"}}},
		Op:   strPtr("+"),
		Right: &casefile.SelectorNode{
			Left:  &casefile.SelectorNode{Text: "table#data"},
			Op:    strPtr("~"),
			Right: &casefile.SelectorNode{Text: "tr"},
		},
	}

	r, err := buildSelector(node)
	require.NoError(t, err)
	s, err := r.Render()
	require.NoError(t, err)
	assert.Equal(t, "div#main + table#data ~ tr", s)
}

func TestBuildSelector_Errors(t *testing.T) {
	_, err := buildSelector(nil)
	assert.Error(t, err)

	_, err = buildSelector(&casefile.SelectorNode{})
	assert.Error(t, err)

	_, err = buildSelector(&casefile.SelectorNode{Parts: []casefile.Part{{Kind: "tag", Value: "x"}}})
	assert.Error(t, err)
}

func TestRun_LogsCases(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := New(WithLogger(zap.New(core)))

	r.Run(loadSuite(t, "zigzag.yml"))

	entries := logs.FilterMessage("case evaluated").All()
	require.Len(t, entries, 3)
	assert.Equal(t, "harness", entries[0].LoggerName)
	assert.Equal(t, "zero", entries[0].ContextMap()["case"])
	assert.Equal(t, 1, logs.FilterMessage("suite evaluated").Len())
}

func TestCheck_WithoutJournal(t *testing.T) {
	suites := []*casefile.Suite{loadSuite(t, "dominoes.cue"), loadSuite(t, "zigzag.yml")}

	report, err := New().Check(context.Background(), "testdata/suites", "", suites)
	require.NoError(t, err)

	assert.True(t, report.Pass)
	assert.Empty(t, report.CheckID)
	require.Len(t, report.Suites, 2)
	passed, failed := report.Counts()
	assert.Equal(t, 7, passed)
	assert.Equal(t, 0, failed)
}

func TestCheck_RecordsJournal(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	start := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	r := New(
		WithJournal(st),
		WithIDGenerator(store.NewFixedGenerator("check-1", "run-1", "run-2", "run-3", "check-2", "run-4", "run-5", "run-6")),
		WithClock(func() time.Time { return start }),
	)

	suites := []*casefile.Suite{loadSuite(t, "zigzag.yml")}
	report, err := r.Check(ctx, "testdata/suites", "zig*", suites)
	require.NoError(t, err)
	assert.Equal(t, "check-1", report.CheckID)

	check, err := st.ReadCheck(ctx, "check-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), check.Seq)
	assert.Equal(t, "zig*", check.Filter)
	assert.True(t, start.Equal(check.StartedAt))

	runs, err := st.ListRuns(ctx, store.RunFilter{CheckID: "check-1"})
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, "run-1", runs[0].ID)
	assert.Equal(t, int64(2), runs[0].Seq)
	assert.Equal(t, "zero", runs[0].Case)
	assert.JSONEq(t, `{"size":0}`, string(runs[0].Input))
	assert.JSONEq(t, `[]`, string(runs[0].Output))

	assert.JSONEq(t, `[[0,1,5],[2,4,6],[3,7,8]]`, string(runs[1].Output))
	assert.Equal(t, "invalid_size", runs[2].ErrorKind)
	assert.Equal(t, "null", string(runs[2].Output))
	for _, run := range runs {
		assert.True(t, run.Pass)
	}

	// A second check continues the seq and shares input hashes.
	report, err = r.Check(ctx, "testdata/suites", "zig*", suites)
	require.NoError(t, err)
	assert.Equal(t, "check-2", report.CheckID)

	again, err := st.ListRuns(ctx, store.RunFilter{CheckID: "check-2"})
	require.NoError(t, err)
	require.Len(t, again, 3)
	assert.Equal(t, int64(6), again[0].Seq)
	assert.Equal(t, runs[0].InputHash, again[0].InputHash)

	history, err := st.ListRuns(ctx, store.RunFilter{InputHash: runs[1].InputHash})
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestCheck_JournalWriteIsAtomic(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	r := New(WithJournal(st), WithIDGenerator(store.NewFixedGenerator("check-1", "run-1", "run-2")))

	// The second case carries an input canonical JSON cannot encode.
	report := &Report{Pass: true, Suites: []SuiteResult{{
		Suite: "partial",
		Pass:  true,
		Cases: []CaseResult{
			{Name: "ok", Kind: casefile.KindZigzag, Pass: true, Output: [][]int{}, input: map[string]any{"size": 0}},
			{Name: "bad", Kind: casefile.KindZigzag, Pass: true, Output: [][]int{}, input: map[string]any{"size": 1.5}},
		},
	}}}

	_, err = r.record(ctx, "testdata/suites", "", report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "partial/bad")

	checks, err := st.ListChecks(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, checks)

	runs, err := st.ListRuns(ctx, store.RunFilter{})
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestCheck_CanceledContextRecordsNothing(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := New(WithJournal(st)).Check(ctx, "testdata/suites", "", []*casefile.Suite{loadSuite(t, "zigzag.yml")})
	require.Error(t, err)
	assert.Empty(t, report.CheckID)

	checks, err := st.ListChecks(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, checks)
}
