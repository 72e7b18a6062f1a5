package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/katas/internal/canon"
	"github.com/roach88/katas/internal/casefile"
)

// RunWithGolden evaluates a suite and compares the result against
// testdata/golden/{suite.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, suite *casefile.Suite) error {
	t.Helper()
	return AssertGolden(t, suite.Name, New().Run(suite))
}

// AssertGolden compares an existing result against a golden file without
// re-running the suite.
func AssertGolden(t *testing.T, name string, result *SuiteResult) error {
	t.Helper()

	data, err := canon.Marshal(result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
