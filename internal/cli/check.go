package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/roach88/katas/internal/casefile"
	"github.com/roach88/katas/internal/harness"
	"github.com/roach88/katas/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Filter string // suite file filter (glob pattern)
	DB     string // journal database; empty disables recording
}

// CheckResult holds the overall check result.
type CheckResult struct {
	CheckID    string                `json:"check_id,omitempty"`
	Suites     []harness.SuiteResult `json:"suites"`
	LoadErrors []string              `json:"load_errors,omitempty"`
	Passed     int                   `json:"passed"`
	Failed     int                   `json:"failed"`
	Total      int                   `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <suites-dir>",
		Short: "Run case suites against the katas",
		Long: `Load every .yaml, .yml and .cue suite in a directory, evaluate each case
and compare the outcome with its expectation. With --db, the check and every
case outcome are recorded in a SQLite journal.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed, or a suite failed to load
  2 - Command error (invalid paths, journal errors, etc.)

Examples:
  katas check ./suites
  katas check ./suites --filter "sel*"
  katas check ./suites --db katas.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter suite files by glob pattern")
	cmd.Flags().StringVar(&opts.DB, "db", "", "record results in this journal database")

	return cmd
}

func runCheck(ctx context.Context, opts *CheckOptions, dir string, cmd *cobra.Command) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	f := opts.formatter(cmd)
	log := opts.logger().Named("check")

	if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
		return f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("suites directory not found: %s", dir), nil)
	}

	files, err := casefile.FindSuiteFiles(dir, opts.Filter)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeBadArgs, err.Error(), nil)
	}
	if len(files) == 0 {
		if opts.Format == "json" {
			return f.Success(CheckResult{Suites: []harness.SuiteResult{}})
		}
		return f.Success(nil, "No suites found.")
	}

	suites, loadErr := casefile.LoadDir(dir, opts.Filter)
	log.Debug("suites loaded", zap.Int("files", len(files)), zap.Int("suites", len(suites)))

	runnerOpts := []harness.Option{harness.WithLogger(opts.logger())}
	if opts.DB != "" {
		st, openErr := store.Open(opts.DB)
		if openErr != nil {
			return f.Fail(ExitCommandError, ErrCodeJournal, openErr.Error(), nil)
		}
		defer func() { err = multierr.Append(err, st.Close()) }()
		runnerOpts = append(runnerOpts, harness.WithJournal(st))
	}

	report, err := harness.New(runnerOpts...).Check(ctx, dir, opts.Filter, suites)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeJournal, err.Error(), nil)
	}

	result := CheckResult{CheckID: report.CheckID, Suites: report.Suites}
	result.Passed, result.Failed = report.Counts()
	result.Total = result.Passed + result.Failed
	for _, e := range multierr.Errors(loadErr) {
		log.Warn("suite not loaded", zap.Error(e))
		result.LoadErrors = append(result.LoadErrors, e.Error())
	}

	if opts.Format == "json" {
		return outputCheckJSON(cmd, result)
	}
	return outputCheckText(cmd, result)
}

// checkFailure returns the exit error and CLIError code for a failed check.
// Failing cases take precedence over load errors.
func checkFailure(result CheckResult) (*ExitError, string) {
	switch {
	case result.Failed > 0:
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed)), ErrCodeCheckFailed
	case len(result.LoadErrors) > 0:
		return NewExitError(ExitFailure, fmt.Sprintf("%d suite(s) failed to load", len(result.LoadErrors))), ErrCodeLoadFailed
	}
	return nil, ""
}

func outputCheckJSON(cmd *cobra.Command, result CheckResult) error {
	failure, code := checkFailure(result)

	response := CLIResponse{Status: "ok", Data: result}
	if failure != nil {
		response.Status = "error"
		response.Error = &CLIError{Code: code, Message: failure.Message}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if failure != nil {
		return failure
	}
	return nil
}

func outputCheckText(cmd *cobra.Command, result CheckResult) error {
	w := cmd.OutOrStdout()

	for _, e := range result.LoadErrors {
		fmt.Fprintf(w, "✗ load error: %s\n", e)
	}
	for _, s := range result.Suites {
		passed, failed := s.Counts()
		if s.Pass {
			fmt.Fprintf(w, "✓ %s (%d cases)\n", s.Suite, passed)
			continue
		}
		fmt.Fprintf(w, "✗ %s (%d passed, %d failed)\n", s.Suite, passed, failed)
		for _, c := range s.Cases {
			if !c.Pass {
				fmt.Fprintf(w, "  ✗ %s: %s\n", c.Name, c.Message)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Check Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	if result.CheckID != "" {
		fmt.Fprintf(w, "Recorded check %s\n", result.CheckID)
	}

	if failure, _ := checkFailure(result); failure != nil {
		return failure
	}

	fmt.Fprintln(w, "✓ All cases passed")
	return nil
}
