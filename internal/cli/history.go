package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/roach88/katas/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB      string
	CheckID string
	Failed  bool
	Limit   int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded checks and case outcomes",
		Long: `List checks recorded with "katas check --db", most recent first, or the
case outcomes of one check with --check.

Examples:
  katas history --db katas.db
  katas history --db katas.db --check <id> --failed`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "journal database (required)")
	cmd.Flags().StringVar(&opts.CheckID, "check", "", "show the runs of one check")
	cmd.Flags().BoolVar(&opts.Failed, "failed", false, "only show failing runs")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of rows (0 = all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, cmd *cobra.Command) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	f := opts.formatter(cmd)

	// Opening would create an empty journal; a missing file is a usage error.
	if _, statErr := os.Stat(opts.DB); statErr != nil {
		return f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("journal not found: %s", opts.DB), nil)
	}
	st, err := store.Open(opts.DB)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeJournal, err.Error(), nil)
	}
	defer func() { err = multierr.Append(err, st.Close()) }()

	if opts.CheckID == "" {
		checks, err := st.ListChecks(ctx, opts.Limit)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeJournal, err.Error(), nil)
		}
		lines := make([]string, 0, len(checks)+1)
		if len(checks) == 0 {
			lines = append(lines, "No checks recorded.")
		}
		for _, c := range checks {
			lines = append(lines, fmt.Sprintf("%4d  %s  %s  %d passed, %d failed", c.Seq, c.ID, c.Source, c.Passed, c.Failed))
		}
		return f.Success(checks, lines...)
	}

	if _, err := st.ReadCheck(ctx, opts.CheckID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return f.Fail(ExitFailure, ErrCodeNotFound, err.Error(), nil)
		}
		return f.Fail(ExitCommandError, ErrCodeJournal, err.Error(), nil)
	}

	runs, err := st.ListRuns(ctx, store.RunFilter{CheckID: opts.CheckID, FailedOnly: opts.Failed, Limit: opts.Limit})
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeJournal, err.Error(), nil)
	}
	lines := make([]string, 0, len(runs)+1)
	if len(runs) == 0 {
		lines = append(lines, "No runs.")
	}
	for _, r := range runs {
		mark := "✓"
		if !r.Pass {
			mark = "✗"
		}
		line := fmt.Sprintf("%s %s/%s  %s", mark, r.Suite, r.Case, r.Output)
		if r.Message != "" {
			line += "  (" + r.Message + ")"
		}
		lines = append(lines, line)
	}
	return f.Success(runs, lines...)
}
