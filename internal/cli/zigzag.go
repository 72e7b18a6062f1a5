package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/katas/internal/casefile"
	"github.com/roach88/katas/internal/zigzag"
)

// NewZigzagCommand creates the zigzag command.
func NewZigzagCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "zigzag <n>",
		Short: "Print an n×n matrix in zigzag order",
		Long: `Fill an n×n matrix along anti-diagonals starting at the top-left corner,
alternating direction, and print it one row per line.

Example:
  katas zigzag 3`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeBadArgs, fmt.Sprintf("size %q is not a number", args[0]), nil)
			}
			m, err := zigzag.Matrix(n)
			if err != nil {
				return failKata(f, casefile.KindZigzag, err)
			}

			width := len(strconv.Itoa(max(n*n-1, 0)))
			lines := make([]string, len(m))
			for i, row := range m {
				cells := make([]string, len(row))
				for j, v := range row {
					cells[j] = fmt.Sprintf("%*d", width, v)
				}
				lines[i] = strings.Join(cells, " ")
			}
			if len(lines) == 0 {
				lines = []string{"[]"}
			}
			return f.Success(m, lines...)
		},
	}
}
