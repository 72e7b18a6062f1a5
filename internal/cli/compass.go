package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/katas/internal/compass"
)

// NewCompassCommand creates the compass command.
func NewCompassCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compass [abbreviation]",
		Short: "List the 32 compass points or look one up",
		Long: `Without arguments, list all 32 points clockwise from north with their
azimuths. With an abbreviation such as NbE or SSW, print that point only.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			if len(args) == 1 {
				p, ok := compass.Lookup(args[0])
				if !ok {
					return f.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("unknown compass point %q", args[0]), nil)
				}
				return f.Success(p, formatPoint(p))
			}

			points := compass.Points()
			lines := make([]string, len(points))
			for i, p := range points {
				lines[i] = formatPoint(p)
			}
			return f.Success(points, lines...)
		},
	}
}

func formatPoint(p compass.Point) string {
	return fmt.Sprintf("%-4s %6.2f", p.Abbreviation, p.Azimuth)
}
