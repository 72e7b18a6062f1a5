package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/katas/internal/shape"
)

// RectResult is the JSON payload of the rect command.
type RectResult struct {
	Rectangle shape.Rectangle `json:"rectangle"`
	Area      int64           `json:"area"`
}

// NewRectCommand creates the rect command.
func NewRectCommand(rootOpts *RootOptions) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "rect [width height]",
		Short: "Print a rectangle as canonical JSON with its area",
		Long: `Build a rectangle from width and height, or decode one from JSON with
--from, and print its canonical JSON form and area.

Examples:
  katas rect 10 20
  katas rect --from '{"height":20,"width":10}'`,
		Args:          cobra.RangeArgs(0, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			r, err := rectFromArgs(from, args)
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeBadArgs, err.Error(), nil)
			}
			data, err := shape.ToJSON(r)
			if err != nil {
				return f.Fail(ExitFailure, ErrCodeGeneric, err.Error(), nil)
			}
			return f.Success(RectResult{Rectangle: r, Area: r.Area()}, string(data), fmt.Sprintf("area: %d", r.Area()))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "rectangle as JSON")
	return cmd
}

func rectFromArgs(from string, args []string) (shape.Rectangle, error) {
	switch {
	case from != "" && len(args) > 0:
		return shape.Rectangle{}, fmt.Errorf("use either --from or width and height, not both")
	case from != "":
		return shape.FromJSON[shape.Rectangle]([]byte(from))
	case len(args) != 2:
		return shape.Rectangle{}, fmt.Errorf("want width and height, got %d argument(s)", len(args))
	}

	w, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return shape.Rectangle{}, fmt.Errorf("width %q is not a number", args[0])
	}
	h, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return shape.Rectangle{}, fmt.Errorf("height %q is not a number", args[1])
	}
	return shape.NewRectangle(w, h), nil
}
