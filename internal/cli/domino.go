package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/katas/internal/casefile"
	"github.com/roach88/katas/internal/domino"
	"github.com/roach88/katas/internal/shape"
)

// DominoOptions holds flags for the domino command.
type DominoOptions struct {
	*RootOptions
	Tiles   string // JSON array of pairs, instead of positional tiles
	Arrange bool   // also print one valid row
}

// DominoResult is the JSON payload of the domino command.
type DominoResult struct {
	CanMakeRow bool          `json:"can_make_row"`
	Row        []domino.Tile `json:"row,omitempty"`
}

// NewDominoCommand creates the domino command.
func NewDominoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DominoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "domino [a:b]...",
		Short: "Decide whether tiles can form one row",
		Long: `Report whether every tile can be placed in a single row with matching
neighbours. Tiles are given as a:b pairs or as a JSON array with --tiles.

Exit codes:
  0 - Answer printed (true or false)
  1 - A tile is malformed
  2 - Command error (unparseable arguments)

Examples:
  katas domino 1:2 2:3 3:1
  katas domino --tiles '[[1,1],[2,2],[1,2]]' --arrange`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDomino(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Tiles, "tiles", "", "tiles as a JSON array of pairs")
	cmd.Flags().BoolVar(&opts.Arrange, "arrange", false, "print one valid row when possible")

	return cmd
}

func runDomino(opts *DominoOptions, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	log := opts.logger().Named("domino")

	raw, err := parseTileArgs(opts.Tiles, args)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeBadArgs, err.Error(), nil)
	}
	log.Debug("tiles parsed", zap.Int("count", len(raw)))

	tiles, err := domino.ParseTiles(raw)
	if err != nil {
		return failKata(f, casefile.KindDomino, err)
	}

	ok := domino.CanMakeRow(tiles)
	result := DominoResult{CanMakeRow: ok}
	text := []string{strconv.FormatBool(ok)}
	if opts.Arrange && ok && len(tiles) > 0 {
		row, arranged := domino.Arrange(tiles)
		if !arranged {
			return f.Fail(ExitFailure, ErrCodeGeneric, "no row found for tiles that can make one", nil)
		}
		result.Row = row
		parts := make([]string, len(row))
		for i, t := range row {
			parts[i] = t.String()
		}
		text = append(text, strings.Join(parts, " "))
	}
	return f.Success(result, text...)
}

// parseTileArgs reads tiles from the --tiles JSON or from a:b arguments.
// Pairs with the wrong number of values are passed through so the kata can
// reject them.
func parseTileArgs(jsonTiles string, args []string) ([][]int, error) {
	if jsonTiles != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("use either --tiles or positional tiles, not both")
		}
		return shape.FromJSON[[][]int]([]byte(jsonTiles))
	}

	raw := make([][]int, 0, len(args))
	for _, arg := range args {
		fields := strings.Split(arg, ":")
		tile := make([]int, len(fields))
		for i, s := range fields {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("tile %q: %q is not a number", arg, s)
			}
			tile[i] = n
		}
		raw = append(raw, tile)
	}
	return raw, nil
}
