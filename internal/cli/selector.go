package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/katas/internal/casefile"
	"github.com/roach88/katas/internal/selector"
)

// SelectorResult is the JSON payload of the selector commands.
type SelectorResult struct {
	Selector string `json:"selector"`
}

// NewSelectorCommand creates the selector command group.
func NewSelectorCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selector",
		Short: "Build, parse and combine CSS selectors",
	}

	cmd.AddCommand(newSelectorBuildCommand(rootOpts))
	cmd.AddCommand(newSelectorParseCommand(rootOpts))
	cmd.AddCommand(newSelectorCombineCommand(rootOpts))
	return cmd
}

func newSelectorBuildCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build <category=value>...",
		Short: "Build a compound selector part by part",
		Long: `Feed parts to a selector builder in the order given and print the result.

Categories: element, id, class, attr, pseudo-class, pseudo-element.
Parts must follow that order; element, id and pseudo-element may appear once.

Examples:
  katas selector build element=div id=main class=container
  katas selector build attr='href$=".png"' pseudo-class=focus`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelectorBuild(rootOpts, args, cmd)
		},
	}
}

func runSelectorBuild(opts *RootOptions, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	log := opts.logger().Named("selector")

	b := selector.New()
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return f.Fail(ExitCommandError, ErrCodeBadArgs, fmt.Sprintf("part %q: want category=value", arg), nil)
		}
		c, err := selector.ParseCategory(name)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeBadArgs, err.Error(), nil)
		}
		log.Debug("adding part", zap.Stringer("category", c), zap.String("value", value))
		if err := b.Add(c, value); err != nil {
			return failKata(f, casefile.KindSelector, err)
		}
	}

	return renderSelector(f, b)
}

func newSelectorParseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <selector>",
		Short: "Parse a selector and print it in canonical form",
		Long: `Parse a selector written in builder syntax and render it again.

Combinators are normalized to " + ", " ~ " and " > "; descendant
combinators render as three spaces.

Examples:
  katas selector parse 'ul>li.item'
  katas selector parse 'div#main + table#data ~ tr:nth-of-type(even)'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			r, err := selector.Parse(args[0])
			if err != nil {
				return failKata(f, casefile.KindSelector, err)
			}
			return renderSelector(f, r)
		},
	}
}

func newSelectorCombineCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "combine <left> <combinator> <right>",
		Short: "Join two selectors with a combinator",
		Long: `Parse two selectors and join them with one of " ", "+", "~" or ">".

Example:
  katas selector combine 'div#main' '+' 'table#data'`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			left, err := selector.Parse(args[0])
			if err != nil {
				return failKata(f, casefile.KindSelector, err)
			}
			right, err := selector.Parse(args[2])
			if err != nil {
				return failKata(f, casefile.KindSelector, err)
			}
			return renderSelector(f, selector.Combine(left, selector.Combinator(args[1]), right))
		},
	}
}

func renderSelector(f *OutputFormatter, r selector.Renderable) error {
	s, err := r.Render()
	if err != nil {
		return failKata(f, casefile.KindSelector, err)
	}
	return f.Success(SelectorResult{Selector: s}, s)
}
