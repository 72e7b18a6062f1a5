package harness

import (
	"errors"
	"fmt"

	"github.com/roach88/katas/internal/casefile"
	"github.com/roach88/katas/internal/domino"
	"github.com/roach88/katas/internal/selector"
	"github.com/roach88/katas/internal/zigzag"
)

// outcome is what evaluating one case produced.
type outcome struct {
	input  any
	output any
	err    error
}

// evaluate runs the kata named by c.Kind on the case input.
func evaluate(c *casefile.Case) outcome {
	switch c.Kind {
	case casefile.KindSelector:
		out := outcome{input: c.Selector}
		r, err := buildSelector(c.Selector)
		if err != nil {
			out.err = err
			return out
		}
		s, err := r.Render()
		if err != nil {
			out.err = err
			return out
		}
		out.output = s
		return out

	case casefile.KindDomino:
		tiles := c.Tiles
		if tiles == nil {
			tiles = [][]int{}
		}
		out := outcome{input: map[string]any{"tiles": tiles}}
		ok, err := domino.CanDominoesMakeRow(tiles)
		if err != nil {
			out.err = err
			return out
		}
		out.output = ok
		return out

	case casefile.KindZigzag:
		n := 0
		if c.Size != nil {
			n = *c.Size
		}
		out := outcome{input: map[string]any{"size": n}}
		m, err := zigzag.Matrix(n)
		if err != nil {
			out.err = err
			return out
		}
		out.output = m
		return out

	default:
		return outcome{err: fmt.Errorf("unknown case kind %q", c.Kind)}
	}
}

// buildSelector turns a case node into a renderable selector. Text is
// parsed, parts are fed to a builder in order, and left/op/right nodes are
// combined.
func buildSelector(n *casefile.SelectorNode) (selector.Renderable, error) {
	if n == nil {
		return nil, errors.New("missing selector")
	}

	switch {
	case n.Text != "":
		return selector.Parse(n.Text)

	case len(n.Parts) > 0:
		b := selector.New()
		for _, p := range n.Parts {
			c, err := selector.ParseCategory(p.Kind)
			if err != nil {
				return nil, err
			}
			if err := b.Add(c, p.Value); err != nil {
				return nil, err
			}
		}
		return b, nil

	case n.Op != nil:
		left, err := buildSelector(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildSelector(n.Right)
		if err != nil {
			return nil, err
		}
		return selector.Combine(left, selector.Combinator(*n.Op), right), nil

	default:
		return nil, errors.New("empty selector node")
	}
}

// ErrorKind classifies err into one of the casefile error kinds. Errors the
// katas do not define map to "syntax" for selectors and "" otherwise.
func ErrorKind(kind string, err error) string {
	var tileErr *domino.InvalidTileError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, selector.ErrDuplicateSelectorPart):
		return casefile.ErrKindDuplicatePart
	case errors.Is(err, selector.ErrOrderViolation):
		return casefile.ErrKindOrderViolation
	case errors.Is(err, selector.ErrInvalidCombinator):
		return casefile.ErrKindInvalidCombinator
	case errors.As(err, &tileErr):
		return casefile.ErrKindInvalidTile
	case errors.Is(err, zigzag.ErrNegativeSize):
		return casefile.ErrKindInvalidSize
	case kind == casefile.KindSelector:
		return casefile.ErrKindSyntax
	default:
		return ""
	}
}
