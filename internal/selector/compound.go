package selector

import (
	"errors"
	"fmt"
	"strings"
)

// Combinator joins two selectors.
type Combinator string

const (
	Descendant        Combinator = " "
	NextSibling       Combinator = "+"
	SubsequentSibling Combinator = "~"
	Child             Combinator = ">"
)

// Valid reports whether c is one of the four CSS combinators.
func (c Combinator) Valid() bool {
	switch c {
	case Descendant, NextSibling, SubsequentSibling, Child:
		return true
	default:
		return false
	}
}

// Compound is a chain of selectors joined by combinators. There is always one
// token fewer than operands.
type Compound struct {
	operands []Renderable
	tokens   []Combinator
}

// Combine joins left and right with token. Either side may itself be a
// Compound.
func Combine(left Renderable, token Combinator, right Renderable) *Compound {
	return &Compound{
		operands: []Renderable{left, right},
		tokens:   []Combinator{token},
	}
}

// Render renders every operand and joins them as "a <token> b". Nested
// compounds flatten into one string.
func (c *Compound) Render() (string, error) {
	var sb strings.Builder
	for i, op := range c.operands {
		if op == nil {
			return "", fmt.Errorf("combine: operand %d is nil", i)
		}
		s, err := op.Render()
		if err != nil {
			return "", err
		}
		sb.WriteString(s)

		if i < len(c.tokens) {
			tok := c.tokens[i]
			if !tok.Valid() {
				return "", fmt.Errorf("combine: token %q: %w", string(tok), ErrInvalidCombinator)
			}
			sb.WriteString(" ")
			sb.WriteString(string(tok))
			sb.WriteString(" ")
		}
	}
	return sb.String(), nil
}

// errEmptyCompound is returned by chain when there is nothing to join.
var errEmptyCompound = errors.New("empty selector")

// chain folds compounds to the right: a op0 (b op1 (c ...)). A single
// compound is returned as is.
func chain(parts []Renderable, tokens []Combinator) (Renderable, error) {
	if len(parts) == 0 {
		return nil, errEmptyCompound
	}
	if len(tokens) != len(parts)-1 {
		return nil, fmt.Errorf("combine: %d selectors need %d combinators, got %d", len(parts), len(parts)-1, len(tokens))
	}
	out := parts[len(parts)-1]
	for i := len(parts) - 2; i >= 0; i-- {
		out = Combine(parts[i], tokens[i], out)
	}
	return out, nil
}
