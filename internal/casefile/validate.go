package casefile

import (
	"fmt"
	"slices"

	"github.com/roach88/katas/internal/selector"
)

var errorKinds = []string{
	ErrKindDuplicatePart,
	ErrKindOrderViolation,
	ErrKindInvalidCombinator,
	ErrKindInvalidTile,
	ErrKindInvalidSize,
	ErrKindSyntax,
}

// Validate checks the structural rules the decoders cannot express: unique
// case names, the input each kind needs and the expectation each kind
// produces.
func Validate(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]int, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if prev, ok := seen[c.Name]; ok {
			return fmt.Errorf("cases[%d]: duplicate case name %q (first at cases[%d])", i, c.Name, prev)
		}
		seen[c.Name] = i

		if err := validateCase(c); err != nil {
			return fmt.Errorf("cases[%d] %q: %w", i, c.Name, err)
		}
	}

	return nil
}

func validateCase(c *Case) error {
	if c.Expect.Error != "" && !slices.Contains(errorKinds, c.Expect.Error) {
		return fmt.Errorf("expect.error: unknown error kind %q", c.Expect.Error)
	}
	expectsError := c.Expect.Error != ""

	switch c.Kind {
	case KindSelector:
		if c.Tiles != nil || c.Size != nil {
			return fmt.Errorf("selector case takes only a selector input")
		}
		if c.Selector == nil {
			return fmt.Errorf("selector is required")
		}
		if err := validateNode(c.Selector, "selector"); err != nil {
			return err
		}
		if c.Expect.Row != nil || c.Expect.Matrix != nil {
			return fmt.Errorf("expect: selector case can only expect output or error")
		}
		if !expectsError && c.Expect.Output == nil {
			return fmt.Errorf("expect: output or error is required")
		}

	case KindDomino:
		if c.Selector != nil || c.Size != nil {
			return fmt.Errorf("domino case takes only a tiles input")
		}
		if c.Expect.Output != nil || c.Expect.Matrix != nil {
			return fmt.Errorf("expect: domino case can only expect row or error")
		}
		if !expectsError && c.Expect.Row == nil {
			return fmt.Errorf("expect: row or error is required")
		}

	case KindZigzag:
		if c.Selector != nil || c.Tiles != nil {
			return fmt.Errorf("zigzag case takes only a size input")
		}
		if c.Size == nil {
			return fmt.Errorf("size is required")
		}
		if c.Expect.Output != nil || c.Expect.Row != nil {
			return fmt.Errorf("expect: zigzag case can only expect matrix or error")
		}
		// An empty matrix decodes as nil, so size 0 may omit it.
		if !expectsError && c.Expect.Matrix == nil && *c.Size != 0 {
			return fmt.Errorf("expect: matrix or error is required")
		}

	case "":
		return fmt.Errorf("kind is required")
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}

	if expectsError && (c.Expect.Output != nil || c.Expect.Row != nil || c.Expect.Matrix != nil) {
		return fmt.Errorf("expect: error excludes other expectations")
	}
	return nil
}

// validateNode requires exactly one form per node: text, parts, or a
// left/op/right combination.
func validateNode(n *SelectorNode, path string) error {
	forms := 0
	if n.Text != "" {
		forms++
	}
	if len(n.Parts) > 0 {
		forms++
	}
	combined := n.Left != nil || n.Op != nil || n.Right != nil
	if combined {
		forms++
	}
	if forms != 1 {
		return fmt.Errorf("%s: exactly one of text, parts or left/op/right is required", path)
	}

	for i, p := range n.Parts {
		if _, err := selector.ParseCategory(p.Kind); err != nil {
			return fmt.Errorf("%s.parts[%d]: %w", path, i, err)
		}
	}

	if !combined {
		return nil
	}
	if n.Left == nil || n.Op == nil || n.Right == nil {
		return fmt.Errorf("%s: left, op and right must all be set", path)
	}
	if err := validateNode(n.Left, path+".left"); err != nil {
		return err
	}
	return validateNode(n.Right, path+".right")
}
