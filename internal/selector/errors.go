package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateSelectorPart is returned when element, id or pseudo-element
	// is set twice on the same builder.
	ErrDuplicateSelectorPart = errors.New("element, id and pseudo-element should not occur more than one time inside the selector")

	// ErrOrderViolation is returned when a part is supplied after a part of a
	// later category.
	ErrOrderViolation = errors.New("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")

	// ErrInvalidCombinator is returned when rendering a compound whose joining
	// token is not one of " ", "+", "~", ">".
	ErrInvalidCombinator = errors.New("combinator must be one of \" \", \"+\", \"~\", \">\"")
)

// PartError describes the fragment that broke a builder.
type PartError struct {
	Category Category
	Value    string
	Err      error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Category, e.Value, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}
