package selector

import (
	"fmt"
	"strings"
)

// Renderable is anything that renders to a selector string: a Builder or a
// Compound.
type Renderable interface {
	Render() (string, error)
}

// Builder accumulates the fragments of one compound selector.
//
// The first violation is latched: the builder stops accepting parts and every
// later call, including Render, reports the same error.
type Builder struct {
	parts [categoryCount][]string

	// cursor is the highest category used so far; valid once started is set.
	cursor  Category
	started bool

	err error
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Element starts a builder with a type selector.
func Element(v string) *Builder { return New().Element(v) }

// ID starts a builder with an id selector.
func ID(v string) *Builder { return New().ID(v) }

// Class starts a builder with a class selector.
func Class(v string) *Builder { return New().Class(v) }

// Attr starts a builder with an attribute selector.
func Attr(v string) *Builder { return New().Attr(v) }

// PseudoClass starts a builder with a pseudo-class.
func PseudoClass(v string) *Builder { return New().PseudoClass(v) }

// PseudoElement starts a builder with a pseudo-element.
func PseudoElement(v string) *Builder { return New().PseudoElement(v) }

// Add appends a fragment of category c and returns the violation, if any,
// immediately. A returned error is also latched on the builder.
func (b *Builder) Add(c Category, v string) error {
	if b.err != nil {
		return b.err
	}
	if !c.valid() {
		b.err = fmt.Errorf("unknown selector category %d", int(c))
		return b.err
	}

	// Duplicates are checked before order, so Element twice reports a
	// duplicate even though the cursor did not move.
	if c.Singleton() && len(b.parts[c]) > 0 {
		b.err = &PartError{Category: c, Value: v, Err: ErrDuplicateSelectorPart}
		return b.err
	}
	if b.started && b.cursor > c {
		b.err = &PartError{Category: c, Value: v, Err: ErrOrderViolation}
		return b.err
	}

	b.parts[c] = append(b.parts[c], v)
	b.cursor = c
	b.started = true
	return nil
}

// Element sets the type selector.
func (b *Builder) Element(v string) *Builder {
	_ = b.Add(CategoryElement, v)
	return b
}

// ID sets the id selector.
func (b *Builder) ID(v string) *Builder {
	_ = b.Add(CategoryID, v)
	return b
}

// Class appends a class selector.
func (b *Builder) Class(v string) *Builder {
	_ = b.Add(CategoryClass, v)
	return b
}

// Attr appends an attribute selector. v is the text between the brackets,
// e.g. `href$=".png"`.
func (b *Builder) Attr(v string) *Builder {
	_ = b.Add(CategoryAttribute, v)
	return b
}

// PseudoClass appends a pseudo-class without the leading colon.
func (b *Builder) PseudoClass(v string) *Builder {
	_ = b.Add(CategoryPseudoClass, v)
	return b
}

// PseudoElement sets the pseudo-element without the leading colons.
func (b *Builder) PseudoElement(v string) *Builder {
	_ = b.Add(CategoryPseudoElement, v)
	return b
}

// Err returns the latched violation, or nil.
func (b *Builder) Err() error {
	return b.err
}

// Parts returns a copy of the values recorded for category c.
func (b *Builder) Parts(c Category) []string {
	if !c.valid() {
		return nil
	}
	return append([]string(nil), b.parts[c]...)
}

// Render returns the canonical selector string. Categories are written in
// rank order regardless of how the builder was filled; empty categories are
// omitted.
func (b *Builder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(b.parts[CategoryElement], "."))
	if ids := b.parts[CategoryID]; len(ids) > 0 {
		sb.WriteString("#")
		sb.WriteString(ids[0])
	}
	if classes := b.parts[CategoryClass]; len(classes) > 0 {
		sb.WriteString(".")
		sb.WriteString(strings.Join(classes, "."))
	}
	if attrs := b.parts[CategoryAttribute]; len(attrs) > 0 {
		sb.WriteString("[")
		sb.WriteString(strings.Join(attrs, ","))
		sb.WriteString("]")
	}
	if pseudo := b.parts[CategoryPseudoClass]; len(pseudo) > 0 {
		sb.WriteString(":")
		sb.WriteString(strings.Join(pseudo, ":"))
	}
	if pe := b.parts[CategoryPseudoElement]; len(pe) > 0 {
		sb.WriteString("::")
		sb.WriteString(pe[0])
	}
	return sb.String(), nil
}
