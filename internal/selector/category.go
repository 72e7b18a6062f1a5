package selector

import "fmt"

// Category is a kind of selector fragment. Categories are ordered: a builder
// only accepts a category that is not lower than the highest one used so far.
type Category int

const (
	CategoryElement Category = iota
	CategoryID
	CategoryClass
	CategoryAttribute
	CategoryPseudoClass
	CategoryPseudoElement

	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryElement:       "element",
	CategoryID:            "id",
	CategoryClass:         "class",
	CategoryAttribute:     "attribute",
	CategoryPseudoClass:   "pseudo-class",
	CategoryPseudoElement: "pseudo-element",
}

// categoryAliases maps accepted spellings to categories.
var categoryAliases = map[string]Category{
	"element":        CategoryElement,
	"id":             CategoryID,
	"class":          CategoryClass,
	"attr":           CategoryAttribute,
	"attribute":      CategoryAttribute,
	"pseudo-class":   CategoryPseudoClass,
	"pseudoClass":    CategoryPseudoClass,
	"pseudo-element": CategoryPseudoElement,
	"pseudoElement":  CategoryPseudoElement,
}

func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Singleton reports whether the category may hold at most one value.
func (c Category) Singleton() bool {
	switch c {
	case CategoryElement, CategoryID, CategoryPseudoElement:
		return true
	default:
		return false
	}
}

func (c Category) valid() bool {
	return c >= CategoryElement && c < categoryCount
}

// ParseCategory resolves a category name such as "id", "attr" or
// "pseudo-class".
func ParseCategory(name string) (Category, error) {
	c, ok := categoryAliases[name]
	if !ok {
		return 0, fmt.Errorf("unknown selector category %q", name)
	}
	return c, nil
}
