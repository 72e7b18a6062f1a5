package selector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, r Renderable) string {
	t.Helper()
	s, err := r.Render()
	require.NoError(t, err)
	return s
}

func TestBuilder_Render(t *testing.T) {
	tests := []struct {
		name string
		b    *Builder
		want string
	}{
		{"element", Element("div"), "div"},
		{"id", ID("main"), "#main"},
		{"class", Class("container"), ".container"},
		{"attr", Attr("href"), "[href]"},
		{"pseudo-class", PseudoClass("hover"), ":hover"},
		{"pseudo-element", PseudoElement("before"), "::before"},
		{"id with classes", ID("main").Class("container").Class("editable"), "#main.container.editable"},
		{"element attr pseudo", Element("a").Attr(`href$=".png"`).PseudoClass("focus"), `a[href$=".png"]:focus`},
		{"full compound", Element("div").ID("main").Class("container").Class("draggable"), "div#main.container.draggable"},
		{"repeated pseudo-class", Element("input").PseudoClass("focus").PseudoClass("invalid"), "input:focus:invalid"},
		{"pseudo-element last", Element("p").PseudoClass("first-of-type").PseudoElement("first-letter"), "p:first-of-type::first-letter"},
		{"every category", Element("li").ID("x").Class("a").Attr("data-k").PseudoClass("hover").PseudoElement("after"), "li#x.a[data-k]:hover::after"},
		{"multiple attributes", Element("input").Attr(`type="text"`).Attr("required"), `input[type="text",required]`},
		{"same category repeated after itself", Class("a").Class("b").Attr("c").Attr("d"), ".a.b[c,d]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.b))
		})
	}
}

func TestBuilder_Empty(t *testing.T) {
	assert.Equal(t, "", render(t, New()))
}

func TestBuilder_RenderIsIdempotent(t *testing.T) {
	b := Element("tr").PseudoClass("nth-of-type(even)")

	first := render(t, b)
	second := render(t, b)
	third := render(t, b)

	assert.Equal(t, first, second)
	assert.Equal(t, second, third)
}

func TestBuilder_DuplicateSingletons(t *testing.T) {
	tests := []struct {
		name     string
		b        *Builder
		category Category
	}{
		{"element twice", Element("div").Element("span"), CategoryElement},
		{"id twice", ID("a").ID("b"), CategoryID},
		{"pseudo-element twice", PseudoElement("before").PseudoElement("after"), CategoryPseudoElement},
		{"id twice after element", Element("div").ID("a").ID("b"), CategoryID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.b.Err()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDuplicateSelectorPart)

			var pe *PartError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.category, pe.Category)

			_, renderErr := tt.b.Render()
			assert.ErrorIs(t, renderErr, ErrDuplicateSelectorPart)
		})
	}
}

func TestBuilder_OrderViolations(t *testing.T) {
	tests := []struct {
		name string
		b    *Builder
	}{
		{"id after class", Class("a").ID("main")},
		{"element after id", ID("main").Element("div")},
		{"class after attr", Attr("href").Class("a")},
		{"attr after pseudo-class", PseudoClass("hover").Attr("href")},
		{"pseudo-class after pseudo-element", PseudoElement("after").PseudoClass("hover")},
		{"element after pseudo-element", PseudoElement("after").Element("p")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.b.Err(), ErrOrderViolation)
			_, err := tt.b.Render()
			assert.ErrorIs(t, err, ErrOrderViolation)
		})
	}
}

func TestBuilder_DuplicateCheckedBeforeOrder(t *testing.T) {
	// Element after element+id is both a duplicate and out of order.
	b := Element("div").ID("main").Element("span")
	assert.ErrorIs(t, b.Err(), ErrDuplicateSelectorPart)
}

func TestBuilder_AddFailsAtOffendingCall(t *testing.T) {
	b := New()
	require.NoError(t, b.Add(CategoryClass, "a"))

	err := b.Add(CategoryID, "main")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOrderViolation)
	assert.Contains(t, err.Error(), `id "main"`)
}

func TestBuilder_ErrorIsTerminal(t *testing.T) {
	b := Class("a").ID("main")
	require.ErrorIs(t, b.Err(), ErrOrderViolation)

	// Valid calls after the violation change nothing.
	b.Class("b").PseudoClass("hover")
	assert.ErrorIs(t, b.Err(), ErrOrderViolation)
	assert.Equal(t, []string{"a"}, b.Parts(CategoryClass))
	assert.Empty(t, b.Parts(CategoryPseudoClass))

	err := b.Add(CategoryPseudoClass, "focus")
	assert.ErrorIs(t, err, ErrOrderViolation)
}

func TestBuilder_UnknownCategory(t *testing.T) {
	b := New()
	err := b.Add(Category(42), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown selector category")
}

func TestBuilder_PartsReturnsCopy(t *testing.T) {
	b := Class("a").Class("b")
	parts := b.Parts(CategoryClass)
	parts[0] = "mutated"

	assert.Equal(t, ".a.b", render(t, b))
}

func TestParseCategory(t *testing.T) {
	tests := map[string]Category{
		"element":        CategoryElement,
		"id":             CategoryID,
		"class":          CategoryClass,
		"attr":           CategoryAttribute,
		"attribute":      CategoryAttribute,
		"pseudoClass":    CategoryPseudoClass,
		"pseudo-class":   CategoryPseudoClass,
		"pseudoElement":  CategoryPseudoElement,
		"pseudo-element": CategoryPseudoElement,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCategory(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := ParseCategory("tag")
	assert.Error(t, err)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "pseudo-element", CategoryPseudoElement.String())
	assert.Equal(t, "Category(9)", Category(9).String())
}

func TestCategory_Singleton(t *testing.T) {
	assert.True(t, CategoryElement.Singleton())
	assert.True(t, CategoryID.Singleton())
	assert.True(t, CategoryPseudoElement.Singleton())
	assert.False(t, CategoryClass.Singleton())
	assert.False(t, CategoryAttribute.Singleton())
	assert.False(t, CategoryPseudoClass.Singleton())
}
