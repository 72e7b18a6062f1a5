// Package selector builds CSS selectors from typed fragments.
//
// A compound selector is written as
//
//	element#id.class[attr]:pseudo-class::pseudo-element
//
// where class, attribute and pseudo-class may repeat and the other parts occur
// at most once. Parts must be supplied in that order. A Builder enforces both
// rules at the call that breaks them and renders the canonical string.
//
// Compound selectors are joined with one of the combinators " ", "+", "~" and
// ">" via Combine, which nests arbitrarily:
//
//	sel := selector.Combine(
//		selector.Element("div").ID("main"),
//		"+",
//		selector.Element("table").ID("data"),
//	)
//	s, err := sel.Render() // "div#main + table#data"
//
// Parse reads the same grammar back from text, applying the same rules.
package selector
