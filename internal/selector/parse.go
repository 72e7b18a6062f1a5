package selector

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Parse reads a selector written in the builder's grammar, e.g.
//
//	div#main.container + table#data ~ tr:nth-of-type(even)   td
//
// Each compound selector is fed to a Builder part by part, so the order and
// uniqueness rules apply exactly as they do to builder calls. A single
// compound is returned as a *Builder; chains are returned as a *Compound
// nested to the right.
func Parse(s string) (Renderable, error) {
	p := &parser{lex: css.NewLexer(parse.NewInputString(s))}
	r, err := p.run()
	if err != nil {
		return nil, fmt.Errorf("parse selector %q: %w", s, err)
	}
	return r, nil
}

type parser struct {
	lex *css.Lexer

	compounds []Renderable
	tokens    []Combinator

	cur      *Builder
	pending  Combinator
	sawSpace bool
}

func (p *parser) run() (Renderable, error) {
	for {
		tt, data := p.lex.Next()
		switch tt {
		case css.ErrorToken:
			if err := p.lex.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			return p.finish()

		case css.WhitespaceToken:
			if p.cur != nil {
				p.sawSpace = true
			}

		case css.CommentToken:
			// A comment does not separate compounds.

		case css.DelimToken:
			switch d := string(data); d {
			case "+", ">", "~":
				if p.cur == nil {
					return nil, fmt.Errorf("combinator %q has no left operand", d)
				}
				if p.pending != "" {
					return nil, fmt.Errorf("combinator %q follows %q", d, string(p.pending))
				}
				p.pending = Combinator(d)
			case ".":
				name, err := p.expect(css.IdentToken, "class name")
				if err != nil {
					return nil, err
				}
				if err := p.add(CategoryClass, name); err != nil {
					return nil, err
				}
			case "*":
				if err := p.add(CategoryElement, d); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("unexpected %q", d)
			}

		case css.IdentToken:
			if err := p.add(CategoryElement, string(data)); err != nil {
				return nil, err
			}

		case css.HashToken:
			if err := p.add(CategoryID, string(data[1:])); err != nil {
				return nil, err
			}

		case css.LeftBracketToken:
			attr, err := p.collect(css.RightBracketToken, false)
			if err != nil {
				return nil, err
			}
			if attr == "" {
				return nil, errors.New("empty attribute selector")
			}
			if err := p.add(CategoryAttribute, attr); err != nil {
				return nil, err
			}

		case css.ColonToken:
			if err := p.pseudo(); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("unexpected %s %q", tt, string(data))
		}
	}
}

// add starts a new compound when the previous one was closed by whitespace
// or a combinator, then records the fragment.
func (p *parser) add(c Category, v string) error {
	if p.cur != nil && (p.sawSpace || p.pending != "") {
		tok := p.pending
		if tok == "" {
			tok = Descendant
		}
		p.compounds = append(p.compounds, p.cur)
		p.tokens = append(p.tokens, tok)
		p.cur = nil
	}
	if p.cur == nil {
		p.cur = New()
	}
	p.pending = ""
	p.sawSpace = false
	return p.cur.Add(c, v)
}

// pseudo handles the text after a colon: a pseudo-element after a second
// colon, otherwise a pseudo-class, possibly functional.
func (p *parser) pseudo() error {
	tt, data := p.lex.Next()
	switch tt {
	case css.ColonToken:
		name, err := p.expect(css.IdentToken, "pseudo-element name")
		if err != nil {
			return err
		}
		return p.add(CategoryPseudoElement, name)
	case css.IdentToken:
		return p.add(CategoryPseudoClass, string(data))
	case css.FunctionToken:
		args, err := p.collect(css.RightParenthesisToken, true)
		if err != nil {
			return err
		}
		return p.add(CategoryPseudoClass, string(data)+args+")")
	default:
		return fmt.Errorf("expected pseudo-class name, got %s", tt)
	}
}

// expect reads one token of type want and returns its text.
func (p *parser) expect(want css.TokenType, what string) (string, error) {
	tt, data := p.lex.Next()
	if tt != want {
		return "", fmt.Errorf("expected %s, got %s", what, tt)
	}
	return string(data), nil
}

// collect returns the raw text up to the matching closing token, which is
// consumed but not included. Parentheses nest. Unless keepSpace is set,
// comments are dropped and whitespace is kept only as a single space
// between two words, so [ type = "a" ] reads as [type="a"] while
// [lang|=en i] keeps its flag.
func (p *parser) collect(closing css.TokenType, keepSpace bool) (string, error) {
	var sb strings.Builder
	depth := 0
	space := false
	lastWord := false
	for {
		tt, data := p.lex.Next()
		switch tt {
		case css.ErrorToken:
			return "", fmt.Errorf("unterminated selector part %q", sb.String())
		case css.WhitespaceToken:
			if !keepSpace {
				space = true
				continue
			}
		case css.CommentToken:
			if !keepSpace {
				continue
			}
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth == 0 && closing == css.RightParenthesisToken {
				return sb.String(), nil
			}
			if depth > 0 {
				depth--
			}
		case closing:
			if depth == 0 {
				return sb.String(), nil
			}
		}
		word := isWord(tt)
		if space && lastWord && word {
			sb.WriteByte(' ')
		}
		space = false
		lastWord = word
		sb.Write(data)
	}
}

// isWord reports whether a token is an operand rather than an operator or
// bracket.
func isWord(tt css.TokenType) bool {
	switch tt {
	case css.IdentToken, css.StringToken, css.NumberToken, css.PercentageToken,
		css.DimensionToken, css.HashToken, css.URLToken:
		return true
	}
	return false
}

func (p *parser) finish() (Renderable, error) {
	if p.pending != "" {
		return nil, fmt.Errorf("combinator %q has no right operand", string(p.pending))
	}
	if p.cur == nil {
		return nil, errEmptyCompound
	}
	if len(p.compounds) == 0 {
		return p.cur, nil
	}
	return chain(append(p.compounds, p.cur), p.tokens)
}
