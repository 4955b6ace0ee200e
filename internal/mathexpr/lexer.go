package mathexpr

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokComma
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// glyphs maps typographic operators to their ASCII equivalents.
var glyphs = strings.NewReplacer(
	"×", "*",
	"·", "*",
	"÷", "/",
	"−", "-",
	"∞", "infinity",
)

// normalize folds case, rewrites operator glyphs and removes all whitespace.
func normalize(expr string) string {
	s := glyphs.Replace(strings.ToLower(expr))
	return strings.Join(strings.Fields(s), "")
}

// tokenize splits a normalized expression into tokens and inserts explicit
// multiplication where the input relies on juxtaposition: 2(3), 2pi, (2)3.
func tokenize(s string) ([]token, error) {
	var toks []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isDigit(c) || c == '.':
			start := i
			dots := 0
			for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
				if s[i] == '.' {
					dots++
				}
				i++
			}
			text := s[start:i]
			if dots > 1 || text == "." {
				return nil, syntaxErr(start, "malformed number %q", text)
			}
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, syntaxErr(start, "malformed number %q", text)
			}
			toks = append(toks, token{kind: tokNumber, text: text, num: v, pos: start})
		case isLetter(c):
			start := i
			for i < len(s) && isLetter(s[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: s[start:i], pos: start})
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
			toks = append(toks, token{kind: tokOp, text: string(c), pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, text: ",", pos: i})
			i++
		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return nil, syntaxErr(i, "unexpected character %q", r)
		}
	}
	toks = insertImplicitMul(toks)
	toks = append(toks, token{kind: tokEOF, pos: len(s)})
	return toks, nil
}

func insertImplicitMul(toks []token) []token {
	if len(toks) < 2 {
		return toks
	}
	out := make([]token, 0, len(toks)+2)
	for i, t := range toks {
		if i > 0 {
			prev := toks[i-1]
			numThenGroup := prev.kind == tokNumber && (t.kind == tokLParen || t.kind == tokIdent)
			groupThenNum := prev.kind == tokRParen && t.kind == tokNumber
			if numThenGroup || groupThenNum {
				out = append(out, token{kind: tokOp, text: "*", pos: t.pos})
			}
		}
		out = append(out, t)
	}
	return out
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' }
