// Package mathexpr evaluates the restricted arithmetic grammar accepted as
// typed answers: decimal literals, + - * / ^, parentheses, a fixed set of
// functions and constants, and implicit multiplication after a numeral.
// Nothing outside that grammar is interpreted.
package mathexpr

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidExpression reports input outside the grammar or a
	// non-finite result.
	ErrInvalidExpression = errors.New("invalid expression")

	// ErrDivisionByZero reports a zero divisor anywhere in the expression.
	ErrDivisionByZero = errors.New("division by zero")
)

const (
	maxInputLen = 512
	maxDepth    = 128
)

// SyntaxError locates a rejected token in the normalized input.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

func (e *SyntaxError) Unwrap() error { return ErrInvalidExpression }

func syntaxErr(pos int, format string, args ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

var constants = map[string]float64{
	"pi":       math.Pi,
	"e":        math.E,
	"infinity": math.Inf(1),
}

var unaryFuncs = map[string]func(float64) float64{
	"sqrt": math.Sqrt,
	"cbrt": math.Cbrt,
	"abs":  math.Abs,
	"log":  math.Log10,
	"ln":   math.Log,
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
}

var binaryFuncs = map[string]func(float64, float64) float64{
	"pow": math.Pow,
}

// Evaluate parses and evaluates expr. The result is always finite; anything
// else is reported as an error wrapping ErrInvalidExpression or
// ErrDivisionByZero.
func Evaluate(expr string) (float64, error) {
	s := normalize(expr)
	if s == "" {
		return 0, fmt.Errorf("empty input: %w", ErrInvalidExpression)
	}
	if len(s) > maxInputLen {
		return 0, fmt.Errorf("input longer than %d bytes: %w", maxInputLen, ErrInvalidExpression)
	}
	toks, err := tokenize(s)
	if err != nil {
		return 0, err
	}

	p := &parser{toks: toks}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, syntaxErr(t.pos, "unexpected %q", t.text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite result: %w", ErrInvalidExpression)
	}
	return v, nil
}

type parser struct {
	toks  []token
	i     int
	depth int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) isOp(ops ...string) bool {
	t := p.peek()
	if t.kind != tokOp {
		return false
	}
	for _, op := range ops {
		if t.text == op {
			return true
		}
	}
	return false
}

// expr := term (("+" | "-") term)*
func (p *parser) parseExpr() (float64, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return 0, syntaxErr(p.peek().pos, "expression nested too deeply")
	}

	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for p.isOp("+", "-") {
		op := p.next().text
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

// term := power (("*" | "/") power)*
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parsePower()
	if err != nil {
		return 0, err
	}
	for p.isOp("*", "/") {
		op := p.next()
		right, err := p.parsePower()
		if err != nil {
			return 0, err
		}
		if op.text == "*" {
			left *= right
			continue
		}
		if right == 0 {
			return 0, fmt.Errorf("divisor at position %d: %w", op.pos, ErrDivisionByZero)
		}
		left /= right
	}
	return left, nil
}

// power := unary ("^" power)?
// Unary minus binds tighter than "^", so -2^2 is 4; "^" is right-associative.
func (p *parser) parsePower() (float64, error) {
	base, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	if !p.isOp("^") {
		return base, nil
	}
	p.next()
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return 0, syntaxErr(p.peek().pos, "expression nested too deeply")
	}
	exp, err := p.parsePower()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

// unary := ("-" | "+") unary | primary
func (p *parser) parseUnary() (float64, error) {
	if p.isOp("-", "+") {
		op := p.next().text
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > maxDepth {
			return 0, syntaxErr(p.peek().pos, "expression nested too deeply")
		}
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == "-" {
			return -v, nil
		}
		return v, nil
	}
	return p.parsePrimary()
}

// primary := number | constant | func "(" args ")" | "(" expr ")"
func (p *parser) parsePrimary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return t.num, nil
	case tokLParen:
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if err := p.expect(tokRParen); err != nil {
			return 0, err
		}
		return v, nil
	case tokIdent:
		return p.parseIdent(t)
	case tokEOF:
		return 0, syntaxErr(t.pos, "unexpected end of input")
	default:
		return 0, syntaxErr(t.pos, "unexpected %q", t.text)
	}
}

func (p *parser) parseIdent(t token) (float64, error) {
	if v, ok := constants[t.text]; ok {
		return v, nil
	}
	if fn, ok := unaryFuncs[t.text]; ok {
		args, err := p.parseArgs(1)
		if err != nil {
			return 0, err
		}
		return fn(args[0]), nil
	}
	if fn, ok := binaryFuncs[t.text]; ok {
		args, err := p.parseArgs(2)
		if err != nil {
			return 0, err
		}
		return fn(args[0], args[1]), nil
	}
	return 0, syntaxErr(t.pos, "unknown identifier %q", t.text)
}

// parseArgs reads "(" expr ("," expr)* ")" with exactly n arguments.
func (p *parser) parseArgs(n int) ([]float64, error) {
	if err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	args := make([]float64, 0, n)
	for {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
		if p.peek().kind != tokComma {
			break
		}
		p.next()
	}
	if err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	if len(args) != n {
		return nil, fmt.Errorf("want %d arguments, got %d: %w", n, len(args), ErrInvalidExpression)
	}
	return args, nil
}

func (p *parser) expect(kind tokenKind) error {
	t := p.next()
	if t.kind != kind {
		if t.kind == tokEOF {
			return syntaxErr(t.pos, "unexpected end of input")
		}
		return syntaxErr(t.pos, "unexpected %q", t.text)
	}
	return nil
}
