package cdoexpr

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

// A tiny evaluator for the generated expr syntax, used to check that
// expressions select the same branch as the logic they were generated from.

type env map[string]float64

type evalFn func(env) float64

type exprParser struct {
	toks []string
	pos  int
}

func tokenize(src string) ([]string, error) {
	var toks []string
	for i := 0; i < len(src); {
		c := rune(src[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case unicode.IsDigit(c) || c == '.':
			j := i
			for j < len(src) && (unicode.IsDigit(rune(src[j])) || src[j] == '.') {
				j++
			}
			toks = append(toks, src[i:j])
			i = j
		case unicode.IsLetter(c) || c == '_':
			j := i
			for j < len(src) && (unicode.IsLetter(rune(src[j])) || unicode.IsDigit(rune(src[j])) || src[j] == '_') {
				j++
			}
			toks = append(toks, src[i:j])
			i = j
		case strings.ContainsRune("<>=!", c) && i+1 < len(src) && src[i+1] == '=':
			toks = append(toks, src[i:i+2])
			i += 2
		case strings.ContainsRune("<>=+-*/()?:;", c):
			toks = append(toks, string(c))
			i++
		default:
			return nil, fmt.Errorf("unexpected %q at %d", c, i)
		}
	}
	return toks, nil
}

func (p *exprParser) peek() string {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return ""
}

func (p *exprParser) next() string {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *exprParser) expect(tok string) {
	if got := p.next(); got != tok {
		panic(fmt.Sprintf("expected %q, got %q at token %d", tok, got, p.pos-1))
	}
}

// expr := cmp ['?' expr ':' expr]
func (p *exprParser) expr() evalFn {
	cond := p.cmp()
	if p.peek() != "?" {
		return cond
	}
	p.next()
	yes := p.expr()
	p.expect(":")
	no := p.expr()
	return func(e env) float64 {
		if cond(e) != 0 {
			return yes(e)
		}
		return no(e)
	}
}

var comparisons = map[string]func(a, b float64) bool{
	">":  func(a, b float64) bool { return a > b },
	">=": func(a, b float64) bool { return a >= b },
	"<":  func(a, b float64) bool { return a < b },
	"<=": func(a, b float64) bool { return a <= b },
	"==": func(a, b float64) bool { return a == b },
	"!=": func(a, b float64) bool { return a != b },
}

func (p *exprParser) cmp() evalFn {
	lhs := p.sum()
	op, ok := comparisons[p.peek()]
	if !ok {
		return lhs
	}
	p.next()
	rhs := p.sum()
	return func(e env) float64 {
		if op(lhs(e), rhs(e)) {
			return 1
		}
		return 0
	}
}

func (p *exprParser) sum() evalFn {
	acc := p.term()
	for p.peek() == "+" || p.peek() == "-" {
		op, lhs, rhs := p.next(), acc, p.term()
		if op == "+" {
			acc = func(e env) float64 { return lhs(e) + rhs(e) }
		} else {
			acc = func(e env) float64 { return lhs(e) - rhs(e) }
		}
	}
	return acc
}

func (p *exprParser) term() evalFn {
	acc := p.unary()
	for p.peek() == "*" || p.peek() == "/" {
		op, lhs, rhs := p.next(), acc, p.unary()
		if op == "*" {
			acc = func(e env) float64 { return lhs(e) * rhs(e) }
		} else {
			acc = func(e env) float64 { return lhs(e) / rhs(e) }
		}
	}
	return acc
}

func (p *exprParser) unary() evalFn {
	if p.peek() == "-" {
		p.next()
		inner := p.unary()
		return func(e env) float64 { return -inner(e) }
	}
	return p.primary()
}

func (p *exprParser) primary() evalFn {
	tok := p.next()
	switch {
	case tok == "(":
		inner := p.expr()
		p.expect(")")
		return inner
	case tok != "" && (unicode.IsDigit(rune(tok[0])) || tok[0] == '.'):
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			panic(err)
		}
		return func(env) float64 { return v }
	case tok != "" && (unicode.IsLetter(rune(tok[0])) || tok[0] == '_'):
		return func(e env) float64 {
			v, ok := e[tok]
			if !ok {
				panic("undefined variable " + tok)
			}
			return v
		}
	default:
		panic(fmt.Sprintf("unexpected token %q at %d", tok, p.pos-1))
	}
}

// compileExpr compiles a single expression.
func compileExpr(t *testing.T, src string) evalFn {
	toks, err := tokenize(src)
	require.NoError(t, err)
	p := &exprParser{toks: toks}
	fn := p.expr()
	require.Equal(t, len(toks), p.pos, "trailing tokens in %s", src)
	return fn
}

// runStatements executes a sequence of NAME=expr; statements against e.
func runStatements(t *testing.T, src string, e env) env {
	toks, err := tokenize(src)
	require.NoError(t, err)
	p := &exprParser{toks: toks}
	for p.peek() != "" {
		name := p.next()
		p.expect("=")
		fn := p.expr()
		p.expect(";")
		e[name] = fn(e)
	}
	return e
}

func TestEvaluatorSelf(t *testing.T) {
	fn := compileExpr(t, "((x >= 2))? (x + 1): (((x < -1))? (-x*2): (0.5))")
	require.Equal(t, 4.0, fn(env{"x": 3}))
	require.Equal(t, 4.0, fn(env{"x": -2}))
	require.Equal(t, 0.5, fn(env{"x": 0}))

	out := runStatements(t, "a=1;b=a+1;a=(a+b)/2;", env{})
	require.Equal(t, env{"a": 1.5, "b": 2}, out)
}
