// Package expr provides small arithmetic expression trees built from
// literals, named variables, and binary operators, evaluated against an
// environment. Rule generators use it to give captured operand tokens
// numeric meaning.
package expr

import (
	"fmt"
	"strconv"
)

// Env maps variable names to their values for evaluation.
type Env map[string]float64

// Expr is one node of an expression tree.
type Expr interface {
	// Eval computes the node's value against env.
	Eval(env Env) (float64, error)
	// String renders the node as infix text.
	String() string
}

type literal struct {
	value float64
}

// Lit returns a constant expression.
func Lit(v float64) Expr { return literal{value: v} }

func (l literal) Eval(Env) (float64, error) { return l.value, nil }
func (l literal) String() string            { return strconv.FormatFloat(l.value, 'g', -1, 64) }

type variable struct {
	name string
}

// Var returns an expression reading name from the environment at
// evaluation time.
func Var(name string) Expr { return variable{name: name} }

func (v variable) Eval(env Env) (float64, error) {
	value, ok := env[v.name]
	if !ok {
		return 0, fmt.Errorf("undefined variable %q", v.name)
	}
	return value, nil
}

func (v variable) String() string { return v.name }

type binary struct {
	op   byte
	l, r Expr
}

// Add returns l + r.
func Add(l, r Expr) Expr { return binary{op: '+', l: l, r: r} }

// Sub returns l - r.
func Sub(l, r Expr) Expr { return binary{op: '-', l: l, r: r} }

// Mul returns l * r.
func Mul(l, r Expr) Expr { return binary{op: '*', l: l, r: r} }

// Div returns l / r; evaluation fails on a zero divisor.
func Div(l, r Expr) Expr { return binary{op: '/', l: l, r: r} }

func (b binary) Eval(env Env) (float64, error) {
	lv, err := b.l.Eval(env)
	if err != nil {
		return 0, err
	}
	rv, err := b.r.Eval(env)
	if err != nil {
		return 0, err
	}
	switch b.op {
	case '+':
		return lv + rv, nil
	case '-':
		return lv - rv, nil
	case '*':
		return lv * rv, nil
	case '/':
		if rv == 0 {
			return 0, fmt.Errorf("division by zero in %s", b)
		}
		return lv / rv, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", b.op)
	}
}

func (b binary) String() string {
	return fmt.Sprintf("(%s %c %s)", b.l, b.op, b.r)
}

// ParseOperand turns a single captured token into an expression: numeric
// text becomes a literal, anything else a variable reference.
func ParseOperand(tok string) Expr {
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return Lit(v)
	}
	return Var(tok)
}

// Binary builds a binary expression from an operator symbol, as captured
// by an operator pattern node.
func Binary(op string, l, r Expr) (Expr, error) {
	switch op {
	case "+":
		return Add(l, r), nil
	case "-":
		return Sub(l, r), nil
	case "*":
		return Mul(l, r), nil
	case "/":
		return Div(l, r), nil
	default:
		return nil, fmt.Errorf("unknown operator %q", op)
	}
}
