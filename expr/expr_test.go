package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	t.Parallel()
	env := Env{"x": 10, "y": 4}

	tests := []struct {
		name    string
		expr    Expr
		want    float64
		wantErr string
	}{
		{
			name: "literal",
			expr: Lit(3.5),
			want: 3.5,
		},
		{
			name: "variable",
			expr: Var("x"),
			want: 10,
		},
		{
			name:    "undefined variable",
			expr:    Var("z"),
			wantErr: `undefined variable "z"`,
		},
		{
			name: "addition",
			expr: Add(Var("x"), Lit(1)),
			want: 11,
		},
		{
			name: "nested tree",
			expr: Mul(Add(Var("x"), Var("y")), Sub(Var("x"), Var("y"))),
			want: 84,
		},
		{
			name: "division",
			expr: Div(Var("x"), Var("y")),
			want: 2.5,
		},
		{
			name:    "division by zero",
			expr:    Div(Lit(1), Lit(0)),
			wantErr: "division by zero",
		},
		{
			name:    "error propagates from left operand",
			expr:    Add(Var("missing"), Lit(1)),
			wantErr: "undefined variable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.expr.Eval(env)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	e := Add(Var("x"), Mul(Lit(2), Var("y")))
	assert.Equal(t, "(x + (2 * y))", e.String())
}

func TestParseOperand(t *testing.T) {
	t.Parallel()
	v, err := ParseOperand("42").Eval(nil)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	v, err = ParseOperand("x").Eval(Env{"x": 7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestBinary(t *testing.T) {
	t.Parallel()
	for op, want := range map[string]float64{"+": 9, "-": 3, "*": 18, "/": 2} {
		e, err := Binary(op, Lit(6), Lit(3))
		require.NoError(t, err)
		got, err := e.Eval(nil)
		require.NoError(t, err)
		assert.Equal(t, want, got, "operator %s", op)
	}

	_, err := Binary("%", Lit(1), Lit(2))
	assert.Error(t, err)
}
