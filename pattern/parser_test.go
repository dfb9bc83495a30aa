package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BasicSequence(t *testing.T) {
	t.Parallel()
	tree, diag := Parse("$var1 + $var2")
	require.Nil(t, diag)

	require.Equal(t, KindSequence, tree.Kind)
	require.Len(t, tree.Children, 3)

	assert.Equal(t, KindVariable, tree.Children[0].Kind)
	assert.Equal(t, "var1", tree.Children[0].Text)
	assert.Equal(t, 0, tree.Children[0].Pos)

	assert.Equal(t, KindOperator, tree.Children[1].Kind)
	assert.Equal(t, "+", tree.Children[1].Text)
	assert.Equal(t, 6, tree.Children[1].Pos)

	assert.Equal(t, KindVariable, tree.Children[2].Kind)
	assert.Equal(t, "var2", tree.Children[2].Text)
}

func TestParse_EscapedOperator(t *testing.T) {
	t.Parallel()
	tree, diag := Parse(`$var1 \+ $var2`)
	require.Nil(t, diag)

	require.Len(t, tree.Children, 3)
	assert.Equal(t, KindLiteral, tree.Children[1].Kind)
	assert.Equal(t, "+", tree.Children[1].Text)
}

func TestParse_PostfixRepetition(t *testing.T) {
	t.Parallel()
	tree, diag := Parse("$var1+ $var2")
	require.Nil(t, diag)

	require.Len(t, tree.Children, 2)

	rep := tree.Children[0]
	require.Equal(t, KindRepetition, rep.Kind)
	assert.Equal(t, "+", rep.Text)
	require.Len(t, rep.Children, 1)
	assert.Equal(t, KindVariable, rep.Children[0].Kind)
	assert.Equal(t, "var1", rep.Children[0].Text)

	assert.Equal(t, KindVariable, tree.Children[1].Kind)
	assert.Equal(t, "var2", tree.Children[1].Text)
}

func TestParse_Structure(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  *Node
	}{
		{
			name:  "empty pattern",
			input: "",
			want:  NewSequence(0),
		},
		{
			name:  "whitespace only",
			input: "   \t ",
			want:  NewSequence(0),
		},
		{
			name:  "bare literal",
			input: "vec!",
			want:  NewSequence(0, NewLiteral("vec!", 0)),
		},
		{
			name:  "literal stops at structural character",
			input: "vec$x",
			want: NewSequence(0,
				NewLiteral("vec", 0),
				NewVariable("x", 3),
			),
		},
		{
			name:  "group",
			input: "(a b) c",
			want: NewSequence(0,
				NewSequence(0, NewLiteral("a", 0), NewLiteral("b", 0)),
				NewLiteral("c", 0),
			),
		},
		{
			name:  "optional",
			input: "[x] y",
			want: NewSequence(0,
				NewOptional(0, NewLiteral("x", 0)),
				NewLiteral("y", 0),
			),
		},
		{
			name:  "repeated group",
			input: "(a b)* c",
			want: NewSequence(0,
				NewRepetition("*", NewSequence(0, NewLiteral("a", 0), NewLiteral("b", 0)), 0),
				NewLiteral("c", 0),
			),
		},
		{
			name:  "operator with space is a token",
			input: "a * b",
			want: NewSequence(0,
				NewLiteral("a", 0),
				NewOperator("*", 0),
				NewLiteral("b", 0),
			),
		},
		{
			name:  "all operator symbols",
			input: "+ - * / =",
			want: NewSequence(0,
				NewOperator("+", 0),
				NewOperator("-", 0),
				NewOperator("*", 0),
				NewOperator("/", 0),
				NewOperator("=", 0),
			),
		},
		{
			name:  "leading operator has nothing to attach to",
			input: "+ a",
			want: NewSequence(0,
				NewOperator("+", 0),
				NewLiteral("a", 0),
			),
		},
		{
			name:  "nested repetition",
			input: "$x+?",
			want: NewSequence(0,
				NewRepetition("?", NewRepetition("+", NewVariable("x", 0), 0), 0),
			),
		},
		{
			name:  "comma is a single literal",
			input: "a , b",
			want: NewSequence(0,
				NewLiteral("a", 0),
				NewLiteral(",", 0),
				NewLiteral("b", 0),
			),
		},
		{
			name:  "escaped bracket",
			input: `\[ $x \]`,
			want: NewSequence(0,
				NewLiteral("[", 0),
				NewVariable("x", 0),
				NewLiteral("]", 0),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diag := Parse(tt.input)
			require.Nil(t, diag)
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) =\n%s\nwant\n%s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantMsg string
		wantPos int
	}{
		{
			name:    "empty variable name",
			input:   "$var1 + $",
			wantMsg: "empty variable name",
			wantPos: 8,
		},
		{
			name:    "dangling escape",
			input:   `$x \`,
			wantMsg: "unexpected end of pattern after escape character",
			wantPos: 3,
		},
		{
			name:    "unclosed group",
			input:   "(a b",
			wantMsg: "unclosed group",
			wantPos: 0,
		},
		{
			name:    "unclosed optional group",
			input:   "a [b",
			wantMsg: "unclosed optional group",
			wantPos: 2,
		},
		{
			name:    "trailing characters",
			input:   "a ) b",
			wantMsg: "unexpected characters at end of pattern",
			wantPos: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, diag := Parse(tt.input)
			require.NotNil(t, tree, "a best-effort tree is always returned")
			require.NotNil(t, diag)
			assert.Equal(t, tt.wantMsg, diag.Message)
			assert.Equal(t, tt.wantPos, diag.Pos)
		})
	}
}

func TestParse_DegenerateVariableKept(t *testing.T) {
	t.Parallel()
	tree, diag := Parse("$var1 + $")
	require.NotNil(t, diag)

	require.Len(t, tree.Children, 3)
	last := tree.Children[2]
	assert.Equal(t, KindVariable, last.Kind)
	assert.Equal(t, "", last.Text)
	assert.Equal(t, 8, last.Pos)
}

func TestParse_FirstErrorWins(t *testing.T) {
	t.Parallel()
	_, diag := Parse("$ (a")
	require.NotNil(t, diag)
	assert.Equal(t, "empty variable name", diag.Message)
	assert.Equal(t, 0, diag.Pos)
}

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"$var1 + $var2",
		"vec ! \\[ $expr+",
		"[opt] (grp $x)* end",
	}
	for _, input := range inputs {
		first, diag1 := Parse(input)
		second, diag2 := Parse(input)
		require.Nil(t, diag1)
		require.Nil(t, diag2)
		assert.True(t, first.Equal(second), "parsing %q twice diverged", input)
	}
}

func TestNode_String(t *testing.T) {
	t.Parallel()
	tree, diag := Parse("$x+ y")
	require.Nil(t, diag)

	s := tree.String()
	assert.Contains(t, s, "sequence(2 children)")
	assert.Contains(t, s, `repetition(+)`)
	assert.Contains(t, s, `variable("x")`)
	assert.Contains(t, s, `literal("y")`)
}

func TestDiagnostic_Error(t *testing.T) {
	t.Parallel()
	d := &Diagnostic{Message: "unclosed group", Pos: 4}
	assert.Equal(t, "unclosed group at position 4", d.Error())
}
