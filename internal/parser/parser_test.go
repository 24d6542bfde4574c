package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wild-lang/wild/internal/ast"
	"github.com/wild-lang/wild/internal/errs"
)

func TestParse_VariableDeclaration(t *testing.T) {
	prog, err := Parse(`Int x = 1 + 2;`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)
	decl, ok := prog.Statements[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	bin, ok := decl.Value.(*ast.BinaryOperation)
	require.True(t, ok)
	left, ok := bin.Left.(*ast.IntLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(1), left.Value)
}

func TestParse_FunctionVsVariableDisambiguation(t *testing.T) {
	prog, err := Parse(`Int add(Int a, Int b) { return a + b; } Int x = 5;`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)
	fn, ok := prog.Statements[0].(*ast.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Parameters, 2)
	_, ok = prog.Statements[1].(*ast.VariableDeclaration)
	assert.True(t, ok)
}

// TermIsLeftAssociative is the explicit correction spec.md mandates over
// the right-recursive grammar it was distilled from: `a - b - c` must parse
// as `(a - b) - c`, not `a - (b - c)`.
func TestParse_TermIsLeftAssociative(t *testing.T) {
	prog, err := Parse(`Int main() { return a - b - c; }`)
	require.NoError(t, err)
	fn := prog.Statements[0].(*ast.FunctionDefinition)
	ret := fn.Body.Statements[0].(*ast.Return)
	top, ok := ret.Value.(*ast.BinaryOperation)
	require.True(t, ok)
	// top should be (a - b) - c: its Left is itself a BinaryOperation, its
	// Right is the bare variable c.
	_, leftIsBinary := top.Left.(*ast.BinaryOperation)
	assert.True(t, leftIsBinary)
	rightVar, ok := top.Right.(*ast.Variable)
	require.True(t, ok)
	assert.Equal(t, "c", rightVar.Name)
}

func TestParse_CompoundAssignmentDesugars(t *testing.T) {
	prog, err := Parse(`Int main() { Int x = 1; x += 2; return x; }`)
	require.NoError(t, err)
	fn := prog.Statements[0].(*ast.FunctionDefinition)
	assign, ok := fn.Body.Statements[1].(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Target.Name)
	bin, ok := assign.Value.(*ast.BinaryOperation)
	require.True(t, ok)
	assert.Equal(t, "x", bin.Left.(*ast.Variable).Name)
}

func TestParse_ForLoop(t *testing.T) {
	prog, err := Parse(`Int main() { for (Int i = 0; i < 3; i++) { } return 0; }`)
	require.NoError(t, err)
	fn := prog.Statements[0].(*ast.FunctionDefinition)
	loop, ok := fn.Body.Statements[0].(*ast.For)
	require.True(t, ok)
	require.NotNil(t, loop.Init)
	require.NotNil(t, loop.Condition)
	require.NotNil(t, loop.Increment)
}

func TestParse_MethodCallAndPostfix(t *testing.T) {
	prog, err := Parse(`Int main() { print(s.substring(1, 3)); x++; return 0; }`)
	require.NoError(t, err)
	fn := prog.Statements[0].(*ast.FunctionDefinition)
	call := fn.Body.Statements[0].(*ast.ExpressionStatement).X.(*ast.FunctionCall)
	assert.Equal(t, "print", call.Name)
	_, ok := call.Arguments[0].(*ast.MethodCall)
	assert.True(t, ok)
	post, ok := fn.Body.Statements[1].(*ast.ExpressionStatement).X.(*ast.Postfix)
	require.True(t, ok)
	assert.Equal(t, "x", post.Target.Name)
}

func TestParse_PostfixOnNonVariableIsSyntaxError(t *testing.T) {
	_, err := Parse(`Int main() { 1++; return 0; }`)
	require.Error(t, err)
	var wildErr *errs.Error
	require.ErrorAs(t, err, &wildErr)
	assert.Equal(t, errs.Syntax, wildErr.Kind)
}

func TestParse_CallOnNonIdentifierIsSyntaxError(t *testing.T) {
	_, err := Parse(`Int main() { (1 + 2)(3); return 0; }`)
	require.Error(t, err)
	var wildErr *errs.Error
	require.ErrorAs(t, err, &wildErr)
	assert.Equal(t, errs.Syntax, wildErr.Kind)
}

func TestParse_MissingTokenIsSyntaxError(t *testing.T) {
	_, err := Parse(`Int main() { return 0 }`)
	require.Error(t, err)
	var wildErr *errs.Error
	require.ErrorAs(t, err, &wildErr)
	assert.Equal(t, errs.Syntax, wildErr.Kind)
}
