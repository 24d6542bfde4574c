package interp

import (
	"github.com/wild-lang/wild/internal/ast"
	"github.com/wild-lang/wild/internal/errs"
	"github.com/wild-lang/wild/internal/token"
	"github.com/wild-lang/wild/internal/values"
)

func (it *Interpreter) eval(e ast.Expr) (values.Value, error) {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return values.Integer{Value: n.Value}, nil
	case *ast.FloatLiteral:
		return values.Float{Value: n.Value}, nil
	case *ast.StringLiteral:
		return values.String{Value: n.Value}, nil
	case *ast.BoolLiteral:
		return values.Boolean{Value: n.Value}, nil
	case *ast.NullLiteral:
		return values.Null{}, nil
	case *ast.Variable:
		return it.evalVariable(n)
	case *ast.BinaryOperation:
		return it.evalBinary(n)
	case *ast.UnaryOperation:
		return it.evalUnary(n)
	case *ast.Postfix:
		return it.evalPostfix(n)
	case *ast.FunctionCall:
		return it.evalCall(n)
	case *ast.MethodCall:
		return it.evalMethodCall(n)
	case *ast.Get:
		line, col := n.Pos()
		return nil, errs.New(errs.Interpreter, line, col, "field access has no evaluator")
	default:
		return nil, errs.New(errs.Interpreter, 0, 0, "unknown expression variant %T", e)
	}
}

func (it *Interpreter) evalVariable(n *ast.Variable) (values.Value, error) {
	v, ok := it.stack.Lookup(n.Name)
	if !ok {
		return nil, errs.New(errs.Interpreter, n.Line, n.Column, "undefined variable %q", n.Name)
	}
	return v, nil
}

// evalPostfix returns the pre-update value of an Int variable and writes
// back old±1 (spec.md §4.3 "Postfix").
func (it *Interpreter) evalPostfix(n *ast.Postfix) (values.Value, error) {
	cur, ok := it.stack.Lookup(n.Target.Name)
	if !ok {
		return nil, errs.New(errs.Interpreter, n.Line, n.Column, "undefined variable %q", n.Target.Name)
	}
	iv, ok := cur.(values.Integer)
	if !ok {
		return nil, errs.New(errs.Interpreter, n.Line, n.Column, "%s can only be applied to an Int, got %s", n.Op, cur.Kind())
	}
	delta := int64(1)
	if n.Op == token.DEC {
		delta = -1
	}
	it.stack.Assign(n.Target.Name, values.Integer{Value: iv.Value + delta})
	return iv, nil
}

func (it *Interpreter) evalArgs(exprs []ast.Expr) ([]values.Value, error) {
	args := make([]values.Value, len(exprs))
	for i, a := range exprs {
		v, err := it.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (it *Interpreter) evalCall(n *ast.FunctionCall) (values.Value, error) {
	callee, ok := it.stack.Lookup(n.Name)
	if !ok {
		return nil, errs.New(errs.Interpreter, n.Line, n.Column, "undefined function %q", n.Name)
	}
	args, err := it.evalArgs(n.Arguments)
	if err != nil {
		return nil, err
	}
	return it.call(callee, args, n.Line, n.Column)
}

// evalMethodCall dispatches `.name(args)` against the receiver's method
// table. Only String defines one (spec.md §4.3); every other receiver kind
// raises ExistenceError on any method name.
func (it *Interpreter) evalMethodCall(n *ast.MethodCall) (values.Value, error) {
	recv, err := it.eval(n.Receiver)
	if err != nil {
		return nil, err
	}
	args, err := it.evalArgs(n.Arguments)
	if err != nil {
		return nil, err
	}
	str, ok := recv.(values.String)
	if !ok {
		return nil, errs.New(errs.Existence, n.Line, n.Column, "%s has no method %q", recv.Kind(), n.Name)
	}
	m, ok := values.LookupStringMethod(n.Name)
	if !ok {
		return nil, errs.New(errs.Existence, n.Line, n.Column, "String has no method %q", n.Name)
	}
	if len(args) != m.Arity {
		return nil, errs.New(errs.ArgumentCount, n.Line, n.Column, "%s expects %d argument(s), got %d", n.Name, m.Arity, len(args))
	}
	return m.Fn(str.Value, args)
}

func (it *Interpreter) evalBinary(n *ast.BinaryOperation) (values.Value, error) {
	left, err := it.eval(n.Left)
	if err != nil {
		return nil, err
	}
	// && and || are non-short-circuit: both sides are always evaluated
	// (spec.md §9), so the right operand is evaluated unconditionally here
	// too, same as every other binary operator.
	right, err := it.eval(n.Right)
	if err != nil {
		return nil, err
	}
	line, col := n.Line, n.Column
	switch n.Op {
	case token.PLUS:
		return addValues(left, right, line, col)
	case token.MINUS:
		return subValues(left, right, line, col)
	case token.STAR:
		return mulValues(left, right, line, col)
	case token.SLASH:
		return divValues(left, right, line, col)
	case token.PERCENT:
		return modValues(left, right, line, col)
	case token.LT, token.LE, token.GT, token.GE:
		return compareValues(n.Op, left, right, line, col)
	case token.EQ:
		return values.Boolean{Value: valuesEqual(left, right)}, nil
	case token.NEQ:
		return values.Boolean{Value: !valuesEqual(left, right)}, nil
	case token.AND:
		return values.Boolean{Value: values.Truthy(left) && values.Truthy(right)}, nil
	case token.OR:
		return values.Boolean{Value: values.Truthy(left) || values.Truthy(right)}, nil
	}
	return nil, errs.New(errs.Interpreter, line, col, "unknown binary operator %s", n.Op)
}

func (it *Interpreter) evalUnary(n *ast.UnaryOperation) (values.Value, error) {
	operand, err := it.eval(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case token.MINUS:
		return mulValues(operand, values.Integer{Value: -1}, n.Line, n.Column)
	case token.NOT:
		b, ok := operand.(values.Boolean)
		if !ok {
			return nil, errs.New(errs.Interpreter, n.Line, n.Column, "! requires a Boolean operand, got %s", operand.Kind())
		}
		return values.Boolean{Value: !b.Value}, nil
	}
	return nil, errs.New(errs.Interpreter, n.Line, n.Column, "unknown unary operator %s", n.Op)
}
