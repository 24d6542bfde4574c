package interp

import (
	"github.com/wild-lang/wild/internal/ast"
	"github.com/wild-lang/wild/internal/errs"
	"github.com/wild-lang/wild/internal/values"
)

// exec runs one statement and reports how it left: Normal, or one of the
// three signals threaded up to the handler that consumes it.
func (it *Interpreter) exec(st ast.Stmt) (flow, error) {
	switch n := st.(type) {
	case *ast.VariableDeclaration:
		return it.execVarDecl(n)
	case *ast.Assignment:
		return it.execAssign(n)
	case *ast.ExpressionStatement:
		return it.execExprStmt(n)
	case *ast.Block:
		return it.execBlock(n)
	case *ast.If:
		return it.execIf(n)
	case *ast.While:
		return it.execWhile(n)
	case *ast.For:
		return it.execFor(n)
	case *ast.Break:
		return breakingFlow(), nil
	case *ast.Continue:
		return continuingFlow(), nil
	case *ast.Return:
		return it.execReturn(n)
	case *ast.FunctionDefinition:
		it.stack.Declare(n.Name, values.UserFunction{Def: n})
		return normalFlow(), nil
	default:
		return flow{}, errs.New(errs.Interpreter, 0, 0, "unknown statement variant %T", st)
	}
}

func (it *Interpreter) execVarDecl(n *ast.VariableDeclaration) (flow, error) {
	v, err := it.eval(n.Value)
	if err != nil {
		return flow{}, err
	}
	it.stack.Declare(n.Name, v)
	return normalFlow(), nil
}

func (it *Interpreter) execAssign(n *ast.Assignment) (flow, error) {
	v, err := it.eval(n.Value)
	if err != nil {
		return flow{}, err
	}
	if !it.stack.Assign(n.Target.Name, v) {
		return flow{}, errs.New(errs.Interpreter, n.Line, n.Column, "cannot assign to undefined variable %q", n.Target.Name)
	}
	return normalFlow(), nil
}

func (it *Interpreter) execExprStmt(n *ast.ExpressionStatement) (flow, error) {
	if _, err := it.eval(n.X); err != nil {
		return flow{}, err
	}
	return normalFlow(), nil
}

// execBlock runs a block's statements in the current frame — a Block
// introduces no frame of its own (spec.md §4.3); For and function calls
// push one around the block they own.
func (it *Interpreter) execBlock(b *ast.Block) (flow, error) {
	for _, st := range b.Statements {
		f, err := it.exec(st)
		if err != nil {
			return flow{}, err
		}
		if !f.isNormal() {
			return f, nil
		}
	}
	return normalFlow(), nil
}

func (it *Interpreter) execIf(n *ast.If) (flow, error) {
	cond, err := it.eval(n.Condition)
	if err != nil {
		return flow{}, err
	}
	if values.Truthy(cond) {
		return it.execBlock(n.BranchTrue)
	}
	if n.BranchFalse != nil {
		return it.execBlock(n.BranchFalse)
	}
	return normalFlow(), nil
}

func (it *Interpreter) execWhile(n *ast.While) (flow, error) {
	for {
		cond, err := it.eval(n.Condition)
		if err != nil {
			return flow{}, err
		}
		if !values.Truthy(cond) {
			return normalFlow(), nil
		}
		body, err := it.execBlock(n.Body)
		if err != nil {
			return flow{}, err
		}
		switch body.kind {
		case breaking:
			return normalFlow(), nil
		case returning:
			return body, nil
		}
	}
}

// execFor pushes one frame for the loop's whole lifetime — the initializer
// declares into it, and every iteration's body runs inside it — and
// guarantees the frame is popped on every exit path (spec.md §3, §5).
func (it *Interpreter) execFor(n *ast.For) (flow, error) {
	it.stack.Push()
	defer it.stack.Pop()

	if n.Init != nil {
		if _, err := it.exec(n.Init); err != nil {
			return flow{}, err
		}
	}

	for {
		if n.Condition != nil {
			cond, err := it.eval(n.Condition)
			if err != nil {
				return flow{}, err
			}
			if !values.Truthy(cond) {
				return normalFlow(), nil
			}
		}

		body, err := it.exec(n.Body)
		if err != nil {
			return flow{}, err
		}
		switch body.kind {
		case breaking:
			return normalFlow(), nil
		case returning:
			return body, nil
		}

		if n.Increment != nil {
			if _, err := it.exec(n.Increment); err != nil {
				return flow{}, err
			}
		}
	}
}

func (it *Interpreter) execReturn(n *ast.Return) (flow, error) {
	if n.Value == nil {
		return returningFlow(values.Void{}), nil
	}
	v, err := it.eval(n.Value)
	if err != nil {
		return flow{}, err
	}
	return returningFlow(v), nil
}
