// Package astprint renders a parsed *ast.Program as an indented tree, for
// `wild parse`'s debug output. Modeled on the teacher's PrintingVisitor, but
// dispatches by type switch rather than an Accept/Visit pair — there is no
// visitor interface on ast nodes (see internal/ast's package doc).
package astprint

import (
	"bytes"
	"fmt"

	"github.com/wild-lang/wild/internal/ast"
)

const indentSize = 2

type printer struct {
	buf    bytes.Buffer
	indent int
}

// Program renders prog as an indented tree and returns the result.
func Program(prog *ast.Program) string {
	p := &printer{}
	p.line("Program")
	p.indent += indentSize
	for _, st := range prog.Statements {
		p.stmt(st)
	}
	p.indent -= indentSize
	return p.buf.String()
}

func (p *printer) line(format string, args ...any) {
	p.buf.WriteString(spaces(p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func (p *printer) stmt(st ast.Stmt) {
	switch n := st.(type) {
	case *ast.VariableDeclaration:
		p.line("VariableDeclaration %s %s", n.DeclaredType, n.Name)
		p.child(func() { p.expr(n.Value) })
	case *ast.Assignment:
		p.line("Assignment %s", n.Target.Name)
		p.child(func() { p.expr(n.Value) })
	case *ast.ExpressionStatement:
		p.line("ExpressionStatement")
		p.child(func() { p.expr(n.X) })
	case *ast.Block:
		p.line("Block")
		p.child(func() {
			for _, s := range n.Statements {
				p.stmt(s)
			}
		})
	case *ast.If:
		p.line("If")
		p.child(func() {
			p.expr(n.Condition)
			p.stmt(n.BranchTrue)
			if n.BranchFalse != nil {
				p.stmt(n.BranchFalse)
			}
		})
	case *ast.While:
		p.line("While")
		p.child(func() {
			p.expr(n.Condition)
			p.stmt(n.Body)
		})
	case *ast.For:
		p.line("For")
		p.child(func() {
			if n.Init != nil {
				p.stmt(n.Init)
			}
			if n.Condition != nil {
				p.expr(n.Condition)
			}
			if n.Increment != nil {
				p.stmt(n.Increment)
			}
			p.stmt(n.Body)
		})
	case *ast.Break:
		p.line("Break")
	case *ast.Continue:
		p.line("Continue")
	case *ast.Return:
		p.line("Return")
		if n.Value != nil {
			p.child(func() { p.expr(n.Value) })
		}
	case *ast.FunctionDefinition:
		p.line("FunctionDefinition %s %s", n.ReturnType, n.Name)
		p.child(func() {
			for _, param := range n.Parameters {
				p.line("Param %s %s", param.TypeName, param.Name)
			}
			p.stmt(n.Body)
		})
	default:
		p.line("<unknown statement %T>", st)
	}
}

func (p *printer) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.IntLiteral:
		p.line("IntLiteral %d", n.Value)
	case *ast.FloatLiteral:
		p.line("FloatLiteral %g", n.Value)
	case *ast.StringLiteral:
		p.line("StringLiteral %q", n.Value)
	case *ast.BoolLiteral:
		p.line("BoolLiteral %t", n.Value)
	case *ast.NullLiteral:
		p.line("NullLiteral")
	case *ast.Variable:
		p.line("Variable %s", n.Name)
	case *ast.BinaryOperation:
		p.line("BinaryOperation %s", n.Op)
		p.child(func() {
			p.expr(n.Left)
			p.expr(n.Right)
		})
	case *ast.UnaryOperation:
		p.line("UnaryOperation %s", n.Op)
		p.child(func() { p.expr(n.Operand) })
	case *ast.Postfix:
		p.line("Postfix %s %s", n.Target.Name, n.Op)
	case *ast.FunctionCall:
		p.line("FunctionCall %s", n.Name)
		p.child(func() {
			for _, a := range n.Arguments {
				p.expr(a)
			}
		})
	case *ast.MethodCall:
		p.line("MethodCall %s", n.Name)
		p.child(func() {
			p.expr(n.Receiver)
			for _, a := range n.Arguments {
				p.expr(a)
			}
		})
	case *ast.Get:
		p.line("Get %s", n.Name)
		p.child(func() { p.expr(n.Receiver) })
	default:
		p.line("<unknown expression %T>", e)
	}
}

func (p *printer) child(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}
