// Package interp implements Wild's tree-walking evaluator: a single
// recursive-descent visitor over *ast.Program that owns an environment
// stack and threads an explicit control-flow signal through statement
// execution rather than relying on panics or exceptions (spec.md §9).
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/wild-lang/wild/internal/ast"
	"github.com/wild-lang/wild/internal/env"
	"github.com/wild-lang/wild/internal/errs"
	"github.com/wild-lang/wild/internal/values"
)

// Interpreter holds the state shared across one Run: the environment stack
// and the sink for the built-in print.
type Interpreter struct {
	stack  *env.Stack
	stdout io.Writer
}

// New returns an Interpreter writing print output to stdout.
func New() *Interpreter {
	it := &Interpreter{stack: env.New(), stdout: os.Stdout}
	it.stack.DeclareGlobal("print", values.NativeFunction{
		Name:  "print",
		Arity: 1,
		Fn: func(args []values.Value) (values.Value, error) {
			it.writeLine(args[0].String())
			return values.Void{}, nil
		},
	})
	return it
}

// SetOutput redirects the built-in print's destination, for tests.
func (it *Interpreter) SetOutput(w io.Writer) { it.stdout = w }

// Run executes prog's top-level statements, then invokes main() and returns
// its Integer payload as a process exit code (spec.md §4.3).
func (it *Interpreter) Run(prog *ast.Program) (int, error) {
	for _, st := range prog.Statements {
		if fn, ok := st.(*ast.FunctionDefinition); ok {
			it.stack.DeclareGlobal(fn.Name, values.UserFunction{Def: fn})
		}
	}
	for _, st := range prog.Statements {
		if _, ok := st.(*ast.FunctionDefinition); ok {
			continue
		}
		f, err := it.exec(st)
		if err != nil {
			return 0, err
		}
		switch f.kind {
		case breaking:
			return 0, errs.New(errs.Interpreter, 0, 0, "break outside of a loop")
		case continuing:
			return 0, errs.New(errs.Interpreter, 0, 0, "continue outside of a loop")
		}
	}

	mainFn, ok := it.stack.Lookup("main")
	if !ok {
		return 0, errs.New(errs.Interpreter, 0, 0, "main is not defined")
	}
	result, err := it.call(mainFn, nil, 0, 0)
	if err != nil {
		return 0, err
	}
	n, ok := result.(values.Integer)
	if !ok {
		return 0, errs.New(errs.ReturnType, 0, 0, "main must return Int, got %s", result.Kind())
	}
	return int(n.Value), nil
}

func (it *Interpreter) writeLine(s string) {
	fmt.Fprintln(it.stdout, s)
}
