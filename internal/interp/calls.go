package interp

import (
	"github.com/wild-lang/wild/internal/errs"
	"github.com/wild-lang/wild/internal/values"
)

// call resolves arity and dispatches to the right callable kind. Frame
// push/pop for a UserFunction is handled entirely in callUser so it is
// guaranteed even when the body errors partway through.
func (it *Interpreter) call(callee values.Value, args []values.Value, line, col int) (values.Value, error) {
	arity, ok := values.Callable(callee)
	if !ok {
		return nil, errs.New(errs.Interpreter, line, col, "value of kind %s is not callable", callee.Kind())
	}
	if len(args) != arity {
		return nil, errs.New(errs.ArgumentCount, line, col, "expected %d argument(s), got %d", arity, len(args))
	}
	switch fn := callee.(type) {
	case values.UserFunction:
		return it.callUser(fn, args)
	case values.NativeFunction:
		return fn.Fn(args)
	case values.NativeMethod:
		return fn.Fn(args)
	default:
		return nil, errs.New(errs.Interpreter, line, col, "value of kind %s is not callable", callee.Kind())
	}
}

// callUser pushes one frame, binds parameters in declaration order, runs
// the body, and pops the frame on every exit path — including an error
// partway through the body (spec.md §5).
func (it *Interpreter) callUser(fn values.UserFunction, args []values.Value) (values.Value, error) {
	it.stack.Push()
	defer it.stack.Pop()
	for i, p := range fn.Def.Parameters {
		it.stack.Declare(p.Name, args[i])
	}
	f, err := it.execBlock(fn.Def.Body)
	if err != nil {
		return nil, err
	}
	switch f.kind {
	case returning:
		return f.value, nil
	case breaking:
		return nil, errs.New(errs.Interpreter, fn.Def.Line, fn.Def.Column, "break outside of a loop in function %s", fn.Def.Name)
	case continuing:
		return nil, errs.New(errs.Interpreter, fn.Def.Line, fn.Def.Column, "continue outside of a loop in function %s", fn.Def.Name)
	default:
		return values.Void{}, nil
	}
}
