package interp

import (
	"github.com/wild-lang/wild/internal/errs"
	"github.com/wild-lang/wild/internal/token"
	"github.com/wild-lang/wild/internal/values"
)

// arith implements the shared numeric-promotion rule for +, -, *: Integer
// result if both operands are Integer, Float otherwise (spec.md §4.3).
func arith(l, r values.Value, line, col int, op string, iop func(a, b int64) int64, fop func(a, b float64) float64) (values.Value, error) {
	if !values.IsNumeric(l) || !values.IsNumeric(r) {
		return nil, errs.New(errs.Interpreter, line, col, "operator %s requires numeric operands, got %s and %s", op, l.Kind(), r.Kind())
	}
	li, lok := l.(values.Integer)
	ri, rok := r.(values.Integer)
	if lok && rok {
		return values.Integer{Value: iop(li.Value, ri.Value)}, nil
	}
	return values.Float{Value: fop(values.AsFloat(l), values.AsFloat(r))}, nil
}

func addValues(l, r values.Value, line, col int) (values.Value, error) {
	if ls, ok := l.(values.String); ok {
		if rs, ok := r.(values.String); ok {
			return values.String{Value: ls.Value + rs.Value}, nil
		}
	}
	return arith(l, r, line, col, "+", func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
}

func subValues(l, r values.Value, line, col int) (values.Value, error) {
	return arith(l, r, line, col, "-", func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
}

func mulValues(l, r values.Value, line, col int) (values.Value, error) {
	return arith(l, r, line, col, "*", func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
}

// divValues always produces a Float, per spec.md's table.
func divValues(l, r values.Value, line, col int) (values.Value, error) {
	if !values.IsNumeric(l) || !values.IsNumeric(r) {
		return nil, errs.New(errs.Interpreter, line, col, "operator / requires numeric operands, got %s and %s", l.Kind(), r.Kind())
	}
	return values.Float{Value: values.AsFloat(l) / values.AsFloat(r)}, nil
}

// modValues always produces an Integer, truncating either operand toward
// zero first.
func modValues(l, r values.Value, line, col int) (values.Value, error) {
	if !values.IsNumeric(l) || !values.IsNumeric(r) {
		return nil, errs.New(errs.Interpreter, line, col, "operator %% requires numeric operands, got %s and %s", l.Kind(), r.Kind())
	}
	return values.Integer{Value: truncInt(l) % truncInt(r)}, nil
}

func truncInt(v values.Value) int64 {
	if i, ok := v.(values.Integer); ok {
		return i.Value
	}
	return int64(values.AsFloat(v))
}

func compareValues(op token.Kind, l, r values.Value, line, col int) (values.Value, error) {
	if !values.IsNumeric(l) || !values.IsNumeric(r) {
		return nil, errs.New(errs.Interpreter, line, col, "comparison requires numeric operands, got %s and %s", l.Kind(), r.Kind())
	}
	a, b := values.AsFloat(l), values.AsFloat(r)
	switch op {
	case token.LT:
		return values.Boolean{Value: a < b}, nil
	case token.LE:
		return values.Boolean{Value: a <= b}, nil
	case token.GT:
		return values.Boolean{Value: a > b}, nil
	case token.GE:
		return values.Boolean{Value: a >= b}, nil
	}
	return nil, errs.New(errs.Interpreter, line, col, "unknown comparison operator %s", op)
}

// valuesEqual backs both == and !=. Equality across Int/Float compares
// numeric value; String, Boolean, Null, and Void compare same-kind only.
func valuesEqual(l, r values.Value) bool {
	if values.IsNumeric(l) && values.IsNumeric(r) {
		return values.AsFloat(l) == values.AsFloat(r)
	}
	switch lv := l.(type) {
	case values.String:
		rv, ok := r.(values.String)
		return ok && lv.Value == rv.Value
	case values.Boolean:
		rv, ok := r.(values.Boolean)
		return ok && lv.Value == rv.Value
	case values.Null:
		_, ok := r.(values.Null)
		return ok
	case values.Void:
		_, ok := r.(values.Void)
		return ok
	default:
		return false
	}
}
