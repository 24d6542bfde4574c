// Package values implements Wild's runtime value algebra: the tagged union
// of Integer, Float, Boolean, String, Null, Void, and the three callable
// variants (user function, native function, bound native method).
package values

import (
	"fmt"
	"strconv"

	"github.com/wild-lang/wild/internal/ast"
)

// Kind names a Value variant, used for dispatch and diagnostics.
type Kind string

const (
	IntegerKind      Kind = "Int"
	FloatKind        Kind = "Float"
	BooleanKind      Kind = "Boolean"
	StringKind       Kind = "String"
	NullKind         Kind = "Null"
	VoidKind         Kind = "Void"
	UserFunctionKind Kind = "UserFunction"
	NativeFuncKind   Kind = "NativeFunction"
	NativeMethodKind Kind = "NativeMethod"
)

// Value is implemented by every runtime value variant. Values are
// logically immutable; "mutation" (assignment, ++/--) replaces the binding
// in an environment frame rather than the Value itself.
type Value interface {
	Kind() Kind
	String() string
}

// Integer is Wild's 32-bit-declared integer domain. The host representation
// is a 64-bit signed int; arithmetic that would overflow a 32-bit domain is
// left at full 64-bit precision rather than wrapped — see DESIGN.md for the
// rationale (spec.md §3 leaves this implementation-defined).
type Integer struct{ Value int64 }

func (Integer) Kind() Kind        { return IntegerKind }
func (i Integer) String() string  { return strconv.FormatInt(i.Value, 10) }

// Float is a 64-bit IEEE-754 value.
type Float struct{ Value float64 }

func (Float) Kind() Kind       { return FloatKind }
func (f Float) String() string { return strconv.FormatFloat(f.Value, 'f', -1, 64) }

// Boolean prints as "True"/"False" (capitalised, per spec.md §4.3's
// implementation-defined-but-stable choice).
type Boolean struct{ Value bool }

func (Boolean) Kind() Kind { return BooleanKind }
func (b Boolean) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// String is UTF-8 text. Its canonical form (String.String()) is the bare
// text with no surrounding quotes, per spec.md §4.3's print contract.
type String struct{ Value string }

func (String) Kind() Kind        { return StringKind }
func (s String) String() string  { return s.Value }

// Null is the explicit absence-of-value literal `null`.
type Null struct{}

func (Null) Kind() Kind      { return NullKind }
func (Null) String() string { return "null" }

// Void is returned by statements, and by functions/procedures that fall off
// the end of their body without an explicit `return`.
type Void struct{}

func (Void) Kind() Kind      { return VoidKind }
func (Void) String() string  { return "void" }

// UserFunction is a callable bound to a parsed FunctionDefinition. It holds
// a non-owning reference into the Program AST, which must outlive every
// UserFunction created from it.
type UserFunction struct {
	Def *ast.FunctionDefinition
}

func (UserFunction) Kind() Kind { return UserFunctionKind }
func (f UserFunction) String() string {
	return fmt.Sprintf("<function %s>", f.Def.Name)
}

// Arity returns the function's declared parameter count.
func (f UserFunction) Arity() int { return len(f.Def.Parameters) }

// NativeFunc is the Go implementation behind a NativeFunction/NativeMethod.
// args excludes the receiver for NativeMethod (it is bound separately).
type NativeFunc func(args []Value) (Value, error)

// NativeFunction is a built-in callable not backed by a FunctionDefinition,
// e.g. the global `print`.
type NativeFunction struct {
	Name  string
	Arity int
	Fn    NativeFunc
}

func (NativeFunction) Kind() Kind { return NativeFuncKind }
func (f NativeFunction) String() string {
	return fmt.Sprintf("<native function %s>", f.Name)
}

// NativeMethod is a native callable bound to a receiver. No code path
// constructs one: method calls on Strings dispatch through the StringMethod
// table (see LookupStringMethod) instead.
type NativeMethod struct {
	Receiver Value
	Name     string
	Arity    int
	Fn       NativeFunc
}

func (NativeMethod) Kind() Kind { return NativeMethodKind }
func (m NativeMethod) String() string {
	return fmt.Sprintf("<native method %s>", m.Name)
}

// Callable reports whether v can be invoked, and if so its declared arity.
func Callable(v Value) (arity int, ok bool) {
	switch fn := v.(type) {
	case UserFunction:
		return fn.Arity(), true
	case NativeFunction:
		return fn.Arity, true
	case NativeMethod:
		return fn.Arity, true
	default:
		return 0, false
	}
}

// Truthy coerces v's underlying payload to a host bool, per spec.md's
// GLOSSARY: Boolean uses its bit, numerics use non-zero, String uses
// non-empty, Null/Void are always false.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Boolean:
		return t.Value
	case Integer:
		return t.Value != 0
	case Float:
		return t.Value != 0
	case String:
		return t.Value != ""
	default:
		return false
	}
}

// IsNumeric reports whether v is an Integer or a Float.
func IsNumeric(v Value) bool {
	switch v.(type) {
	case Integer, Float:
		return true
	default:
		return false
	}
}

// AsFloat returns v's numeric value widened to float64. Callers must check
// IsNumeric(v) first.
func AsFloat(v Value) float64 {
	switch t := v.(type) {
	case Integer:
		return float64(t.Value)
	case Float:
		return t.Value
	default:
		return 0
	}
}
