package values

import (
	"strconv"
	"strings"

	"github.com/wild-lang/wild/internal/errs"
)

// StringMethod is one entry of the static string-method dispatch table:
// a name, its declared arity, and the native implementation. Implemented
// as a table rather than reflection, per spec.md §9's design note.
type StringMethod struct {
	Name  string
	Arity int
	Fn    func(receiver string, args []Value) (Value, error)
}

var stringMethods = map[string]StringMethod{
	"capitalize": {"capitalize", 0, strCapitalize},
	"contains":   {"contains", 1, strContains},
	"endsWith":   {"endsWith", 1, strEndsWith},
	"find":       {"find", 1, strFind},
	"isEmpty":    {"isEmpty", 0, strIsEmpty},
	"length":     {"length", 0, strLength},
	"replace":    {"replace", 2, strReplace},
	"substring":  {"substring", 2, strSubstring},
	"startsWith": {"startsWith", 1, strStartsWith},
	"toFloat":    {"toFloat", 0, strToFloat},
	"toInteger":  {"toInteger", 0, strToInteger},
	"toLowerCase": {"toLowerCase", 0, strToLowerCase},
	"toUpperCase": {"toUpperCase", 0, strToUpperCase},
	"trim":        {"trim", 0, strTrim},
}

// LookupStringMethod returns the table entry for name, if String defines
// one. Receivers of other kinds have no methods at all (spec.md only
// defines a method table for String).
func LookupStringMethod(name string) (StringMethod, bool) {
	m, ok := stringMethods[name]
	return m, ok
}

func wantString(args []Value, i int, method string) (string, error) {
	s, ok := args[i].(String)
	if !ok {
		return "", errs.New(errs.ArgumentType, 0, 0, "argument %d to %s must be a String, got %s", i+1, method, args[i].Kind())
	}
	return s.Value, nil
}

func wantInt(args []Value, i int, method string) (int64, error) {
	n, ok := args[i].(Integer)
	if !ok {
		return 0, errs.New(errs.ArgumentType, 0, 0, "argument %d to %s must be an Int, got %s", i+1, method, args[i].Kind())
	}
	return n.Value, nil
}

func strCapitalize(recv string, args []Value) (Value, error) {
	if recv == "" {
		return String{""}, nil
	}
	return String{strings.ToUpper(recv[:1]) + recv[1:]}, nil
}

func strContains(recv string, args []Value) (Value, error) {
	s, err := wantString(args, 0, "contains")
	if err != nil {
		return nil, err
	}
	return Boolean{strings.Contains(recv, s)}, nil
}

func strEndsWith(recv string, args []Value) (Value, error) {
	s, err := wantString(args, 0, "endsWith")
	if err != nil {
		return nil, err
	}
	return Boolean{strings.HasSuffix(recv, s)}, nil
}

func strFind(recv string, args []Value) (Value, error) {
	s, err := wantString(args, 0, "find")
	if err != nil {
		return nil, err
	}
	return Integer{int64(strings.Index(recv, s))}, nil
}

func strIsEmpty(recv string, args []Value) (Value, error) {
	return Boolean{recv == ""}, nil
}

func strLength(recv string, args []Value) (Value, error) {
	return Integer{int64(len([]rune(recv)))}, nil
}

func strReplace(recv string, args []Value) (Value, error) {
	a, err := wantString(args, 0, "replace")
	if err != nil {
		return nil, err
	}
	b, err := wantString(args, 1, "replace")
	if err != nil {
		return nil, err
	}
	return String{strings.ReplaceAll(recv, a, b)}, nil
}

// sliceBound clamps a raw (possibly negative, possibly out-of-range) Python
// slice index i into [0, n], treating a negative i as counting back from
// the end the way Python's `value[i]` indexing does.
func sliceBound(n int, i int64) int {
	if i < 0 {
		i += int64(n)
		if i < 0 {
			i = 0
		}
	} else if i > int64(n) {
		i = int64(n)
	}
	return int(i)
}

// strSubstring mirrors the original implementation's `value[start:start+length]`
// Python slice expression exactly: out-of-range or negative bounds clip
// silently to the string's extent rather than raising an error (see
// DESIGN.md's Open Question decisions).
func strSubstring(recv string, args []Value) (Value, error) {
	start, err := wantInt(args, 0, "substring")
	if err != nil {
		return nil, err
	}
	length, err := wantInt(args, 1, "substring")
	if err != nil {
		return nil, err
	}
	runes := []rune(recv)
	lo := sliceBound(len(runes), start)
	hi := sliceBound(len(runes), start+length)
	if lo >= hi {
		return String{""}, nil
	}
	return String{string(runes[lo:hi])}, nil
}

func strStartsWith(recv string, args []Value) (Value, error) {
	s, err := wantString(args, 0, "startsWith")
	if err != nil {
		return nil, err
	}
	return Boolean{strings.HasPrefix(recv, s)}, nil
}

func strToFloat(recv string, args []Value) (Value, error) {
	f, err := strconv.ParseFloat(recv, 64)
	if err != nil {
		return nil, errs.New(errs.Conversion, 0, 0, "cannot convert %q to Float", recv)
	}
	return Float{f}, nil
}

func strToInteger(recv string, args []Value) (Value, error) {
	n, err := strconv.ParseInt(recv, 10, 64)
	if err != nil {
		return nil, errs.New(errs.Conversion, 0, 0, "cannot convert %q to Int", recv)
	}
	return Integer{n}, nil
}

func strToLowerCase(recv string, args []Value) (Value, error) {
	return String{strings.ToLower(recv)}, nil
}

func strToUpperCase(recv string, args []Value) (Value, error) {
	return String{strings.ToUpper(recv)}, nil
}

func strTrim(recv string, args []Value) (Value, error) {
	return String{strings.TrimSpace(recv)}, nil
}
