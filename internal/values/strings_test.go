package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wild-lang/wild/internal/errs"
)

func call(t *testing.T, recv string, name string, args ...Value) (Value, error) {
	t.Helper()
	m, ok := LookupStringMethod(name)
	require.True(t, ok, "method %q must exist", name)
	return m.Fn(recv, args)
}

func TestStringMethods_Substring(t *testing.T) {
	v, err := call(t, "abcdef", "substring", Integer{1}, Integer{3})
	require.NoError(t, err)
	assert.Equal(t, String{"bcd"}, v)
}

func TestStringMethods_SubstringUTF8Aware(t *testing.T) {
	v, err := call(t, "héllo", "substring", Integer{0}, Integer{2})
	require.NoError(t, err)
	assert.Equal(t, String{"hé"}, v)
}

func TestStringMethods_SubstringOutOfRangeClipsLikePythonSlicing(t *testing.T) {
	// substring(start, length) mirrors the original's `value[start:start+length]`
	// Python slice: out-of-range bounds clip silently instead of erroring.
	v, err := call(t, "abc", "substring", Integer{1}, Integer{10})
	require.NoError(t, err)
	assert.Equal(t, String{"bc"}, v)
}

func TestStringMethods_SubstringNegativeStartCountsFromEnd(t *testing.T) {
	v, err := call(t, "abcdef", "substring", Integer{-3}, Integer{2})
	require.NoError(t, err)
	assert.Equal(t, String{"de"}, v)
}

func TestStringMethods_SubstringEmptyWhenStartPastLength(t *testing.T) {
	v, err := call(t, "abc", "substring", Integer{5}, Integer{2})
	require.NoError(t, err)
	assert.Equal(t, String{""}, v)
}

func TestStringMethods_Length(t *testing.T) {
	v, err := call(t, "héllo", "length")
	require.NoError(t, err)
	assert.Equal(t, Integer{5}, v)
}

func TestStringMethods_ToIntegerConversionError(t *testing.T) {
	_, err := call(t, "abc", "toInteger")
	require.Error(t, err)
	var wildErr *errs.Error
	require.ErrorAs(t, err, &wildErr)
	assert.Equal(t, errs.Conversion, wildErr.Kind)
}

func TestStringMethods_ToFloatConversionError(t *testing.T) {
	_, err := call(t, "abc", "toFloat")
	require.Error(t, err)
	var wildErr *errs.Error
	require.ErrorAs(t, err, &wildErr)
	assert.Equal(t, errs.Conversion, wildErr.Kind)
}

func TestStringMethods_ArgumentTypeError(t *testing.T) {
	_, err := call(t, "abc", "substring", String{"x"}, Integer{1})
	require.Error(t, err)
	var wildErr *errs.Error
	require.ErrorAs(t, err, &wildErr)
	assert.Equal(t, errs.ArgumentType, wildErr.Kind)
}

func TestStringMethods_ContainsStartsEndsWith(t *testing.T) {
	v, _ := call(t, "hello world", "contains", String{"wor"})
	assert.Equal(t, Boolean{true}, v)
	v, _ = call(t, "hello", "startsWith", String{"he"})
	assert.Equal(t, Boolean{true}, v)
	v, _ = call(t, "hello", "endsWith", String{"lo"})
	assert.Equal(t, Boolean{true}, v)
}

func TestStringMethods_CapitalizeTrimCase(t *testing.T) {
	v, _ := call(t, "hello", "capitalize")
	assert.Equal(t, String{"Hello"}, v)
	v, _ = call(t, "  hi  ", "trim")
	assert.Equal(t, String{"hi"}, v)
	v, _ = call(t, "Hi", "toUpperCase")
	assert.Equal(t, String{"HI"}, v)
	v, _ = call(t, "Hi", "toLowerCase")
	assert.Equal(t, String{"hi"}, v)
}

func TestStringMethods_IsEmptyReplaceFind(t *testing.T) {
	v, _ := call(t, "", "isEmpty")
	assert.Equal(t, Boolean{true}, v)
	v, _ = call(t, "foobar", "replace", String{"o"}, String{"0"})
	assert.Equal(t, String{"f00bar"}, v)
	v, _ = call(t, "foobar", "find", String{"bar"})
	assert.Equal(t, Integer{3}, v)
}
