package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSignature(t *testing.T) {
	tests := []struct {
		line     string
		expected FunctionSignature
	}{
		{
			"boolean meos_initialize(byte[] tz_str);",
			FunctionSignature{"boolean", "meos_initialize", []string{"byte[]"}, []string{"tz_str"}},
		},
		{
			"void meos_finish();",
			FunctionSignature{"void", "meos_finish", []string{}, []string{}},
		},
		{
			"Pointer temporal_simplify(Pointer temp, double eps_dist, boolean synchronize);",
			FunctionSignature{
				"Pointer",
				"temporal_simplify",
				[]string{"Pointer", "double", "boolean"},
				[]string{"temp", "eps_dist", "synchronize"},
			},
		},
		{
			"long pg_timestamp_in(String str, int typmod);",
			FunctionSignature{"long", "pg_timestamp_in", []string{"String", "int"}, []string{"str", "typmod"}},
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ParseSignature(test.line), test.line)
	}
}

func TestParamNamesAndTypesAreExtractedIndependently(t *testing.T) {
	signature := ParseSignature("int span_count(Span, int n);")
	assert.Equal(t, []string{"Span", "n"}, signature.ParamNames)
	assert.Equal(t, []string{"Span,"}, signature.ParamTypes)
	assert.False(t, signature.IsConsistent())

	signature = ParseSignature("int variadic(int a, ...);")
	assert.Equal(t, []string{"a"}, signature.ParamNames)
	assert.Equal(t, []string{"int", "..."}, signature.ParamTypes)
	assert.False(t, signature.IsConsistent())

	signature = ParseSignature("void f(unsigned long long x);")
	assert.Equal(t, []string{"unsigned"}, signature.ParamTypes)
	assert.True(t, signature.IsConsistent())
}

func TestExtractFunctionName(t *testing.T) {
	assert.Equal(t, "tbool_in", ExtractFunctionName("Pointer tbool_in(String str);"))
	assert.Equal(t, "", ExtractFunctionName("not a function"))
}

func TestExtractFunctionTypesWithoutParams(t *testing.T) {
	assert.Equal(t, []string{"void"}, ExtractFunctionTypes("void meos_finish();"))
	assert.Empty(t, ExtractFunctionTypes(""))
}

func TestSignatureTypes(t *testing.T) {
	signature := FunctionSignature{ReturnType: "int", ParamTypes: []string{"long"}}
	assert.Equal(t, []string{"int", "long"}, signature.Types())

	signature.ReturnType = ""
	assert.Equal(t, []string{"long"}, signature.Types())
}
