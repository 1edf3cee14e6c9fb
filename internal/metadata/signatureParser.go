package metadata

import (
	"regexp"
	"strings"
)

var (
	functionNamePattern = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
	paramNamePattern    = regexp.MustCompile(`\b(\w+)\s*[,)]`)
	functionTypePattern = regexp.MustCompile(`(\w+(?:\[\])?)\s+\w+\s*\(([^)]*)\)`)
	paramNameSplitter   = regexp.MustCompile(`\s\w+,\s|\s\w+`)
)

// Parses a rewritten declaration line.
// Name, parameter names and types are extracted by separate rules over the same text.
func ParseSignature(line string) FunctionSignature {
	signature := FunctionSignature{
		Name:       ExtractFunctionName(line),
		ParamNames: ExtractParamNames(line),
		ParamTypes: make([]string, 0),
	}

	types := ExtractFunctionTypes(line)
	if len(types) > 0 {
		signature.ReturnType = types[0]
		signature.ParamTypes = append(signature.ParamTypes, types[1:]...)
	}

	return signature
}

// Gets the first identifier followed by an opening parenthesis.
func ExtractFunctionName(line string) string {
	match := functionNamePattern.FindStringSubmatch(line)
	if match == nil {
		return ""
	}

	return match[1]
}

// Gets every word that directly precedes a comma or a closing parenthesis.
func ExtractParamNames(line string) []string {
	names := make([]string, 0)
	for _, match := range paramNamePattern.FindAllStringSubmatch(line, -1) {
		names = append(names, match[1])
	}

	return names
}

// Gets the return type followed by the parameter types of every `<type> <name>(<params>)` in line.
func ExtractFunctionTypes(line string) []string {
	types := make([]string, 0)

	for _, match := range functionTypePattern.FindAllStringSubmatch(line, -1) {
		returnType, paramList := match[1], match[2]
		if strings.TrimSpace(returnType) != "" {
			types = append(types, returnType)
		}

		types = append(types, splitParamTypes(paramList)...)
	}

	return types
}

// Cuts the parameter names out of a parameter list, leaving the types.
// Trailing empty fragments are dropped.
func splitParamTypes(paramList string) []string {
	if paramList == "" {
		return nil
	}

	fragments := paramNameSplitter.Split(paramList, -1)
	for len(fragments) > 0 && fragments[len(fragments)-1] == "" {
		fragments = fragments[:len(fragments)-1]
	}

	return fragments
}
