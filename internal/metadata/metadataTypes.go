package metadata

import "fmt"

// Signature of a single rewritten function declaration.
// ParamNames and ParamTypes are extracted independently and may differ in length.
type FunctionSignature struct {
	ReturnType string
	Name       string
	ParamTypes []string
	ParamNames []string
}

// Types returns the return type followed by the parameter types.
func (signature FunctionSignature) Types() []string {
	if signature.ReturnType == "" {
		return signature.ParamTypes
	}

	return append([]string{signature.ReturnType}, signature.ParamTypes...)
}

func (signature FunctionSignature) IsConsistent() bool {
	return len(signature.ParamNames) == len(signature.ParamTypes)
}

type DiagnosticKind int

const (
	TypedefExtractionFailure DiagnosticKind = iota
	ParameterMismatch
	EmissionFailure
)

func (kind DiagnosticKind) String() string {
	switch kind {
	case TypedefExtractionFailure:
		return "typedef-extraction"
	case ParameterMismatch:
		return "parameter-mismatch"
	case EmissionFailure:
		return "emission"
	default:
		return fmt.Sprintf("diagnostic(%d)", int(kind))
	}
}

// A non-fatal problem found while processing the inputs.
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    string
	Message string
}

func (diagnostic Diagnostic) String() string {
	if diagnostic.Line == "" {
		return diagnostic.Message
	}

	return fmt.Sprintf("%s: %s", diagnostic.Message, diagnostic.Line)
}
