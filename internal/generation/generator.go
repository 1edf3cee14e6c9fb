package generation

import (
	"fmt"
	"meosgen/internal/metadata"
	"strings"
)

const (
	defaultPackageName   string = "function"
	defaultClassName     string = "functions"
	defaultInterfaceName string = "MeosLibrary"
	defaultLibraryName   string = "meos"
)

type function struct {
	Declaration string
	Signature   metadata.FunctionSignature
}

// Builds the Java class holding the jnr-ffi interface and its forwarding methods.
type Generator struct {
	Functions     []function
	PackageName   string
	ClassName     string
	InterfaceName string
	LibraryName   string
	Banner        string
}

func NewGenerator(libraryName string) Generator {
	if libraryName == "" {
		libraryName = defaultLibraryName
	}

	return Generator{
		Functions:     make([]function, 0),
		PackageName:   defaultPackageName,
		ClassName:     defaultClassName,
		InterfaceName: defaultInterfaceName,
		LibraryName:   libraryName,
	}
}

// Registers a rewritten declaration. Blank declarations are ignored.
func (generator *Generator) RegisterFunction(declaration string, signature metadata.FunctionSignature) {
	declaration = strings.TrimSpace(declaration)
	if declaration == "" {
		return
	}

	generator.Functions = append(generator.Functions, function{declaration, signature})
}

// Generates the interface block: the library handle followed by one declaration per function.
func (generator *Generator) GenerateInterface() string {
	builder := strings.Builder{}
	qualified := generator.ClassName + "." + generator.InterfaceName

	fmt.Fprintf(&builder, "public interface %s {\n", generator.InterfaceName)
	fmt.Fprintf(&builder, "\t%s INSTANCE = LibraryLoader.create(%s.class).load(%q);\n", qualified, qualified, generator.LibraryName)
	fmt.Fprintf(&builder, "\t%s %s = %s.INSTANCE;\n", qualified, generator.LibraryName, qualified)
	for _, fn := range generator.Functions {
		builder.WriteString("\t" + fn.Declaration + "\n")
	}
	builder.WriteString("}")

	return builder.String()
}

// Generates the forwarding method for a single function.
func (generator *Generator) GenerateWrapper(fn function) string {
	call := fmt.Sprintf("%s.%s.%s(%s);",
		generator.InterfaceName,
		generator.LibraryName,
		fn.Signature.Name,
		strings.Join(fn.Signature.ParamNames, ", "))

	if fn.Signature.ReturnType != metadata.VoidType {
		call = "return " + call
	}

	return fmt.Sprintf("public static %s {\n\t%s\n}", removeSemicolon(fn.Declaration), call)
}

// Generates the whole class with the interface nested inside it.
func (generator *Generator) Generate() string {
	builder := strings.Builder{}

	if generator.Banner != "" {
		builder.WriteString("// " + generator.Banner + "\n")
	}
	fmt.Fprintf(&builder, "package %s;\n\n", generator.PackageName)
	builder.WriteString("import jnr.ffi.LibraryLoader;\n")
	builder.WriteString("import jnr.ffi.Pointer;\n\n")
	fmt.Fprintf(&builder, "public class %s {\n", generator.ClassName)

	appendIndented(&builder, generator.GenerateInterface())
	for _, fn := range generator.Functions {
		builder.WriteString("\n")
		appendIndented(&builder, generator.GenerateWrapper(fn))
	}

	builder.WriteString("}\n")
	return builder.String()
}

func appendIndented(builder *strings.Builder, block string) {
	for _, line := range strings.Split(block, "\n") {
		if line == "" {
			builder.WriteString("\n")
			continue
		}
		builder.WriteString("\t" + line + "\n")
	}
}

func removeSemicolon(declaration string) string {
	return strings.TrimSuffix(declaration, ";")
}
