package generation

import (
	"bytes"
	"fmt"
	"go/token"
	"meosgen/internal/metadata"

	"github.com/dave/jennifer/jen"
	"github.com/golang-cz/textcase"
)

const puregoPath string = "github.com/ebitengine/purego"

// The map of Java tokens produced by the rewriter to Go equivalents
var goTypes map[string]func() *jen.Statement = map[string]func() *jen.Statement{
	"boolean": jen.Bool,
	"short":   jen.Int16,
	"int":     jen.Int32,
	"long":    jen.Int64,
	"float":   jen.Float32,
	"double":  jen.Float64,
	"String":  jen.String,
	"byte[]":  func() *jen.Statement { return jen.Index().Byte() },
	"Pointer": func() *jen.Statement { return jen.Qual("unsafe", "Pointer") },
}

type goFunction struct {
	Symbol     string
	Exported   string
	Signature  metadata.FunctionSignature
	ParamNames []string
}

// Builds a Go file that binds the same native functions with purego.
type GoGenerator struct {
	Functions   []goFunction
	Skipped     []string
	PackageName string
	LibraryName string
	Banner      string
	exported    map[string]struct{}
}

func NewGoGenerator(packageName string, libraryName string) GoGenerator {
	if libraryName == "" {
		libraryName = defaultLibraryName
	}

	return GoGenerator{
		Functions:   make([]goFunction, 0),
		Skipped:     make([]string, 0),
		PackageName: packageName,
		LibraryName: libraryName,
		exported:    make(map[string]struct{}),
	}
}

// Registers a parsed signature. Signatures without a name, with mismatched
// parameter lists or clashing with an already registered Go name are skipped.
func (generator *GoGenerator) RegisterFunction(signature metadata.FunctionSignature) bool {
	if signature.Name == "" || !signature.IsConsistent() {
		generator.Skipped = append(generator.Skipped, signature.Name)
		return false
	}

	exported := textcase.PascalCase(signature.Name)
	if _, found := generator.exported[exported]; found || !token.IsIdentifier(exported) {
		generator.Skipped = append(generator.Skipped, signature.Name)
		return false
	}
	generator.exported[exported] = struct{}{}

	paramNames := make([]string, len(signature.ParamNames))
	for i, name := range signature.ParamNames {
		paramNames[i] = goIdentifier(textcase.CamelCase(name))
	}

	generator.Functions = append(generator.Functions, goFunction{
		Symbol:     goIdentifier(textcase.CamelCase(signature.Name)),
		Exported:   exported,
		Signature:  signature,
		ParamNames: paramNames,
	})
	return true
}

func (generator *GoGenerator) Generate() ([]byte, error) {
	file := jen.NewFile(generator.PackageName)
	file.HeaderComment("Code generated by meosgen. DO NOT EDIT.")
	if generator.Banner != "" {
		file.HeaderComment(generator.Banner)
	}

	file.Comment("Library is the name of the native library the functions below are bound to.")
	file.Const().Id("Library").Op("=").Lit(generator.LibraryName)

	if len(generator.Functions) > 0 {
		file.Var().DefsFunc(func(g *jen.Group) {
			for _, fn := range generator.Functions {
				g.Id(fn.Symbol).Func().Params(goParams(fn)...).Add(goResult(fn.Signature.ReturnType))
			}
		})
	}

	file.Comment("Register binds every function to the symbols exported by the library behind handle.")
	file.Func().Id("Register").Params(jen.Id("handle").Uintptr()).BlockFunc(func(g *jen.Group) {
		for _, fn := range generator.Functions {
			g.Qual(puregoPath, "RegisterLibFunc").Call(jen.Op("&").Id(fn.Symbol), jen.Id("handle"), jen.Lit(fn.Signature.Name))
		}
	})

	for _, fn := range generator.Functions {
		args := make([]jen.Code, len(fn.ParamNames))
		for i, name := range fn.ParamNames {
			args[i] = jen.Id(name)
		}

		call := jen.Id(fn.Symbol).Call(args...)
		file.Line()
		file.Func().Id(fn.Exported).Params(goParams(fn)...).Add(goResult(fn.Signature.ReturnType)).BlockFunc(func(g *jen.Group) {
			if fn.Signature.ReturnType == metadata.VoidType {
				g.Add(call)
			} else {
				g.Return(call)
			}
		})
	}

	buffer := bytes.Buffer{}
	if err := file.Render(&buffer); err != nil {
		return nil, fmt.Errorf("rendering go bindings: %w", err)
	}

	return buffer.Bytes(), nil
}

func goParams(fn goFunction) []jen.Code {
	params := make([]jen.Code, len(fn.ParamNames))
	for i, name := range fn.ParamNames {
		params[i] = jen.Id(name).Add(goType(fn.Signature.ParamTypes[i]))
	}

	return params
}

func goResult(javaType string) jen.Code {
	if javaType == metadata.VoidType || javaType == "" {
		return jen.Null()
	}

	return goType(javaType)
}

// Unknown tokens are passed through when they are valid identifiers.
func goType(javaType string) *jen.Statement {
	if constructor, found := goTypes[javaType]; found {
		return constructor()
	}

	if token.IsIdentifier(javaType) {
		return jen.Id(javaType)
	}

	return jen.Uintptr()
}

func goIdentifier(name string) string {
	if token.IsKeyword(name) || name == "" {
		return name + "_"
	}

	return name
}
